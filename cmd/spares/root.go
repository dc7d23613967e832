package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/spares-manager/internal/bootstrap"
	"github.com/jhoicas/spares-manager/pkg/config"
	"github.com/jhoicas/spares-manager/pkg/logger"
)

// appOpener construye las dependencias para una ejecución del CLI.
type appOpener func(ctx context.Context, verbose bool) (*bootstrap.App, error)

// cli estado compartido por los subcomandos de una ejecución.
type cli struct {
	open    appOpener
	app     *bootstrap.App
	verbose bool
}

func openApp(ctx context.Context, verbose bool) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level := cfg.App.LogLevel
	if verbose {
		level = "debug"
	} else if cfg.App.Env == "development" {
		// El CLI no ensucia la salida con logs informativos.
		level = "warn"
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: level, Output: os.Stderr})
	app, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	app.LoadSession(ctx)
	return app, nil
}

// close libera la App de esta ejecución, haya fallado o no el comando.
func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

// newRootCmd arma el árbol de comandos. closeApp debe llamarse después de Execute:
// cobra no ejecuta PersistentPostRunE cuando RunE devuelve error.
func newRootCmd(open appOpener) (root *cobra.Command, closeApp func() error) {
	c := &cli{open: open}
	root = &cobra.Command{
		Use:           "spares",
		Short:         "Gestor local de clientes y productos de repuestos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open(cmd.Context(), c.verbose)
			if err != nil {
				return err
			}
			c.app = app
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "logs de depuración")
	root.AddCommand(
		c.customersCmd(),
		c.productsCmd(),
		c.exportCmd(),
		c.tokenCmd(),
	)
	return root, c.close
}

// fail imprime el aviso para el usuario y devuelve err para el código de salida.
func fail(cmd *cobra.Command, msg string, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", msg, userMessage(err))
	return err
}

// confirm pregunta en stdin; solo "y"/"yes" confirma.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
