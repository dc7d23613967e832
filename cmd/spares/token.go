package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/spares-manager/pkg/jwt"
)

func (c *cli) tokenCmd() *cobra.Command {
	var device string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emitir un Bearer Token para la API local (requiere API_TOKEN_SECRET)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.app.Config.Token
			if !cfg.Enabled() {
				return fail(cmd, "No se pudo emitir el token", errors.New("API_TOKEN_SECRET no configurado"))
			}
			tok, err := jwt.Generate(cfg.Secret, device, cfg.Issuer, cfg.Expiration)
			if err != nil {
				return fail(cmd, "No se pudo emitir el token", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&device, "device", "cli", "nombre del dispositivo que usará el token")
	return cmd
}
