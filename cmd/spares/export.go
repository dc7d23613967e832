package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (c *cli) exportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:       "export <catalog|directory>",
		Short:     "Exportar catálogo de productos o directorio de clientes a PDF",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"catalog", "directory"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				b        []byte
				filename string
				err      error
			)
			if args[0] == "catalog" {
				b, filename, err = c.app.Export.ProductCatalog(cmd.Context())
			} else {
				b, filename, err = c.app.Export.CustomerDirectory(cmd.Context())
			}
			if err != nil {
				return fail(cmd, "No se pudo exportar", err)
			}
			if out == "" {
				out = filename
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return fail(cmd, "No se pudo escribir el archivo", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF escrito en %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "archivo de salida")
	return cmd
}
