package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/spares-manager/internal/application/share"
)

// deliver imprime el texto y el URI; con open los entrega al sistema operativo.
func (c *cli) deliver(cmd *cobra.Command, msg share.Message, open bool) error {
	fmt.Fprintln(cmd.OutOrStdout(), msg.Text)
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), msg.URI)
	if !open {
		return nil
	}
	if err := c.app.Share.Open(cmd.Context(), msg); err != nil {
		c.app.Log.Error().Err(err).Str("kind", string(msg.Kind)).Msg("abrir app de mensajería")
		return fail(cmd, "No se pudo abrir la app de mensajería", err)
	}
	return nil
}
