package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/spares-manager/internal/application/dto"
)

type customerFlags struct {
	company, contact, city, mobile string
}

func (f *customerFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.company, "company", "", "nombre de la empresa/cliente")
	cmd.Flags().StringVar(&f.contact, "contact", "", "persona de contacto")
	cmd.Flags().StringVar(&f.city, "city", "", "ciudad")
	cmd.Flags().StringVar(&f.mobile, "mobile", "", "número de móvil")
}

// apply sobrescribe en base solo los flags indicados (edición con valores precargados).
func (f *customerFlags) apply(cmd *cobra.Command, base dto.CustomerRequest) dto.CustomerRequest {
	if cmd.Flags().Changed("company") {
		base.CompanyName = f.company
	}
	if cmd.Flags().Changed("contact") {
		base.ContactPerson = f.contact
	}
	if cmd.Flags().Changed("city") {
		base.City = f.city
	}
	if cmd.Flags().Changed("mobile") {
		base.MobileNumber = f.mobile
	}
	return base
}

func customerRequest(r *dto.CustomerResponse) dto.CustomerRequest {
	return dto.CustomerRequest{
		CompanyName:   r.CompanyName,
		ContactPerson: r.ContactPerson,
		City:          r.City,
		MobileNumber:  r.MobileNumber,
	}
}

func (c *cli) customersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer", "c"},
		Short:   "Clientes: listar, agregar, editar, eliminar y compartir",
	}
	cmd.AddCommand(
		c.customersListCmd(),
		c.customersAddCmd(),
		c.customersUpdateCmd(),
		c.customersUpdateIDCmd(),
		c.customersDeleteCmd(),
		c.customersShareCmd(),
	)
	return cmd
}

func (c *cli) customersListCmd() *cobra.Command {
	var search string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar clientes (filtro por empresa, contacto o ciudad)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := c.app.Customers.List(search)
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEMPRESA\tCONTACTO\tCIUDAD\tMÓVIL")
			for _, it := range out.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", shortID(it.ID), it.CompanyName, it.ContactPerson, it.City, it.MobileNumber)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d de %d clientes\n", len(out.Items), out.Meta.Total)
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "texto a buscar (sin distinguir mayúsculas)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON")
	return cmd
}

func (c *cli) customersAddCmd() *cobra.Command {
	var f customerFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Agregar cliente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.app.Customers.Create(cmd.Context(), f.apply(cmd, dto.CustomerRequest{}))
			if err != nil {
				return fail(cmd, "No se pudo guardar el cliente", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cliente agregado (%s)\n", out.ID)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func (c *cli) customersUpdateCmd() *cobra.Command {
	var f customerFlags
	cmd := &cobra.Command{
		Use:   "update <companyName>",
		Short: "Editar todos los clientes con ese nombre de empresa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := dto.CustomerRequest{}
			if current, err := c.app.Customers.FindByName(args[0]); err == nil {
				base = customerRequest(current)
			}
			out, err := c.app.Customers.UpdateByName(cmd.Context(), args[0], f.apply(cmd, base))
			if err != nil {
				return fail(cmd, "No se pudo actualizar el cliente", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cliente(s) actualizado(s)\n", out.Affected)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func (c *cli) customersUpdateIDCmd() *cobra.Command {
	var f customerFlags
	cmd := &cobra.Command{
		Use:   "update-id <id>",
		Short: "Editar un cliente por id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := c.app.Customers.GetByID(args[0])
			if err != nil {
				return fail(cmd, "No se pudo actualizar el cliente", err)
			}
			if _, err := c.app.Customers.Update(cmd.Context(), args[0], f.apply(cmd, customerRequest(current))); err != nil {
				return fail(cmd, "No se pudo actualizar el cliente", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cliente actualizado")
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func (c *cli) customersDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <companyName>",
		Short: "Eliminar todos los clientes con ese nombre de empresa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(cmd, "Are you sure you want to delete this customer?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelado")
					return nil
				}
			}
			out, err := c.app.Customers.DeleteByName(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, "No se pudo eliminar el cliente", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cliente(s) eliminado(s)\n", out.Affected)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no pedir confirmación")
	return cmd
}

func (c *cli) customersShareCmd() *cobra.Command {
	var open bool
	cmd := &cobra.Command{
		Use:   "share <companyName>",
		Short: "Mostrar (o abrir en la app de mensajería) el texto del cliente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := c.app.Customers.ShareByName(args[0])
			if err != nil {
				return fail(cmd, "No se pudo compartir el cliente", err)
			}
			return c.deliver(cmd, msg, open)
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "abrir el URI en la app de mensajería")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
