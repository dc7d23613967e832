package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/spares-manager/internal/application/dto"
	"github.com/jhoicas/spares-manager/internal/domain/entity"
	"github.com/jhoicas/spares-manager/internal/infrastructure/image"
)

type productFlags struct {
	productType, name, code, prefix, number, imagePath, description, price string
}

func (f *productFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.productType, "type", "", "tipo de producto")
	cmd.Flags().StringVar(&f.name, "name", "", "nombre del producto")
	cmd.Flags().StringVar(&f.code, "code", "", "código completo (ej. TS120)")
	cmd.Flags().StringVar(&f.prefix, "prefix", entity.DefaultProductCodePrefix, "prefijo del código: P, T o TS")
	cmd.Flags().StringVar(&f.number, "number", "", "número del código")
	cmd.Flags().StringVar(&f.imagePath, "image", "", "archivo de imagen a adjuntar")
	cmd.Flags().StringVar(&f.description, "description", "", "descripción")
	cmd.Flags().StringVar(&f.price, "price", "", "precio")
}

// apply sobrescribe en base solo los flags indicados.
func (f *productFlags) apply(cmd *cobra.Command, base dto.ProductRequest) (dto.ProductRequest, error) {
	changed := cmd.Flags().Changed
	if changed("type") {
		base.ProductType = f.productType
	}
	if changed("name") {
		base.ProductName = f.name
	}
	if changed("description") {
		base.Description = f.description
	}
	if changed("price") {
		base.Price = f.price
	}
	switch {
	case changed("code"):
		base.ProductCode = f.code
	case changed("prefix") || changed("number"):
		prefix, number := f.prefix, f.number
		if p, n, err := entity.ParseProductCode(base.ProductCode); err == nil {
			if !changed("prefix") {
				prefix = p
			}
			if !changed("number") {
				number = n
			}
		}
		base.ProductCode = ""
		base.CodePrefix = prefix
		base.CodeNumber = number
	}
	if changed("image") {
		if f.imagePath == "" {
			base.ProductImage = ""
		} else {
			uri, err := image.DataURIFromFile(f.imagePath)
			if err != nil {
				return base, err
			}
			base.ProductImage = uri
		}
	}
	return base, nil
}

func productRequest(r *dto.ProductResponse) dto.ProductRequest {
	return dto.ProductRequest{
		ProductType:  r.ProductType,
		ProductName:  r.ProductName,
		ProductCode:  r.ProductCode,
		ProductImage: r.ProductImage,
		Description:  r.Description,
		Price:        r.Price,
	}
}

func (c *cli) productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "p"},
		Short:   "Productos: listar, agregar, editar, eliminar y compartir",
	}
	cmd.AddCommand(
		c.productsListCmd(),
		c.productsAddCmd(),
		c.productsUpdateCmd(),
		c.productsUpdateIDCmd(),
		c.productsDeleteCmd(),
		c.productsShareCmd(),
	)
	return cmd
}

func (c *cli) productsListCmd() *cobra.Command {
	var search string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar productos (filtro por nombre o tipo)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := c.app.Products.List(search)
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCÓDIGO\tNOMBRE\tTIPO\tPRECIO\tIMAGEN")
			for _, it := range out.Items {
				img := "no"
				if it.ProductImage != "" {
					img = "sí"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", shortID(it.ID), it.ProductCode, it.ProductName, it.ProductType, it.Price, img)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d de %d productos\n", len(out.Items), out.Meta.Total)
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "texto a buscar (sin distinguir mayúsculas)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON")
	return cmd
}

func (c *cli) productsAddCmd() *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Agregar producto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := f.apply(cmd, dto.ProductRequest{CodePrefix: f.prefix, CodeNumber: f.number})
			if err != nil {
				return fail(cmd, "No se pudo adjuntar la imagen", err)
			}
			out, err := c.app.Products.Create(cmd.Context(), in)
			if err != nil {
				return fail(cmd, "No se pudo guardar el producto", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Producto agregado: %s (%s)\n", out.ProductCode, out.ID)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func (c *cli) productsUpdateCmd() *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "update <productName>",
		Short: "Editar todos los productos con ese nombre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := dto.ProductRequest{}
			if current, err := c.app.Products.FindByName(args[0]); err == nil {
				base = productRequest(current)
			}
			in, err := f.apply(cmd, base)
			if err != nil {
				return fail(cmd, "No se pudo adjuntar la imagen", err)
			}
			out, err := c.app.Products.UpdateByName(cmd.Context(), args[0], in)
			if err != nil {
				return fail(cmd, "No se pudo actualizar el producto", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d producto(s) actualizado(s)\n", out.Affected)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func (c *cli) productsUpdateIDCmd() *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "update-id <id>",
		Short: "Editar un producto por id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := c.app.Products.GetByID(args[0])
			if err != nil {
				return fail(cmd, "No se pudo actualizar el producto", err)
			}
			in, err := f.apply(cmd, productRequest(current))
			if err != nil {
				return fail(cmd, "No se pudo adjuntar la imagen", err)
			}
			if _, err := c.app.Products.Update(cmd.Context(), args[0], in); err != nil {
				return fail(cmd, "No se pudo actualizar el producto", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Producto actualizado")
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func (c *cli) productsDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <productName>",
		Short: "Eliminar todos los productos con ese nombre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(cmd, "Are you sure you want to delete this product?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelado")
					return nil
				}
			}
			out, err := c.app.Products.DeleteByName(cmd.Context(), args[0])
			if err != nil {
				return fail(cmd, "No se pudo eliminar el producto", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d producto(s) eliminado(s)\n", out.Affected)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no pedir confirmación")
	return cmd
}

func (c *cli) productsShareCmd() *cobra.Command {
	var open bool
	cmd := &cobra.Command{
		Use:   "share <productName>",
		Short: "Mostrar (o abrir en la app de mensajería) el texto del producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := c.app.Products.ShareByName(args[0])
			if err != nil {
				return fail(cmd, "No se pudo compartir el producto", err)
			}
			return c.deliver(cmd, msg, open)
		},
	}
	cmd.Flags().BoolVar(&open, "open", false, "abrir el URI en la app de mensajería")
	return cmd
}
