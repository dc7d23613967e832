// Package pdf exporta las colecciones a PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio   │  Título + cantidad           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por registro, en orden de almacenamiento    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/spares-manager/internal/application/ports"
	"github.com/jhoicas/spares-manager/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 122, Blue: 255}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.DocumentGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implementa ports.DocumentGenerator.
type MarotoGenerator struct{}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// ProductCatalog genera el catálogo de productos.
func (g *MarotoGenerator) ProductCatalog(_ context.Context, business string, products []entity.Product) ([]byte, error) {
	m := newDocument(business, "Catálogo de productos")
	m.AddRows(headerRow(business, "CATÁLOGO DE PRODUCTOS", len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeader([]column{
		{"Código", 2, align.Left},
		{"Producto", 4, align.Left},
		{"Tipo", 3, align.Left},
		{"Precio", 3, align.Right},
	}))
	for _, p := range products {
		m.AddRows(tableRow([]cell{
			{p.ProductCode, 2, align.Left},
			{p.ProductName, 4, align.Left},
			{p.ProductType, 3, align.Left},
			{formatPrice(p), 3, align.Right},
		}))
		if p.Description != "" {
			m.AddRows(row.New(5).Add(col.New(2), col.New(10).Add(
				text.New(p.Description, props.Text{Size: 7, Color: colorGray, Left: 1}),
			)))
		}
	}
	return generate(m)
}

// CustomerDirectory genera el directorio de clientes.
func (g *MarotoGenerator) CustomerDirectory(_ context.Context, business string, customers []entity.Customer) ([]byte, error) {
	m := newDocument(business, "Directorio de clientes")
	m.AddRows(headerRow(business, "DIRECTORIO DE CLIENTES", len(customers)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeader([]column{
		{"Empresa", 4, align.Left},
		{"Contacto", 3, align.Left},
		{"Ciudad", 2, align.Left},
		{"Móvil", 3, align.Right},
	}))
	for _, c := range customers {
		m.AddRows(tableRow([]cell{
			{c.CompanyName, 4, align.Left},
			{c.ContactPerson, 3, align.Left},
			{c.City, 2, align.Left},
			{c.MobileNumber, 3, align.Right},
		}))
	}
	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

type column struct {
	label string
	size  int
	align align.Type
}

type cell = column

func newDocument(business, title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(business, true).
		Build()
	return maroto.New(cfg)
}

func headerRow(business, title string, count int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(business, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1}),
			text.New(fmt.Sprintf("%d registros", count), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeader(cols []column) core.Row {
	r := row.New(8)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

func tableRow(cells []cell) core.Row {
	r := row.New(7)
	for _, c := range cells {
		r.Add(col.New(c.size).Add(text.New(nonEmpty(c.label, "-"), props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatPrice muestra el precio con dos decimales; precios vacíos o inválidos se muestran tal cual.
func formatPrice(p entity.Product) string {
	if p.Price == "" {
		return ""
	}
	d, err := p.PriceDecimal()
	if err != nil {
		return p.Price
	}
	return "$" + d.StringFixed(2)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
