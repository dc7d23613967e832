package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/spares-manager/internal/domain"
)

// ProductsKey clave de almacenamiento de la colección de productos.
const ProductsKey = "products"

// Product representa un repuesto del catálogo.
// ProductImage es un data URI (base64) guardado tal cual; Price es un string numérico opcional.
type Product struct {
	ID           string `json:"id,omitempty"`
	ProductType  string `json:"productType"`
	ProductName  string `json:"productName"` // campo de identidad
	ProductCode  string `json:"productCode"` // <prefijo><número>, ver ParseProductCode
	ProductImage string `json:"productImage,omitempty"`
	Description  string `json:"description,omitempty"`
	Price        string `json:"price,omitempty"`
}

var _ Record[Product] = Product{}

func (p Product) RecordID() string { return p.ID }

func (p Product) WithID(id string) Product {
	p.ID = id
	return p
}

func (p Product) IdentityValue() string { return p.ProductName }

func (p Product) SearchFields() []string {
	return []string{p.ProductName, p.ProductType}
}

// Validate exige tipo, nombre y código; el precio, si viene, debe ser un decimal no negativo.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ProductType) == "" {
		return domain.NewValidationError("productType", "es requerido")
	}
	if strings.TrimSpace(p.ProductName) == "" {
		return domain.NewValidationError("productName", "es requerido")
	}
	if strings.TrimSpace(p.ProductCode) == "" {
		return domain.NewValidationError("productCode", "es requerido")
	}
	if _, _, err := ParseProductCode(p.ProductCode); err != nil {
		return err
	}
	if _, err := p.PriceDecimal(); err != nil {
		return err
	}
	return nil
}

// PriceDecimal interpreta Price. Un precio vacío devuelve (Zero, nil).
func (p Product) PriceDecimal() (decimal.Decimal, error) {
	s := strings.TrimSpace(p.Price)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.NewValidationError("price", "debe ser numérico")
	}
	if d.IsNegative() {
		return decimal.Zero, domain.NewValidationError("price", "no puede ser negativo")
	}
	return d, nil
}
