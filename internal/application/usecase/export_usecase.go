package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/spares-manager/internal/application/ports"
)

// ExportUseCase genera los PDF de catálogo de productos y directorio de clientes
// a partir del snapshot de la sesión.
type ExportUseCase struct {
	customers *CustomerUseCase
	products  *ProductUseCase
	generator ports.DocumentGenerator
	business  string
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(customers *CustomerUseCase, products *ProductUseCase, generator ports.DocumentGenerator, business string) *ExportUseCase {
	return &ExportUseCase{customers: customers, products: products, generator: generator, business: business}
}

// ProductCatalog devuelve (pdfBytes, filename).
func (uc *ExportUseCase) ProductCatalog(ctx context.Context) ([]byte, string, error) {
	b, err := uc.generator.ProductCatalog(ctx, uc.business, uc.products.Records())
	if err != nil {
		return nil, "", fmt.Errorf("exportar catálogo: %w", err)
	}
	return b, "catalogo-productos.pdf", nil
}

// CustomerDirectory devuelve (pdfBytes, filename).
func (uc *ExportUseCase) CustomerDirectory(ctx context.Context) ([]byte, string, error) {
	b, err := uc.generator.CustomerDirectory(ctx, uc.business, uc.customers.Records())
	if err != nil {
		return nil, "", fmt.Errorf("exportar directorio: %w", err)
	}
	return b, "directorio-clientes.pdf", nil
}
