package ports

import (
	"context"

	"github.com/jhoicas/spares-manager/internal/domain/entity"
)

// DocumentGenerator define el puerto de salida para exportar las colecciones a PDF.
type DocumentGenerator interface {
	// ProductCatalog lista de productos con código, tipo y precio.
	ProductCatalog(ctx context.Context, business string, products []entity.Product) ([]byte, error)
	// CustomerDirectory directorio de clientes con contacto y ciudad.
	CustomerDirectory(ctx context.Context, business string, customers []entity.Customer) ([]byte, error)
}
