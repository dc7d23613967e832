package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/spares-manager/internal/application/usecase"
	"github.com/jhoicas/spares-manager/pkg/config"
	"github.com/jhoicas/spares-manager/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	ExportUC   *usecase.ExportUseCase
	Token      config.TokenConfig
	Log        *logger.Logger
}

// Router registra las rutas de la API. Las rutas estáticas van antes de /:id.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", AuthMiddleware(deps.Token), RequestLog(log.Named("http")))
	exportHandler := NewExportHandler(deps.ExportUC)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/directory.pdf", exportHandler.CustomerDirectory)
	customers.Put("/by-name/:name", customerHandler.UpdateByName)
	customers.Delete("/by-name/:name", customerHandler.DeleteByName)
	customers.Get("/by-name/:name/share", customerHandler.ShareByName)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/share", customerHandler.Share)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/catalog.pdf", exportHandler.ProductCatalog)
	products.Put("/by-name/:name", productHandler.UpdateByName)
	products.Delete("/by-name/:name", productHandler.DeleteByName)
	products.Get("/by-name/:name/share", productHandler.ShareByName)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/share", productHandler.Share)
}
