// Package bootstrap arma las dependencias comunes de cmd/api y cmd/spares.
package bootstrap

import (
	"context"
	"errors"

	"github.com/jhoicas/spares-manager/internal/application/collection"
	"github.com/jhoicas/spares-manager/internal/application/share"
	"github.com/jhoicas/spares-manager/internal/application/usecase"
	"github.com/jhoicas/spares-manager/internal/domain/entity"
	"github.com/jhoicas/spares-manager/internal/domain/repository"
	"github.com/jhoicas/spares-manager/internal/infrastructure/kvstore"
	"github.com/jhoicas/spares-manager/internal/infrastructure/opener"
	"github.com/jhoicas/spares-manager/internal/infrastructure/pdf"
	"github.com/jhoicas/spares-manager/internal/infrastructure/recordstore"
	"github.com/jhoicas/spares-manager/pkg/config"
	"github.com/jhoicas/spares-manager/pkg/logger"
)

// App dependencias ya cableadas.
type App struct {
	Config    *config.Config
	Log       *logger.Logger
	Customers *usecase.CustomerUseCase
	Products  *usecase.ProductUseCase
	Export    *usecase.ExportUseCase
	Share     *share.Service

	closers []func() error
}

// New abre el backend configurado y arma los casos de uso.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	backend, err := kvstore.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app := Wire(cfg, log, backend, share.NewService(cfg.Share.Scheme, opener.NewSystem()))
	app.AddCloser(backend.Close)
	log.Info().Str("driver", backend.Driver).Str("path", backend.Location).Msg("almacenamiento abierto")
	return app, nil
}

// Wire arma los casos de uso sobre un backend ya abierto (usado también por los tests).
func Wire(cfg *config.Config, log *logger.Logger, kv repository.KeyValueStore, shareSvc *share.Service) *App {
	customerSvc := collection.NewService[entity.Customer](recordstore.New[entity.Customer](kv, entity.CustomersKey))
	productSvc := collection.NewService[entity.Product](recordstore.New[entity.Product](kv, entity.ProductsKey))

	customers := usecase.NewCustomerUseCase(customerSvc, shareSvc, log)
	products := usecase.NewProductUseCase(productSvc, shareSvc, log)
	export := usecase.NewExportUseCase(customers, products, pdf.NewMarotoGenerator(), cfg.App.BusinessName)

	return &App{
		Config:    cfg,
		Log:       log,
		Customers: customers,
		Products:  products,
		Export:    export,
		Share:     shareSvc,
	}
}

// LoadSession carga ambas colecciones. Un fallo no es fatal: se registra y esa colección
// arranca vacía en memoria; las mutaciones seguirán fallando mientras el dato guardado sea ilegible.
func (a *App) LoadSession(ctx context.Context) []error {
	var errs []error
	if _, err := a.Customers.Load(ctx); err != nil {
		a.Log.Warn().Err(err).Str("key", entity.CustomersKey).Msg("no se pudo cargar la colección")
		errs = append(errs, err)
	}
	if _, err := a.Products.Load(ctx); err != nil {
		a.Log.Warn().Err(err).Str("key", entity.ProductsKey).Msg("no se pudo cargar la colección")
		errs = append(errs, err)
	}
	return errs
}

// AddCloser registra un recurso a liberar en Close (en orden inverso al registro).
func (a *App) AddCloser(fn func() error) {
	a.closers = append(a.closers, fn)
}

// Close libera los recursos registrados. Es idempotente.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
