// Package kvstore selecciona el backend clave-valor según STORE_DRIVER.
package kvstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/spares-manager/internal/domain/repository"
	"github.com/jhoicas/spares-manager/internal/infrastructure/memory"
	"github.com/jhoicas/spares-manager/internal/infrastructure/postgres"
	"github.com/jhoicas/spares-manager/internal/infrastructure/sqlite"
	"github.com/jhoicas/spares-manager/pkg/config"
)

// Backend backend abierto más su función de cierre.
type Backend struct {
	repository.KeyValueStore
	Driver   string
	Location string // archivo sqlite; vacío en los demás drivers
	close    func() error
}

// Close libera conexiones o archivos del backend.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open abre el backend configurado.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		return &Backend{KeyValueStore: s, Driver: cfg.Store.Driver, Location: s.Path(), close: s.Close}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		s := postgres.NewKVStore(pool)
		if err := s.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{KeyValueStore: s, Driver: cfg.Store.Driver, close: func() error {
			pool.Close()
			return nil
		}}, nil
	case config.DriverMemory:
		s := memory.NewKVStore(nil)
		return &Backend{KeyValueStore: s, Driver: cfg.Store.Driver, close: s.Close}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Store.Driver)
	}
}
