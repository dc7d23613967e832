// Package memory implementa el backend clave-valor en memoria (tests y ejecuciones efímeras).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/spares-manager/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore mapa protegido por mutex.
type KVStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewKVStore construye el store, opcionalmente precargado con seed.
func NewKVStore(seed map[string]string) *KVStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &KVStore{values: values}
}

// Get devuelve el valor de key.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set sobrescribe el valor de key.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Close no libera nada; existe para cumplir la interfaz de cierre del factory.
func (s *KVStore) Close() error { return nil }
