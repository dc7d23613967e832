// Package recordstore guarda cada colección como un único arreglo JSON bajo una clave del backend clave-valor.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/spares-manager/internal/domain"
	"github.com/jhoicas/spares-manager/internal/domain/repository"
)

var _ repository.RecordStore[struct{}] = (*Store[struct{}])(nil)

// Store implementa RecordStore[T] para una clave ("customers", "products").
type Store[T any] struct {
	kv  repository.KeyValueStore
	key string
}

// New construye el store atado a key.
func New[T any](kv repository.KeyValueStore, key string) *Store[T] {
	return &Store[T]{kv: kv, key: key}
}

// Key devuelve la clave de la colección.
func (s *Store[T]) Key() string { return s.key }

// Load lee la colección completa. Clave ausente, valor vacío o JSON null => colección vacía.
// Contenido mal formado => *domain.DecodeError (nunca se trata como vacío).
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Key: s.key, Err: err}
	}
	records := []T{}
	if !found {
		return records, nil
	}
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &domain.DecodeError{Key: s.key, Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save codifica la secuencia completa y sobrescribe la clave.
func (s *Store[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %q: %w", s.key, err)
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		return &domain.StorageError{Op: "save", Key: s.key, Err: err}
	}
	return nil
}
