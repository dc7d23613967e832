// Package collection implementa el CRUD y la búsqueda sobre una colección completa
// (clientes o productos) construidos solo con Load/Save del RecordStore.
//
// Cada mutación relee la colección, la modifica en memoria y la reescribe entera:
// costo O(n) por operación, aceptado para el volumen de un solo dispositivo.
package collection

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/spares-manager/internal/domain"
	"github.com/jhoicas/spares-manager/internal/domain/entity"
	"github.com/jhoicas/spares-manager/internal/domain/repository"
)

// Service estado de la colección para la sesión actual más sus operaciones.
// El snapshot en memoria solo cambia después de que Save confirma.
type Service[T entity.Record[T]] struct {
	store repository.RecordStore[T]
	newID func() string

	// mu serializa load-modify-save: el save de una acción termina antes del load de la siguiente.
	mu    sync.Mutex
	items []T
}

// Option configura el servicio.
type Option[T entity.Record[T]] func(*Service[T])

// WithIDGenerator reemplaza el generador de ids (uuid por defecto).
func WithIDGenerator[T entity.Record[T]](gen func() string) Option[T] {
	return func(s *Service[T]) { s.newID = gen }
}

// NewService construye el servicio sobre store. El snapshot empieza vacío hasta Load.
func NewService[T entity.Record[T]](store repository.RecordStore[T], opts ...Option[T]) *Service[T] {
	s := &Service[T]{
		store: store,
		newID: func() string { return uuid.New().String() },
		items: []T{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Key clave de almacenamiento de la colección.
func (s *Service[T]) Key() string { return s.store.Key() }

// Load resincroniza el snapshot desde el almacenamiento (inicio de sesión).
// Los registros heredados sin id reciben uno y la colección se guarda en el acto,
// así los ids del snapshot coinciden con los almacenados.
func (s *Service[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if s.assignMissingIDs(records) {
		if err := s.store.Save(ctx, records); err != nil {
			return nil, err
		}
	}
	s.items = records
	return clone(records), nil
}

// Items copia del snapshot en orden de almacenamiento.
func (s *Service[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.items)
}

// Search filtra el snapshot actual sin releer almacenamiento.
func (s *Service[T]) Search(query string) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Search(s.items, query)
}

// Get busca en el snapshot por id generado.
func (s *Service[T]) Get(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	if id == "" {
		return zero, domain.ErrNotFound
	}
	for _, r := range s.items {
		if r.RecordID() == id {
			return r, nil
		}
	}
	return zero, domain.ErrNotFound
}

// FindByIdentity primer registro del snapshot cuyo campo de identidad es value.
func (s *Service[T]) FindByIdentity(value string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	for _, r := range s.items {
		if r.IdentityValue() == value {
			return r, nil
		}
	}
	return zero, domain.ErrNotFound
}

// Add agrega rec al final. Sin chequeo de duplicados: nombres repetidos se permiten.
// Devuelve el registro tal como quedó guardado (con id asignado).
func (s *Service[T]) Add(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := rec.Validate(); err != nil {
		return zero, err
	}
	if rec.RecordID() == "" {
		rec = rec.WithID(s.newID())
	}
	err := s.mutate(ctx, func(records []T) ([]T, error) {
		return append(records, rec), nil
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

// Update reemplaza TODOS los registros cuyo campo de identidad es identityValue.
// Cada reemplazo conserva el id del registro reemplazado; el id de rec se ignora.
// Sin coincidencias la colección se guarda igual (no-op silencioso); replaced = 0.
func (s *Service[T]) Update(ctx context.Context, identityValue string, rec T) (replaced int, err error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}
	err = s.mutate(ctx, func(records []T) ([]T, error) {
		replaced = 0
		for i, r := range records {
			if r.IdentityValue() != identityValue {
				continue
			}
			records[i] = rec.WithID(r.RecordID())
			replaced++
		}
		return records, nil
	})
	if err != nil {
		return 0, err
	}
	return replaced, nil
}

// Delete elimina TODOS los registros cuyo campo de identidad es identityValue.
func (s *Service[T]) Delete(ctx context.Context, identityValue string) (removed int, err error) {
	err = s.mutate(ctx, func(records []T) ([]T, error) {
		kept := records[:0]
		for _, r := range records {
			if r.IdentityValue() == identityValue {
				continue
			}
			kept = append(kept, r)
		}
		removed = len(records) - len(kept)
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// UpdateByID reemplaza el registro con id; rec hereda ese id. ErrNotFound sin guardar si no existe.
func (s *Service[T]) UpdateByID(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	if err := rec.Validate(); err != nil {
		return zero, err
	}
	if id == "" {
		return zero, domain.ErrNotFound
	}
	rec = rec.WithID(id)
	err := s.mutate(ctx, func(records []T) ([]T, error) {
		for i, r := range records {
			if r.RecordID() == id {
				records[i] = rec
				return records, nil
			}
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return zero, err
	}
	return rec, nil
}

// DeleteByID elimina el registro con id. ErrNotFound sin guardar si no existe.
func (s *Service[T]) DeleteByID(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrNotFound
	}
	return s.mutate(ctx, func(records []T) ([]T, error) {
		for i, r := range records {
			if r.RecordID() == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// mutate ejecuta load -> fn -> save y solo entonces actualiza el snapshot.
// Si fn o Save fallan, el snapshot queda como estaba.
func (s *Service[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.assignMissingIDs(records)
	next, err := fn(records)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// assignMissingIDs completa en sitio los ids vacíos. Devuelve true si asignó alguno.
func (s *Service[T]) assignMissingIDs(records []T) bool {
	assigned := false
	for i, r := range records {
		if r.RecordID() == "" {
			records[i] = r.WithID(s.newID())
			assigned = true
		}
	}
	return assigned
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
