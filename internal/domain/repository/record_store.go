package repository

import "context"

// RecordStore define la carga y guardado completo de una colección (DIP).
// Cada Save reemplaza la secuencia entera; no hay escrituras incrementales.
type RecordStore[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
	Key() string
}
