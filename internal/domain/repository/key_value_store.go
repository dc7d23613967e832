package repository

import "context"

// KeyValueStore define el puerto de persistencia clave-valor (strings) sobre el que se guardan las colecciones.
type KeyValueStore interface {
	// Get devuelve el valor guardado; found es false si la clave no existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set sobrescribe el valor completo de la clave.
	Set(ctx context.Context, key, value string) error
}
