package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/spares-manager/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// Querier abstrae pool o tx para las consultas del store.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

const createTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVStore implementación de KeyValueStore sobre la tabla kv_store.
type KVStore struct {
	q Querier
}

// NewKVStore construye el adaptador. Pasar pool o tx (Querier).
func NewKVStore(q Querier) *KVStore {
	return &KVStore{q: q}
}

// Migrate crea la tabla si no existe.
func (s *KVStore) Migrate(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

// Get obtiene el valor de key.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.q.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get kv: %w", err)
	}
	return value, true, nil
}

// Set persiste el valor completo de key (upsert).
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert kv: %w", err)
	}
	return nil
}
