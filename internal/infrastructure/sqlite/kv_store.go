// Package sqlite implementa el backend clave-valor sobre un archivo SQLite local (driver puro Go).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/spares-manager/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);`

// KVStore guarda cada clave como una fila de kv_store.
type KVStore struct {
	db   *sql.DB
	path string
}

// Open crea (si hace falta) el directorio y el archivo de base de datos en path.
func Open(ctx context.Context, path string) (*KVStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Un solo escritor: evita SQLITE_BUSY entre conexiones del pool.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return &KVStore{db: db, path: path}, nil
}

// Path ruta del archivo.
func (s *KVStore) Path() string { return s.path }

// Close cierra la base de datos.
func (s *KVStore) Close() error { return s.db.Close() }

// Get lee el valor de key.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select kv: %w", err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el valor de key.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert kv: %w", err)
	}
	return nil
}
