// Package storage persists the ledger's keyed JSON blobs in SQLite. One
// row per collection key; Save rewrites the whole blob, matching the
// store's read-everything/write-everything contract.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type BlobStore struct {
	db *sql.DB
}

// NewBlobStore opens (creating if needed) the SQLite database at dbPath
// and runs the embedded migrations.
func NewBlobStore(dbPath string) (*BlobStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &BlobStore{db: db}, nil
}

func (b *BlobStore) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// Load returns the blob stored under key, or nil bytes when the key has
// never been written.
func (b *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load blob %q: %w", key, err)
	}
	return value, nil
}

// Save upserts the blob under key.
func (b *BlobStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save blob %q: %w", key, err)
	}

	slog.DebugContext(ctx, "Blob saved", "key", key, "bytes", len(value))
	return nil
}
