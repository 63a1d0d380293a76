package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/dbx"
)

type SQLiteRepository struct {
	db        dbx.DBTX
	namespace string
}

func NewSQLiteRepository(db dbx.DBTX, namespace string) *SQLiteRepository {
	return &SQLiteRepository{db: db, namespace: namespace}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM metadata WHERE namespace = ? AND key = ?`, r.namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s/%s]: %w", r.namespace, key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (namespace, key, value) VALUES (?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value
	`, r.namespace, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s/%s]: %w", r.namespace, key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		_, err := r.db.ExecContext(ctx,
			`DELETE FROM metadata WHERE namespace = ? AND key = ?`, r.namespace, key)
		if err != nil {
			return fmt.Errorf("failed to delete metadata[%s/%s]: %w", r.namespace, key, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE namespace = ?`, r.namespace)
	if err != nil {
		return fmt.Errorf("failed to clear metadata[%s]: %w", r.namespace, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM metadata WHERE namespace = ?`, r.namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata[%s]: %w", r.namespace, err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate metadata rows: %w", err)
	}

	return result, nil
}

var _ Repository = (*SQLiteRepository)(nil)
