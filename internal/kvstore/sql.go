package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/percify/internal/dbx"
)

const (
	queryGet    = `SELECT value FROM kv_blobs WHERE key = ?`
	queryUpsert = `INSERT INTO kv_blobs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	queryDelete = `DELETE FROM kv_blobs WHERE key = ?`
	queryList   = `SELECT key, value FROM kv_blobs`
	queryClear  = `DELETE FROM kv_blobs`
)

// SQLRepository keeps blobs in the kv_blobs table.
type SQLRepository struct {
	db      *sql.DB
	dialect dbx.Dialect
}

func NewSQLiteRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.DialectSQLite}
}

func NewPostgresRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.DialectPostgres}
}

func (r *SQLRepository) q(query string) string {
	return dbx.Rebind(r.dialect, query)
}

func (r *SQLRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, r.q(queryGet), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.upsert(ctx, r.db, key, value)
}

func (r *SQLRepository) upsert(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if _, err := db.ExecContext(ctx, r.q(queryUpsert), key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

// SetMany upserts values in one transaction, in key order.
func (r *SQLRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if err := r.upsert(ctx, tx, k, values[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, r.q(queryDelete), key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, queryClear); err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

func (r *SQLRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kv rows: %w", err)
	}

	return result, nil
}
