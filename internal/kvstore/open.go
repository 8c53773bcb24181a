package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/percify/internal/common"
	"github.com/dmitrijs2005/percify/internal/dbx"
	"github.com/dmitrijs2005/percify/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Options selects and addresses a backend.
type Options struct {
	Backend string
	// DSN is the SQLite file name or the PostgreSQL connection string.
	DSN         string
	RedisURL    string
	RedisPrefix string
}

// Open connects to the configured backend, migrating SQL schemas as needed.
// The returned close function releases the connection.
func Open(ctx context.Context, opts Options) (Repository, func() error, error) {
	switch opts.Backend {
	case BackendSQLite:
		if isSQLiteFile(opts.DSN) {
			if err := filex.EnsureParentDir(opts.DSN); err != nil {
				return nil, nil, err
			}
		}
		db, err := openSQL(ctx, "sqlite", opts.DSN, dbx.DialectSQLite)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLiteRepository(db), db.Close, nil

	case BackendPostgres:
		db, err := openSQL(ctx, "pgx", opts.DSN, dbx.DialectPostgres)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresRepository(db), db.Close, nil

	case BackendRedis:
		rdb, err := NewRedisClient(ctx, opts.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisRepository(rdb, opts.RedisPrefix), rdb.Close, nil

	case BackendMemory:
		return NewMemoryRepository(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, opts.Backend)
	}
}

// isSQLiteFile reports whether dsn is a plain file path rather than an
// in-memory database or a file: URI.
func isSQLiteFile(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}

func openSQL(ctx context.Context, driver, dsn string, dialect dbx.Dialect) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == dbx.DialectSQLite {
		// a single writer avoids SQLITE_BUSY and keeps :memory: databases on one connection
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}
	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
