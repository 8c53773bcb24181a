package kvstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/percify/internal/dbx"
	"github.com/dmitrijs2005/percify/internal/kvstore/migrations"
	"github.com/pressly/goose/v3"
)

// gooseUpContext is a seam for tests.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for dialect to db.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	var gooseDialect, dir string
	switch dialect {
	case dbx.DialectSQLite:
		gooseDialect, dir = "sqlite3", "sqlite"
	case dbx.DialectPostgres:
		gooseDialect, dir = "postgres", "postgres"
	default:
		return fmt.Errorf("no migrations for dialect %q", dialect)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate %s: %w", dialect, err)
	}
	return nil
}
