package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/percify/internal/common"
	"github.com/dmitrijs2005/percify/internal/dbx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	repo, closeFn, err := Open(context.Background(), Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryRepository{}, repo)
	require.NoError(t, closeFn())
}

func TestOpen_SQLite(t *testing.T) {
	repo, closeFn, err := Open(context.Background(), Options{Backend: BackendSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &SQLRepository{}, repo)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, _, err := Open(context.Background(), Options{Backend: "etcd"})
	require.ErrorIs(t, err, common.ErrUnknownBackend)
}

func TestOpen_RedisBadURL(t *testing.T) {
	_, _, err := Open(context.Background(), Options{Backend: BackendRedis, RedisURL: "://"})
	require.Error(t, err)
}

func TestRunMigrations_PicksDirectoryPerDialect(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var dirs []string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		dirs = append(dirs, dir)
		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), nil, dbx.DialectPostgres))
	require.NoError(t, RunMigrations(context.Background(), nil, dbx.DialectSQLite))
	assert.Equal(t, []string{"postgres", "sqlite"}, dirs)
}

func TestRunMigrations_Errors(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	err := RunMigrations(context.Background(), nil, dbx.Dialect("mysql"))
	require.ErrorContains(t, err, `no migrations for dialect "mysql"`)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("dirty")
	}
	err = RunMigrations(context.Background(), nil, dbx.DialectSQLite)
	require.ErrorContains(t, err, "migrate sqlite: dirty")
}

func TestOpen_SQLiteCreatesParentDir(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "dir", "percify.db")

	_, closeFn, err := Open(context.Background(), Options{Backend: BackendSQLite, DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, closeFn())

	_, err = os.Stat(dsn)
	require.NoError(t, err)
}

func TestIsSQLiteFile(t *testing.T) {
	assert.True(t, isSQLiteFile("percify.db"))
	assert.True(t, isSQLiteFile("/var/lib/percify/kv.db"))
	assert.False(t, isSQLiteFile(":memory:"))
	assert.False(t, isSQLiteFile("file:kv?mode=memory&cache=shared"))
	assert.False(t, isSQLiteFile(""))
}
