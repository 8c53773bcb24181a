package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLite(t *testing.T) (*SQLRepository, func() error) {
	t.Helper()
	repo, closeFn, err := Open(context.Background(), Options{Backend: BackendSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closeFn() })
	return repo.(*SQLRepository), closeFn
}

func TestSQLite_SetAndGet(t *testing.T) {
	r, _ := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "saved_chats", []byte(`[{"id":"1"}]`)))

	v, err := r.Get(ctx, "saved_chats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), v)
}

func TestSQLite_GetAbsentReturnsNilNil(t *testing.T) {
	r, _ := setupSQLite(t)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLite_SetOverwrites(t *testing.T) {
	r, _ := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "scout_accepted", []byte("false")))
	require.NoError(t, r.Set(ctx, "scout_accepted", []byte("true")))

	v, err := r.Get(ctx, "scout_accepted")
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), v)
}

func TestSQLite_SetManyListDeleteClear(t *testing.T) {
	r, _ := setupSQLite(t)
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, map[string][]byte{
		"saved_messages": []byte("[]"),
		"scout_accepted": []byte("false"),
	}))
	require.NoError(t, r.SetMany(ctx, nil))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"saved_messages": []byte("[]"),
		"scout_accepted": []byte("false"),
	}, m)

	require.NoError(t, r.Delete(ctx, "saved_messages"))
	require.NoError(t, r.Delete(ctx, "saved_messages"))
	v, err := r.Get(ctx, "saved_messages")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestSQLite_PersistsAcrossOpen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "percify.db")
	ctx := context.Background()

	repo, closeFn, err := Open(ctx, Options{Backend: BackendSQLite, DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, "saved_chats", []byte("[]")))
	require.NoError(t, closeFn())

	// migrations are idempotent on reopen
	repo, closeFn, err = Open(ctx, Options{Backend: BackendSQLite, DSN: dsn})
	require.NoError(t, err)
	defer closeFn()

	v, err := repo.Get(ctx, "saved_chats")
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestSQLite_ErrorsWrappedAfterClose(t *testing.T) {
	r, closeFn := setupSQLite(t)
	ctx := context.Background()
	require.NoError(t, closeFn())

	_, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")

	err = r.Set(ctx, "k", []byte("v"))
	require.ErrorContains(t, err, "failed to set kv[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete kv[k]")

	err = r.Clear(ctx)
	require.ErrorContains(t, err, "failed to clear kv")

	_, err = r.List(ctx)
	require.ErrorContains(t, err, "failed to list kv")

	err = r.SetMany(ctx, map[string][]byte{"k": nil})
	require.Error(t, err)
}
