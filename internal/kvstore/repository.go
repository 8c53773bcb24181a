// Package kvstore is the key/value blob storage the stores persist into.
// Values are opaque byte slices; the stores put JSON documents under fixed
// keys. Backends: SQLite (local device storage, the default), PostgreSQL,
// Redis and an in-process map.
package kvstore

import "context"

// Repository stores opaque blobs under string keys.
type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all values or none of them.
	SetMany(ctx context.Context, values map[string][]byte) error
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
