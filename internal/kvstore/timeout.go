package kvstore

import (
	"context"
	"time"
)

type timeoutRepository struct {
	next Repository
	d    time.Duration
}

// WithTimeout bounds every call to next by d. A non-positive d returns next
// unchanged.
func WithTimeout(next Repository, d time.Duration) Repository {
	if d <= 0 {
		return next
	}
	return &timeoutRepository{next: next, d: d}
}

func (r *timeoutRepository) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.d)
	defer cancel()
	return r.next.Get(ctx, key)
}

func (r *timeoutRepository) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, r.d)
	defer cancel()
	return r.next.Set(ctx, key, value)
}

func (r *timeoutRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	ctx, cancel := context.WithTimeout(ctx, r.d)
	defer cancel()
	return r.next.SetMany(ctx, values)
}

func (r *timeoutRepository) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.d)
	defer cancel()
	return r.next.Delete(ctx, key)
}

func (r *timeoutRepository) List(ctx context.Context) (map[string][]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.d)
	defer cancel()
	return r.next.List(ctx)
}

func (r *timeoutRepository) Clear(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.d)
	defer cancel()
	return r.next.Clear(ctx)
}
