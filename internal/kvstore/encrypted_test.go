package kvstore

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/percify/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithEncryption_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryRepository()

	r, err := WithEncryption(ctx, inner, "correct horse")
	require.NoError(t, err)

	plain := []byte(`[{"id":"m1","text":"よろしくお願いします"}]`)
	require.NoError(t, r.Set(ctx, "saved_messages", plain))
	require.NoError(t, r.SetMany(ctx, map[string][]byte{"scout_accepted": []byte("true")}))

	raw, err := inner.Get(ctx, "saved_messages")
	require.NoError(t, err)
	assert.False(t, bytes.Contains(raw, plain))

	got, err := r.Get(ctx, "saved_messages")
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	absent, err := r.Get(ctx, "saved_chats")
	require.NoError(t, err)
	assert.Nil(t, absent)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"saved_messages": plain,
		"scout_accepted": []byte("true"),
	}, all)
}

func TestWithEncryption_ReopenReusesSalt(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryRepository()

	first, err := WithEncryption(ctx, inner, "pw")
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", []byte("v")))

	second, err := WithEncryption(ctx, inner, "pw")
	require.NoError(t, err)
	got, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

}

func TestWithEncryption_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryRepository()

	r, err := WithEncryption(ctx, inner, "right")
	require.NoError(t, err)
	require.NoError(t, r.Set(ctx, "saved_chats", []byte(`[{"id":"c1","isDeclined":true}]`)))
	before, _ := inner.List(ctx)

	wrong, err := WithEncryption(ctx, inner, "typo")
	require.ErrorIs(t, err, common.ErrWrongPassphrase)
	assert.Nil(t, wrong)

	after, _ := inner.List(ctx)
	assert.Equal(t, before, after)

	again, err := WithEncryption(ctx, inner, "right")
	require.NoError(t, err)
	got, err := again.Get(ctx, "saved_chats")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"c1","isDeclined":true}]`), got)
}

func TestWithEncryption_TamperedValue(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryRepository()

	r, err := WithEncryption(ctx, inner, "pw")
	require.NoError(t, err)
	require.NoError(t, inner.Set(ctx, "k", []byte("not sealed at all, just long enough")))

	_, err = r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to decrypt kv[k]")
}

func TestWithEncryption_AddsVerifierToSaltOnlyStore(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryRepository()
	require.NoError(t, inner.Set(ctx, SaltKey, bytes.Repeat([]byte{7}, 16)))

	_, err := WithEncryption(ctx, inner, "pw")
	require.NoError(t, err)
	verifier, err := inner.Get(ctx, VerifierKey)
	require.NoError(t, err)
	assert.NotNil(t, verifier)

	_, err = WithEncryption(ctx, inner, "other")
	require.ErrorIs(t, err, common.ErrWrongPassphrase)
}

func TestWithEncryption_ClearKeepsSalt(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryRepository()

	r, err := WithEncryption(ctx, inner, "pw")
	require.NoError(t, err)
	salt, _ := inner.Get(ctx, SaltKey)
	verifier, _ := inner.Get(ctx, VerifierKey)
	require.NoError(t, r.Set(ctx, "k", []byte("v")))
	require.NoError(t, r.Delete(ctx, "missing"))

	require.NoError(t, r.Clear(ctx))

	again, _ := inner.Get(ctx, SaltKey)
	assert.Equal(t, salt, again)
	againVerifier, _ := inner.Get(ctx, VerifierKey)
	assert.Equal(t, verifier, againVerifier)
	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = WithEncryption(ctx, inner, "pw")
	require.NoError(t, err)
}
