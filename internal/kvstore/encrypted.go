package kvstore

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/percify/internal/common"
	"github.com/dmitrijs2005/percify/internal/cryptox"
)

// SaltKey holds the Argon2 salt for an encrypted repository and VerifierKey a
// known value sealed under the derived key. Both are hidden from List and
// survive Clear.
const (
	SaltKey     = "kv_salt"
	VerifierKey = "kv_verifier"
)

var verifierPlaintext = []byte("percify")

type encryptedRepository struct {
	next     Repository
	key      []byte
	salt     []byte
	verifier []byte
}

// WithEncryption seals every value written through it with a key derived
// from passphrase. The salt and verifier are read from next, or generated and
// stored on first use. A passphrase that does not open the stored verifier
// gives an error wrapping common.ErrWrongPassphrase.
func WithEncryption(ctx context.Context, next Repository, passphrase string) (Repository, error) {
	salt, err := next.Get(ctx, SaltKey)
	if err != nil {
		return nil, fmt.Errorf("load salt: %w", err)
	}

	if salt == nil {
		if salt, err = cryptox.RandomBytes(cryptox.SaltSize); err != nil {
			return nil, err
		}
		r, err := newEncrypted(next, passphrase, salt)
		if err != nil {
			return nil, err
		}
		if err := r.storeKeyMaterial(ctx); err != nil {
			return nil, err
		}
		return r, nil
	}

	verifier, err := next.Get(ctx, VerifierKey)
	if err != nil {
		return nil, fmt.Errorf("load verifier: %w", err)
	}
	r, err := newEncrypted(next, passphrase, salt)
	if err != nil {
		return nil, err
	}
	if verifier == nil {
		// salt written without a verifier: adopt this passphrase
		if err := r.storeKeyMaterial(ctx); err != nil {
			return nil, err
		}
		return r, nil
	}

	plain, err := cryptox.Open(r.key, verifier)
	if err != nil || subtle.ConstantTimeCompare(plain, verifierPlaintext) == 0 {
		return nil, fmt.Errorf("open encrypted storage: %w", common.ErrWrongPassphrase)
	}
	r.verifier = verifier
	return r, nil
}

func newEncrypted(next Repository, passphrase string, salt []byte) (*encryptedRepository, error) {
	key := cryptox.DeriveKey([]byte(passphrase), salt)
	verifier, err := cryptox.Seal(key, verifierPlaintext)
	if err != nil {
		return nil, fmt.Errorf("seal verifier: %w", err)
	}
	return &encryptedRepository{next: next, key: key, salt: salt, verifier: verifier}, nil
}

func (r *encryptedRepository) storeKeyMaterial(ctx context.Context) error {
	err := r.next.SetMany(ctx, map[string][]byte{SaltKey: r.salt, VerifierKey: r.verifier})
	if err != nil {
		return fmt.Errorf("store key material: %w", err)
	}
	return nil
}

func (r *encryptedRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := r.next.Get(ctx, key)
	if err != nil || sealed == nil {
		return sealed, err
	}

	plain, err := cryptox.Open(r.key, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt kv[%s]: %w", key, err)
	}
	return plain, nil
}

func (r *encryptedRepository) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(r.key, value)
	if err != nil {
		return fmt.Errorf("failed to encrypt kv[%s]: %w", key, err)
	}
	return r.next.Set(ctx, key, sealed)
}

func (r *encryptedRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	sealed := make(map[string][]byte, len(values))
	for k, v := range values {
		s, err := cryptox.Seal(r.key, v)
		if err != nil {
			return fmt.Errorf("failed to encrypt kv[%s]: %w", k, err)
		}
		sealed[k] = s
	}
	return r.next.SetMany(ctx, sealed)
}

func (r *encryptedRepository) Delete(ctx context.Context, key string) error {
	return r.next.Delete(ctx, key)
}

func (r *encryptedRepository) List(ctx context.Context) (map[string][]byte, error) {
	all, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}
	delete(all, SaltKey)
	delete(all, VerifierKey)

	for k, v := range all {
		plain, err := cryptox.Open(r.key, v)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt kv[%s]: %w", k, err)
		}
		all[k] = plain
	}
	return all, nil
}

// Clear removes every value but keeps the salt and verifier, so the
// passphrase stays valid for later opens.
func (r *encryptedRepository) Clear(ctx context.Context) error {
	if err := r.next.Clear(ctx); err != nil {
		return err
	}
	return r.storeKeyMaterial(ctx)
}
