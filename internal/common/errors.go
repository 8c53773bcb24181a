// Package common defines sentinel errors shared by the Percify stores and
// persistence backends. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Persistence errors.
	ErrNotFound        = errors.New("not found")
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrWrongPassphrase = errors.New("wrong passphrase")

	// Deck errors.
	ErrNotInDeck = errors.New("item is not in the deck")
	ErrEmptyDeck = errors.New("deck is empty")

	// Thread errors.
	ErrEmptyMessage = errors.New("message text is empty")
)
