package chatarchive

import (
	"time"

	"github.com/dmitrijs2005/percify/internal/logging"
	"github.com/dmitrijs2005/percify/internal/models"
	"github.com/dmitrijs2005/percify/internal/seed"
)

type options struct {
	log  logging.Logger
	now  func() time.Time
	seed func() []models.Chat
}

type Option func(*options)

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithClock sets the time source used to stamp declined chats.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithSeed replaces the placeholder inbox used when nothing is stored and by
// Reset and Refresh.
func WithSeed(fn func() []models.Chat) Option {
	return func(o *options) { o.seed = fn }
}

func defaultOptions() options {
	return options{
		log:  logging.Nop(),
		now:  time.Now,
		seed: seed.Chats,
	}
}
