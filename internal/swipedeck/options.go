package swipedeck

import (
	"github.com/dmitrijs2005/percify/internal/logging"
	"github.com/dmitrijs2005/percify/internal/models"
	"github.com/dmitrijs2005/percify/internal/seed"
)

// SeedFunc produces the initial set of postings, last element on top.
type SeedFunc func() []models.Recruitment

type options struct {
	log  logging.Logger
	seed SeedFunc
}

type Option func(*options)

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithSeed replaces the built-in placeholder postings used by New and Reset.
func WithSeed(fn SeedFunc) Option {
	return func(o *options) { o.seed = fn }
}

func defaultOptions() options {
	return options{
		log:  logging.Nop(),
		seed: seed.Recruitments,
	}
}
