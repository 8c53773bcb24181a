package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/percify/internal/chatarchive"
	"github.com/dmitrijs2005/percify/internal/config"
	"github.com/dmitrijs2005/percify/internal/kvstore"
	"github.com/dmitrijs2005/percify/internal/logging"
	"github.com/dmitrijs2005/percify/internal/scoutthread"
	"github.com/dmitrijs2005/percify/internal/swipedeck"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// App owns the three stores for one console session and the repository they
// persist to.
type App struct {
	config *config.Config
	log    logging.Logger

	repo      kvstore.Repository
	closeRepo func() error
	unsub     []func()

	deck   *swipedeck.Store
	chats  *chatarchive.Store
	thread *scoutthread.Store
}

// NewApp opens the configured repository and builds the stores on it. Logs go
// to logOut.
func NewApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	log := logging.New(c.LogLevel, c.LogFormat, logOut)

	repo, closeRepo, err := kvstore.Open(ctx, kvstore.Options{
		Backend:     c.StorageBackend,
		DSN:         c.DSN,
		RedisURL:    c.RedisURL,
		RedisPrefix: c.RedisPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", c.StorageBackend, err)
	}
	if c.Passphrase != "" {
		if repo, err = kvstore.WithEncryption(ctx, repo, c.Passphrase); err != nil {
			_ = closeRepo()
			return nil, fmt.Errorf("enable encryption: %w", err)
		}
	}
	log.Info(ctx, "storage ready", "backend", c.StorageBackend, "encrypted", c.Passphrase != "")

	return newApp(ctx, c, log, kvstore.WithTimeout(repo, c.StorageTimeout), closeRepo), nil
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, repo kvstore.Repository, closeRepo func() error) *App {
	a := &App{
		config:    c,
		log:       log,
		repo:      repo,
		closeRepo: closeRepo,
		deck:      swipedeck.New(swipedeck.WithLogger(log)),
		chats:     chatarchive.New(ctx, repo, chatarchive.WithLogger(log)),
		thread:    scoutthread.New(ctx, repo, scoutthread.WithLogger(log)),
	}
	a.subscribe(ctx)
	return a
}

func (a *App) subscribe(ctx context.Context) {
	a.unsub = append(a.unsub,
		a.deck.Subscribe(func(e swipedeck.Event) {
			a.log.Debug(ctx, "deck changed", "kind", e.Kind, "id", e.ItemID)
		}),
		a.chats.Subscribe(func(e chatarchive.Event) {
			a.log.Debug(ctx, "inbox changed", "kind", e.Kind, "id", e.ChatID)
		}),
		a.thread.Subscribe(func(e scoutthread.Event) {
			a.log.Debug(ctx, "thread changed", "kind", e.Kind, "id", e.MessageID)
		}),
	)
}

// Run drives the REPL on stdin until EOF, exit or ctx cancellation. The prompt
// is only shown on an interactive terminal.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	prompt := ""
	if isTerminal(int(os.Stdin.Fd())) {
		printlnFn("Welcome to Percify (type 'help' for commands)")
		prompt = "percify>"
	}
	runREPL(ctx, a, prompt, bufio.NewScanner(os.Stdin))
}

// Close drops the store subscriptions and releases the repository.
func (a *App) Close(ctx context.Context) {
	for _, cancel := range a.unsub {
		cancel()
	}
	a.unsub = nil

	if a.closeRepo == nil {
		return
	}
	if err := a.closeRepo(); err != nil {
		a.log.Warn(ctx, "failed to close storage", "error", err)
	}
	a.closeRepo = nil
}
