// Package scoutthread holds a single scout conversation: its messages and
// whether the user has accepted the scout. Both are persisted to a
// kvstore.Repository, messages under MessagesKey and the flag under
// AcceptedKey, on every change.
package scoutthread

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/percify/internal/common"
	"github.com/dmitrijs2005/percify/internal/kvstore"
	"github.com/dmitrijs2005/percify/internal/logging"
	"github.com/dmitrijs2005/percify/internal/models"
	"github.com/dmitrijs2005/percify/internal/notify"
	"github.com/dmitrijs2005/percify/internal/seed"
)

const (
	MessagesKey = "saved_messages"
	AcceptedKey = "scout_accepted"
)

type EventKind string

const (
	EventMessageSent EventKind = "message_sent"
	EventAccepted    EventKind = "accepted"
	EventReset       EventKind = "reset"
)

type Event struct {
	Kind      EventKind
	MessageID string
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

type Store struct {
	messages []models.ChatMessage
	accepted bool

	repo   kvstore.Repository
	log    logging.Logger
	now    func() time.Time
	events notify.Hub[Event]
}

// New loads the conversation from repo. If no messages are stored the two
// recruiter placeholder messages are created and persisted.
func New(ctx context.Context, repo kvstore.Repository, opts ...Option) *Store {
	s := &Store{repo: repo, log: logging.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("store", "scoutthread")

	s.messages = s.loadMessages(ctx)
	s.accepted = s.loadAccepted(ctx)

	if len(s.messages) == 0 {
		s.messages = seed.ScoutMessages(s.now())
		s.saveMessages(ctx)
	}
	return s
}

func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	return s.events.Subscribe(fn)
}

// Messages returns a copy of the conversation, oldest first.
func (s *Store) Messages() []models.ChatMessage {
	return slices.Clone(s.messages)
}

func (s *Store) IsAccepted() bool {
	return s.accepted
}

// SendMessage appends a message from the current user. Surrounding
// whitespace is trimmed; blank text is rejected with common.ErrEmptyMessage.
func (s *Store) SendMessage(ctx context.Context, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, common.ErrEmptyMessage
	}

	msg := models.NewChatMessage(text, true, s.now())
	s.messages = append(s.messages, msg)
	s.saveMessages(ctx)

	s.events.Publish(Event{Kind: EventMessageSent, MessageID: msg.ID})
	return msg, nil
}

func (s *Store) AcceptScout(ctx context.Context) {
	s.accepted = true
	s.saveAccepted(ctx)
	s.events.Publish(Event{Kind: EventAccepted})
}

// ResetDemo restores the placeholder conversation and clears acceptance,
// writing both keys together.
func (s *Store) ResetDemo(ctx context.Context) {
	s.messages = seed.ScoutMessages(s.now())
	s.accepted = false

	msgs, err := json.Marshal(s.messages)
	if err != nil {
		s.log.Warn(ctx, "failed to encode messages", "error", err)
		return
	}
	flag, _ := json.Marshal(s.accepted)

	if err := s.repo.SetMany(ctx, map[string][]byte{MessagesKey: msgs, AcceptedKey: flag}); err != nil {
		s.log.Warn(ctx, "failed to save scout thread", "error", err)
	}
	s.events.Publish(Event{Kind: EventReset})
}

func (s *Store) loadMessages(ctx context.Context) []models.ChatMessage {
	blob, err := s.repo.Get(ctx, MessagesKey)
	if err != nil {
		s.log.Warn(ctx, "failed to load messages", "error", err)
		return nil
	}
	if blob == nil {
		return nil
	}

	var msgs []models.ChatMessage
	if err := json.Unmarshal(blob, &msgs); err != nil {
		s.log.Warn(ctx, "discarding unreadable messages", "error", err)
		return nil
	}
	return msgs
}

// loadAccepted treats a missing or unreadable flag as false.
func (s *Store) loadAccepted(ctx context.Context) bool {
	blob, err := s.repo.Get(ctx, AcceptedKey)
	if err != nil {
		s.log.Warn(ctx, "failed to load acceptance", "error", err)
		return false
	}
	if blob == nil {
		return false
	}

	var accepted bool
	if err := json.Unmarshal(blob, &accepted); err != nil {
		s.log.Warn(ctx, "discarding unreadable acceptance", "error", err)
		return false
	}
	return accepted
}

func (s *Store) saveMessages(ctx context.Context) {
	blob, err := json.Marshal(s.messages)
	if err != nil {
		s.log.Warn(ctx, "failed to encode messages", "error", err)
		return
	}
	if err := s.repo.Set(ctx, MessagesKey, blob); err != nil {
		s.log.Warn(ctx, "failed to save messages", "error", err)
	}
}

func (s *Store) saveAccepted(ctx context.Context) {
	blob, _ := json.Marshal(s.accepted)
	if err := s.repo.Set(ctx, AcceptedKey, blob); err != nil {
		s.log.Warn(ctx, "failed to save acceptance", "error", err)
	}
}
