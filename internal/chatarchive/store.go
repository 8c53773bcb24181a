// Package chatarchive holds the scout inbox: chat threads that can be read,
// declined (archived), restored and deleted. Every mutation writes the whole
// list through to a kvstore.Repository under StorageKey.
//
// Persistence is best effort. Encoding and repository failures are logged
// and swallowed; the in-memory list stays authoritative.
//
// A Store is not safe for concurrent use.
package chatarchive

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/dmitrijs2005/percify/internal/kvstore"
	"github.com/dmitrijs2005/percify/internal/logging"
	"github.com/dmitrijs2005/percify/internal/models"
	"github.com/dmitrijs2005/percify/internal/notify"
)

// StorageKey is the repository key holding the JSON-encoded chat list.
const StorageKey = "saved_chats"

type EventKind string

const (
	EventRead     EventKind = "read"
	EventDeclined EventKind = "declined"
	EventRestored EventKind = "restored"
	EventDeleted  EventKind = "deleted"
	EventAdded    EventKind = "added"
	EventReset    EventKind = "reset"
	EventRefresh  EventKind = "refreshed"
)

// Event is published after a mutation. ChatID is empty for list-wide events.
type Event struct {
	Kind   EventKind
	ChatID string
}

type Store struct {
	chats []models.Chat

	repo   kvstore.Repository
	log    logging.Logger
	now    func() time.Time
	seed   func() []models.Chat
	events notify.Hub[Event]
}

// New loads the stored chat list from repo. When nothing usable is stored
// the seed inbox is used instead; it is not written until the first mutation.
func New(ctx context.Context, repo kvstore.Repository, opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		repo: repo,
		log:  o.log.With("store", "chatarchive"),
		now:  o.now,
		seed: o.seed,
	}

	s.chats = s.load(ctx)
	if len(s.chats) == 0 {
		s.chats = models.CloneChats(s.seed())
	}
	return s
}

func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	return s.events.Subscribe(fn)
}

func (s *Store) load(ctx context.Context) []models.Chat {
	blob, err := s.repo.Get(ctx, StorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to load chats", "error", err)
		return nil
	}
	if blob == nil {
		return nil
	}

	var chats []models.Chat
	if err := json.Unmarshal(blob, &chats); err != nil {
		s.log.Warn(ctx, "discarding unreadable chats", "error", err)
		if err := s.repo.Delete(ctx, StorageKey); err != nil {
			s.log.Warn(ctx, "failed to delete unreadable chats", "error", err)
		}
		return nil
	}
	return chats
}

func (s *Store) save(ctx context.Context) {
	blob, err := json.Marshal(s.chats)
	if err != nil {
		s.log.Warn(ctx, "failed to encode chats", "error", err)
		return
	}
	if err := s.repo.Set(ctx, StorageKey, blob); err != nil {
		s.log.Warn(ctx, "failed to save chats", "error", err)
	}
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.chats, func(c models.Chat) bool { return c.ID == id })
}

// update applies fn to the chat with id, persists and publishes kind. Unknown
// ids are ignored.
func (s *Store) update(ctx context.Context, id string, kind EventKind, fn func(*models.Chat)) bool {
	i := s.index(id)
	if i < 0 {
		s.log.Debug(ctx, "chat not found", "id", id, "op", kind)
		return false
	}

	fn(&s.chats[i])
	s.save(ctx)
	s.events.Publish(Event{Kind: kind, ChatID: id})
	return true
}

func (s *Store) MarkAsRead(ctx context.Context, id string) bool {
	return s.update(ctx, id, EventRead, func(c *models.Chat) {
		c.IsUnread = false
	})
}

// DeclineChat archives the chat and stamps DeclinedAt with the store clock.
func (s *Store) DeclineChat(ctx context.Context, id string) bool {
	return s.update(ctx, id, EventDeclined, func(c *models.Chat) {
		at := s.now()
		c.IsDeclined = true
		c.DeclinedAt = &at
	})
}

func (s *Store) RestoreChat(ctx context.Context, id string) bool {
	return s.update(ctx, id, EventRestored, func(c *models.Chat) {
		c.IsDeclined = false
		c.DeclinedAt = nil
	})
}

func (s *Store) DeleteChat(ctx context.Context, id string) bool {
	i := s.index(id)
	if i < 0 {
		s.log.Debug(ctx, "chat not found", "id", id, "op", EventDeleted)
		return false
	}

	s.chats = slices.Delete(s.chats, i, i+1)
	s.save(ctx)
	s.events.Publish(Event{Kind: EventDeleted, ChatID: id})
	return true
}

// AddChats appends chats to the inbox. Invalid chats and ones whose id is
// already present are skipped. It returns how many were added.
func (s *Store) AddChats(ctx context.Context, chats []models.Chat) int {
	n := 0
	for _, c := range chats {
		if err := models.Validate(c); err != nil {
			s.log.Warn(ctx, "rejected chat", "id", c.ID, "error", err)
			continue
		}
		if s.index(c.ID) >= 0 {
			continue
		}
		s.chats = append(s.chats, c.Clone())
		n++
	}
	if n == 0 {
		return 0
	}

	s.save(ctx)
	s.events.Publish(Event{Kind: EventAdded})
	return n
}

// Reset replaces the inbox with the seed list and persists it.
func (s *Store) Reset(ctx context.Context) {
	s.chats = models.CloneChats(s.seed())
	s.save(ctx)
	s.events.Publish(Event{Kind: EventReset})
}

// Refresh reloads the seed list in memory without persisting it.
func (s *Store) Refresh(ctx context.Context) {
	s.chats = models.CloneChats(s.seed())
	s.log.Debug(ctx, "inbox refreshed", "count", len(s.chats))
	s.events.Publish(Event{Kind: EventRefresh})
}
