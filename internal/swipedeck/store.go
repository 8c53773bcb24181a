// Package swipedeck implements the discovery deck: an ordered stack of
// recruitment postings (top = last element) that the user likes or dislikes
// one at a time, with single-level undo, bulk undo and a transient hint card.
//
// A Store keeps these invariants after every method returns:
//
//   - LikeCount() == len(Liked()) and SkipCount() == len(Skipped()).
//   - Every posting loaded into the store is in exactly one of Deck(),
//     Liked(), Skipped() or Dismissed().
//   - At most one hint entry is in the deck.
//
// A Store is not safe for concurrent use; callers serialize access, typically
// by driving it from a single event loop.
package swipedeck

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/percify/internal/common"
	"github.com/dmitrijs2005/percify/internal/logging"
	"github.com/dmitrijs2005/percify/internal/models"
	"github.com/dmitrijs2005/percify/internal/notify"
	"github.com/google/uuid"
)

type lastSwipe struct {
	item   models.Recruitment
	action Action
}

type Store struct {
	deck      []Entry
	liked     []models.Recruitment
	skipped   []models.Recruitment
	dismissed []models.Recruitment
	history   []SwipeRecord
	last      *lastSwipe

	likeCount        int
	skipCount        int
	initialCardCount int

	seed   SeedFunc
	log    logging.Logger
	events notify.Hub[Event]
}

// New returns a store whose deck holds the seed postings.
func New(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{seed: o.seed, log: o.log.With("store", "swipedeck")}
	s.load(s.seed())
	return s
}

// Subscribe registers fn to be called after every successful mutation.
func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	return s.events.Subscribe(fn)
}

func (s *Store) load(items []models.Recruitment) {
	s.deck = s.deck[:0]
	for _, item := range items {
		if !s.admit(item) {
			continue
		}
		s.deck = append(s.deck, CardEntry{Item: item})
	}
	s.initialCardCount = s.CardCount()
}

// admit reports whether item may enter the store: it must be valid and its
// identity must not be tracked already.
func (s *Store) admit(item models.Recruitment) bool {
	if err := models.Validate(item); err != nil {
		s.log.Warn(context.Background(), "rejected posting", "id", item.ID, "error", err)
		return false
	}
	if s.tracked(item.ID) {
		s.log.Debug(context.Background(), "skipped duplicate posting", "id", item.ID)
		return false
	}
	return true
}

func (s *Store) tracked(id string) bool {
	if s.cardIndex(id) >= 0 {
		return true
	}
	for _, list := range [][]models.Recruitment{s.liked, s.skipped, s.dismissed} {
		if indexOf(list, id) >= 0 {
			return true
		}
	}
	return false
}

// Like records a like for item, which must be a card in the deck. It returns
// an error wrapping common.ErrNotInDeck and changes nothing otherwise.
func (s *Store) Like(item models.Recruitment) error {
	return s.swipe(item.ID, ActionLike)
}

// Dislike records a dislike for item, with the same contract as Like.
func (s *Store) Dislike(item models.Recruitment) error {
	return s.swipe(item.ID, ActionDislike)
}

// SwipeTop applies action to whatever is on top of the deck. A hint on top is
// consumed instead of recorded. It returns the entry that was removed.
func (s *Store) SwipeTop(action Action) (Entry, error) {
	top, ok := s.Top()
	if !ok {
		return nil, common.ErrEmptyDeck
	}

	switch e := top.(type) {
	case HintEntry:
		s.ConsumeHint()
		return e, nil
	case CardEntry:
		return e, s.swipe(e.Item.ID, action)
	default:
		return nil, fmt.Errorf("unexpected deck entry %T", top)
	}
}

func (s *Store) swipe(id string, action Action) error {
	kind := EventLiked
	switch action {
	case ActionLike:
	case ActionDislike:
		kind = EventDisliked
	default:
		return fmt.Errorf("unknown action %q", action)
	}

	idx := s.cardIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", common.ErrNotInDeck, id)
	}

	item := s.deck[idx].(CardEntry).Item
	s.deck = append(s.deck[:idx], s.deck[idx+1:]...)

	if action == ActionLike {
		s.likeCount++
		s.liked = append(s.liked, item)
	} else {
		s.skipCount++
		s.skipped = append(s.skipped, item)
	}
	s.history = append(s.history, SwipeRecord{Item: item, Action: action})
	s.last = &lastSwipe{item: item, action: action}

	s.events.Publish(Event{Kind: kind, ItemID: item.ID})
	return nil
}

// Undo reverts the most recent like or dislike, putting the card back on top
// of the deck. It reports false when there is nothing to undo.
func (s *Store) Undo() bool {
	if s.last == nil {
		return false
	}
	item, action := s.last.item, s.last.action

	s.deck = append(s.deck, CardEntry{Item: item})
	switch action {
	case ActionLike:
		s.likeCount = max(0, s.likeCount-1)
		s.liked = removeID(s.liked, item.ID)
	case ActionDislike:
		s.skipCount = max(0, s.skipCount-1)
		s.skipped = removeID(s.skipped, item.ID)
	}
	s.dropHistory(item.ID, action)
	s.last = nil

	s.events.Publish(Event{Kind: EventUndone, ItemID: item.ID})
	return true
}

// UndoAll returns every decided card to the deck by appending the history in
// reverse: after swiping A, B then C the deck ends with C, B, A, so the
// postings come back in the order they were first presented.
func (s *Store) UndoAll() {
	for i := len(s.history) - 1; i >= 0; i-- {
		s.deck = append(s.deck, CardEntry{Item: s.history[i].Item})
	}

	s.likeCount, s.skipCount = 0, 0
	s.liked, s.skipped, s.history = nil, nil, nil
	s.last = nil

	s.events.Publish(Event{Kind: EventUndoneAll})
}

// InsertHint puts a hint card on top of the deck. It does nothing and returns
// false when a hint is already pending.
func (s *Store) InsertHint() bool {
	if s.hintIndex() >= 0 {
		return false
	}

	h := HintEntry{ID: uuid.NewString()}
	s.deck = append(s.deck, h)
	s.events.Publish(Event{Kind: EventHintInserted, ItemID: h.ID})
	return true
}

// ConsumeHint removes the pending hint card. Hint swipes are not decisions:
// counters, result lists, history and the undo slot are left alone.
func (s *Store) ConsumeHint() bool {
	idx := s.hintIndex()
	if idx < 0 {
		return false
	}

	h := s.deck[idx].(HintEntry)
	s.deck = append(s.deck[:idx], s.deck[idx+1:]...)
	s.events.Publish(Event{Kind: EventHintConsumed, ItemID: h.ID})
	return true
}

// AddItems places new postings at the bottom of the deck, below everything
// already waiting, preserving their relative order. Invalid postings and ones
// whose id is already tracked are skipped. It returns how many were added.
func (s *Store) AddItems(items []models.Recruitment) int {
	seen := make(map[string]struct{}, len(items))
	added := make([]Entry, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		if !s.admit(item) {
			continue
		}
		seen[item.ID] = struct{}{}
		added = append(added, CardEntry{Item: item})
	}
	if len(added) == 0 {
		return 0
	}

	s.deck = append(added, s.deck...)
	s.initialCardCount = max(s.initialCardCount, s.CardCount())

	s.events.Publish(Event{Kind: EventItemsAdded})
	return len(added)
}

// Reset discards all state and reloads the seed postings.
func (s *Store) Reset() {
	s.deck = nil
	s.liked, s.skipped, s.dismissed, s.history = nil, nil, nil, nil
	s.last = nil
	s.likeCount, s.skipCount = 0, 0

	s.load(s.seed())
	s.events.Publish(Event{Kind: EventReset})
}

// RemoveLiked drops item from the liked list and history without returning it
// to the deck; it moves to Dismissed. It reports false if item was not liked.
func (s *Store) RemoveLiked(item models.Recruitment) bool {
	return s.dismiss(item.ID, ActionLike)
}

// RemoveSkipped is RemoveLiked for the skipped list.
func (s *Store) RemoveSkipped(item models.Recruitment) bool {
	return s.dismiss(item.ID, ActionDislike)
}

func (s *Store) dismiss(id string, action Action) bool {
	list, count, kind := &s.liked, &s.likeCount, EventLikedRemoved
	if action == ActionDislike {
		list, count, kind = &s.skipped, &s.skipCount, EventSkippedRemoved
	}

	idx := indexOf(*list, id)
	if idx < 0 {
		return false
	}

	item := (*list)[idx]
	*list = append((*list)[:idx], (*list)[idx+1:]...)
	*count = max(0, *count-1)
	s.dropHistory(id, action)
	s.dismissed = append(s.dismissed, item)

	// undoing would otherwise decrement a counter for a card no longer listed
	if s.last != nil && s.last.item.ID == id {
		s.last = nil
	}

	s.events.Publish(Event{Kind: kind, ItemID: id})
	return true
}

func (s *Store) dropHistory(id string, action Action) {
	for i := len(s.history) - 1; i >= 0; i-- {
		if s.history[i].Item.ID == id && s.history[i].Action == action {
			s.history = append(s.history[:i], s.history[i+1:]...)
			return
		}
	}
}

func (s *Store) cardIndex(id string) int {
	for i, e := range s.deck {
		if c, ok := e.(CardEntry); ok && c.Item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) hintIndex() int {
	for i := len(s.deck) - 1; i >= 0; i-- {
		if _, ok := s.deck[i].(HintEntry); ok {
			return i
		}
	}
	return -1
}

func indexOf(list []models.Recruitment, id string) int {
	for i, r := range list {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func removeID(list []models.Recruitment, id string) []models.Recruitment {
	if i := indexOf(list, id); i >= 0 {
		return append(list[:i], list[i+1:]...)
	}
	return list
}
