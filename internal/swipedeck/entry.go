package swipedeck

import "github.com/dmitrijs2005/percify/internal/models"

// Entry is one element of the deck: a CardEntry or a HintEntry. The set of
// implementations is closed.
type Entry interface {
	deckEntry()
}

// CardEntry is a recruitment posting waiting for a decision.
type CardEntry struct {
	Item models.Recruitment
}

// HintEntry is the onboarding card. It carries no business data and is never
// recorded as a decision.
type HintEntry struct {
	ID string
}

func (CardEntry) deckEntry() {}
func (HintEntry) deckEntry() {}

// Action is a swipe decision.
type Action string

const (
	ActionLike    Action = "like"
	ActionDislike Action = "dislike"
)

// SwipeRecord is one entry of the swipe history.
type SwipeRecord struct {
	Item   models.Recruitment
	Action Action
}

// EventKind names the mutation an Event reports.
type EventKind string

const (
	EventLiked          EventKind = "liked"
	EventDisliked       EventKind = "disliked"
	EventUndone         EventKind = "undone"
	EventUndoneAll      EventKind = "undone_all"
	EventHintInserted   EventKind = "hint_inserted"
	EventHintConsumed   EventKind = "hint_consumed"
	EventItemsAdded     EventKind = "items_added"
	EventReset          EventKind = "reset"
	EventLikedRemoved   EventKind = "liked_removed"
	EventSkippedRemoved EventKind = "skipped_removed"
)

// Event is published after a mutation has been fully applied. ItemID is set
// for events about a single card or hint.
type Event struct {
	Kind   EventKind
	ItemID string
}
