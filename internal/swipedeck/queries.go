package swipedeck

import (
	"slices"

	"github.com/dmitrijs2005/percify/internal/models"
)

// Deck returns a copy of the deck, bottom first.
func (s *Store) Deck() []Entry {
	return slices.Clone(s.deck)
}

// Top returns the entry that will be shown next.
func (s *Store) Top() (Entry, bool) {
	if len(s.deck) == 0 {
		return nil, false
	}
	return s.deck[len(s.deck)-1], true
}

func (s *Store) Liked() []models.Recruitment     { return slices.Clone(s.liked) }
func (s *Store) Skipped() []models.Recruitment   { return slices.Clone(s.skipped) }
func (s *Store) Dismissed() []models.Recruitment { return slices.Clone(s.dismissed) }

// History returns the swipe records, oldest first.
func (s *Store) History() []SwipeRecord {
	return slices.Clone(s.history)
}

func (s *Store) LikeCount() int         { return s.likeCount }
func (s *Store) SkipCount() int         { return s.skipCount }
func (s *Store) InitialCardCount() int  { return s.initialCardCount }
func (s *Store) TotalInteractions() int { return s.likeCount + s.skipCount }
func (s *Store) CanUndo() bool          { return s.last != nil }

// IsEmpty reports whether nothing, not even a hint, is left to show.
func (s *Store) IsEmpty() bool {
	return len(s.deck) == 0
}

// CardCount is the number of postings in the deck; a pending hint is not
// counted.
func (s *Store) CardCount() int {
	n := 0
	for _, e := range s.deck {
		if _, ok := e.(CardEntry); ok {
			n++
		}
	}
	return n
}

// HasHint reports whether a hint card is pending.
func (s *Store) HasHint() bool {
	return s.hintIndex() >= 0
}

// SwipeProgress is the share of the initial postings no longer in the deck,
// in [0, 1]. It is 0 when the store started empty.
func (s *Store) SwipeProgress() float64 {
	if s.initialCardCount <= 0 {
		return 0
	}
	viewed := s.initialCardCount - s.CardCount()
	if viewed < 0 {
		return 0
	}
	return float64(viewed) / float64(s.initialCardCount)
}

func (s *Store) SwipeProgressPercentage() float64 {
	return s.SwipeProgress() * 100
}
