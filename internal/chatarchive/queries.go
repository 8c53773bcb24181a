package chatarchive

import "github.com/dmitrijs2005/percify/internal/models"

func (s *Store) filter(keep func(models.Chat) bool) []models.Chat {
	out := make([]models.Chat, 0, len(s.chats))
	for _, c := range s.chats {
		if keep(c) {
			out = append(out, c.Clone())
		}
	}
	return out
}

func (s *Store) count(keep func(models.Chat) bool) int {
	n := 0
	for _, c := range s.chats {
		if keep(c) {
			n++
		}
	}
	return n
}

// Chats returns a copy of every thread in inbox order.
func (s *Store) Chats() []models.Chat {
	return s.filter(func(models.Chat) bool { return true })
}

func (s *Store) ActiveChats() []models.Chat {
	return s.filter(func(c models.Chat) bool { return !c.IsDeclined })
}

func (s *Store) DeclinedChats() []models.Chat {
	return s.filter(func(c models.Chat) bool { return c.IsDeclined })
}

// PriorityChats and StandardChats partition the whole inbox, declined
// threads included.
func (s *Store) PriorityChats() []models.Chat {
	return s.filter(func(c models.Chat) bool { return c.IsPriority })
}

func (s *Store) StandardChats() []models.Chat {
	return s.filter(func(c models.Chat) bool { return !c.IsPriority })
}

func (s *Store) UnreadCount() int {
	return s.count(func(c models.Chat) bool { return c.IsUnread })
}

func (s *Store) DeclinedCount() int {
	return s.count(func(c models.Chat) bool { return c.IsDeclined })
}

// Get returns the thread with id.
func (s *Store) Get(id string) (models.Chat, bool) {
	if i := s.index(id); i >= 0 {
		return s.chats[i].Clone(), true
	}
	return models.Chat{}, false
}
