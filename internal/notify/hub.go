// Package notify is the change-notification mechanism shared by the stores:
// a listener list that is invoked synchronously, in subscription order, after
// each successful mutation.
package notify

// Hub delivers events of type E to its subscribers. The zero value is ready to
// use. Like the stores that own it, a Hub is not safe for concurrent use.
type Hub[E any] struct {
	nextID int
	subs   []subscriber[E]
}

type subscriber[E any] struct {
	id int
	fn func(E)
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (h *Hub[E]) Subscribe(fn func(E)) (cancel func()) {
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscriber[E]{id: id, fn: fn})

	return func() {
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish calls every subscriber with e. Subscribers added or removed while
// publishing take effect from the next event.
func (h *Hub[E]) Publish(e E) {
	subs := h.subs
	for _, s := range subs {
		s.fn(e)
	}
}

// Len returns the number of active subscribers.
func (h *Hub[E]) Len() int {
	return len(h.subs)
}
