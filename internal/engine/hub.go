package engine

import "sync"

// Hub broadcasts "the user did something" to its subscribers. Each
// subscription is an explicit handle owned by whoever subscribed.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]func())}
}

// Subscription is a handle to one registered listener.
type Subscription struct {
	hub  *Hub
	id   int
	once sync.Once
}

func (h *Hub) Subscribe(fn func()) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.subs[h.next] = fn
	return &Subscription{hub: h, id: h.next}
}

// Cancel removes the listener. It is safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()
	})
}

// Publish calls every listener registered at the time of the call.
func (h *Hub) Publish() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len reports the number of registered listeners.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
