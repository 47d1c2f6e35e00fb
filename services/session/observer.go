package session

import (
	"sync"

	"hotelbook/models"
)

type subscriber struct {
	ch   chan models.SessionView
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// offer replaces an unread value so publishers never block. Callers hold the hub lock.
func (s *subscriber) offer(v models.SessionView) {
	select {
	case s.ch <- v:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- v
}

// hub fans session changes out to the subscribers of each scope.
type hub struct {
	mu   sync.Mutex
	subs map[string]map[*subscriber]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[*subscriber]struct{})}
}

// subscribe registers a subscriber and replays current() to it under the hub
// lock, so no publish can slip in between.
func (h *hub) subscribe(scope string, current func() models.SessionView) (<-chan models.SessionView, func()) {
	sub := &subscriber{ch: make(chan models.SessionView, 1)}

	h.mu.Lock()
	if h.subs[scope] == nil {
		h.subs[scope] = make(map[*subscriber]struct{})
	}
	h.subs[scope][sub] = struct{}{}
	sub.offer(current())
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[scope]; ok {
			delete(set, sub)
			if len(set) == 0 {
				delete(h.subs, scope)
			}
		}
		h.mu.Unlock()
		sub.close()
	}
	return sub.ch, cancel
}

func (h *hub) publish(scope string, v models.SessionView) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs[scope] {
		sub.offer(v)
	}
}

// closeScope publishes v as the final value and releases the scope's subscribers.
func (h *hub) closeScope(scope string, v models.SessionView) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs[scope] {
		sub.offer(v)
		sub.close()
	}
	delete(h.subs, scope)
}

func (h *hub) count(scope string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[scope])
}
