package events

import (
	"sync"

	"go.uber.org/zap"
)

// Subscriber receives messages for a single scope over a buffered channel.
// When the buffer is full further messages for it are dropped.
type Subscriber struct {
	scope string
	ch    chan Message
}

// C exposes the receive channel.
func (s *Subscriber) C() <-chan Message {
	return s.ch
}

// Hub is a process-local registry of subscribers grouped by scope.
// It is constructed once at startup and injected; there is no package-level
// instance.
type Hub struct {
	log    *zap.SugaredLogger
	buffer int

	mu     sync.RWMutex
	scopes map[string]map[*Subscriber]struct{}
}

// NewHub creates a hub with the given per-subscriber buffer size.
func NewHub(log *zap.SugaredLogger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		log:    log.Named("events.hub"),
		buffer: buffer,
		scopes: make(map[string]map[*Subscriber]struct{}),
	}
}

// Subscribe registers a new subscriber on a scope.
func (h *Hub) Subscribe(scope string) *Subscriber {
	sub := &Subscriber{scope: scope, ch: make(chan Message, h.buffer)}

	h.mu.Lock()
	set, ok := h.scopes[scope]
	if !ok {
		set = make(map[*Subscriber]struct{})
		h.scopes[scope] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	h.log.Debugw("subscriber joined", "scope", scope)
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if set, ok := h.scopes[sub.scope]; ok {
		if _, member := set[sub]; member {
			delete(set, sub)
			close(sub.ch)
			if len(set) == 0 {
				delete(h.scopes, sub.scope)
			}
		}
	}
	h.mu.Unlock()

	h.log.Debugw("subscriber left", "scope", sub.scope)
}

// Broadcast delivers the event to every current subscriber of the scope.
// Slow subscribers with a full buffer are skipped rather than blocked on.
// Sends happen under the read lock: Unsubscribe holds the write lock while
// closing a channel, so a send never races a close.
func (h *Hub) Broadcast(scope, event string, payload any) {
	msg := Message{Event: event, Payload: payload}

	h.mu.RLock()
	dropped := 0
	for sub := range h.scopes[scope] {
		select {
		case sub.ch <- msg:
		default:
			dropped++
		}
	}
	h.mu.RUnlock()

	if dropped > 0 {
		h.log.Warnw("dropped messages for slow subscribers", "scope", scope, "event", event, "dropped", dropped)
	}
}
