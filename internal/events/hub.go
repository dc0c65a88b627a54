package events

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

const subscriberBuffer = 32

// Hub fans game events out to subscribed viewers. Publishing never blocks the
// core write path: a viewer whose buffer is full misses events and is
// expected to re-read the snapshot.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[uuid.UUID]map[chan Event]struct{}),
	}
}

// Subscribe registers a viewer for one game's events. The returned cancel
// function must be called when the viewer disconnects.
func (h *Hub) Subscribe(gameID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.subs[gameID] == nil {
		h.subs[gameID] = make(map[chan Event]struct{})
	}
	h.subs[gameID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[gameID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, gameID)
			}
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish delivers an event to every subscriber of its game
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	channels := make([]chan Event, 0, len(h.subs[event.GameID]))
	for ch := range h.subs[event.GameID] {
		channels = append(channels, ch)
	}
	h.mu.RUnlock()

	for _, ch := range channels {
		select {
		case ch <- event:
		default:
			log.Printf("[Hub] dropped %s event for game %s: slow subscriber", event.Type, event.GameID)
		}
	}
}

// SubscriberCount reports how many viewers a game currently has
func (h *Hub) SubscriberCount(gameID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[gameID])
}
