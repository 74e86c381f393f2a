package feed

import (
	"context"
	"sync"
)

const (
	KindBid     = "bid"
	KindState   = "state"
	KindPayment = "payment"
)

// Event announces that the ledger or state of a lot changed. Subscribers
// re-read the full ordered snapshot on every event.
type Event struct {
	LotID  string `json:"lot_id"`
	Kind   string `json:"kind"`
	Origin string `json:"origin,omitempty"`
}

// Notifier is implemented by anything that fans change events out to subscribers
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

type subscription struct {
	lotID string
	ch    chan Event
}

// Hub fans events out to in-process subscribers.
// Each subscriber holds at most one pending event; later events coalesce into it.
type Hub struct {
	mu   sync.RWMutex
	subs map[*subscription]struct{}
}

var _ Notifier = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{subs: make(map[*subscription]struct{})}
}

// Subscribe returns a channel receiving events for lotID, or for every lot when
// lotID is empty. The returned func cancels the subscription and closes the channel.
func (h *Hub) Subscribe(lotID string) (<-chan Event, func()) {
	sub := &subscription{lotID: lotID, ch: make(chan Event, 1)}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, sub)
			h.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Notify delivers ev to every matching subscriber without blocking
func (h *Hub) Notify(_ context.Context, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs {
		if sub.lotID != "" && sub.lotID != ev.LotID {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

// Subscribers returns the number of live subscriptions
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
