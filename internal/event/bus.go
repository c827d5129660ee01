package event

import (
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/sublime247/Lumenpulse/internal/logger"
)

// Subscriber receives every published event.
type Subscriber func(Event)

// Bus fans events out to subscribers on a shared worker pool. Publish
// never blocks the ledger call that emitted the event; delivery order
// across subscribers is not guaranteed.
type Bus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	pool        *ants.Pool
}

// NewBus creates a bus backed by an ants pool of the given size.
func NewBus(workers int) (*Bus, error) {
	if workers <= 0 {
		workers = 4
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &Bus{pool: pool}, nil
}

// Subscribe registers a subscriber for all future events.
func (b *Bus) Subscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, s)
}

// Publish hands the event to every subscriber via the pool. A nil bus is
// a no-op so the ledgers can run without one in library use.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, s := range subs {
		s := s
		if err := b.pool.Submit(func() { s(e) }); err != nil {
			logger.Error("failed to submit event %s to pool: %v", e.Name(), err)
		}
	}
}

// Close releases the worker pool.
func (b *Bus) Close() {
	if b == nil {
		return
	}
	b.pool.Release()
}

// LogSubscriber returns a subscriber that writes every event to the log.
func LogSubscriber(log *logger.Logger) Subscriber {
	return func(e Event) {
		log.Info("event %s: %+v", e.Name(), e)
	}
}
