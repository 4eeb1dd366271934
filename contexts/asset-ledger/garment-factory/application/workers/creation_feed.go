package workers

import (
	"context"
	"log/slog"
	"sync"

	sharedevents "atelier/internal/shared/events"
)

// CreationFeed consumes creation events from the bus and keeps a bounded
// in-memory projection of the most recent creations. External indexers read
// the same stream; this feed backs the worker process and tests.
type CreationFeed struct {
	Capacity int
	Logger   *slog.Logger

	mu     sync.Mutex
	recent []sharedevents.Envelope
	seen   map[string]struct{}
}

func (f *CreationFeed) Handle(_ context.Context, event sharedevents.Envelope) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen == nil {
		f.seen = make(map[string]struct{})
	}
	if _, dup := f.seen[event.EventID]; dup {
		return nil
	}
	f.seen[event.EventID] = struct{}{}

	f.recent = append(f.recent, event)
	if capacity := f.capacity(); len(f.recent) > capacity {
		evicted := f.recent[0]
		delete(f.seen, evicted.EventID)
		f.recent = f.recent[1:]
	}

	if f.Logger != nil {
		f.Logger.Info("creation event consumed",
			"event", "creation_feed_consumed",
			"module", "asset-ledger/garment-factory",
			"layer", "worker",
			"event_id", event.EventID,
			"event_type", event.EventType,
			"entity_id", event.EntityID,
		)
	}
	return nil
}

// Recent returns a snapshot of consumed events, oldest first.
func (f *CreationFeed) Recent() []sharedevents.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sharedevents.Envelope(nil), f.recent...)
}

func (f *CreationFeed) capacity() int {
	if f.Capacity <= 0 {
		return 256
	}
	return f.Capacity
}
