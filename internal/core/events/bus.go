package events

import (
	"context"
	"log"
	"sync"
)

// Handler consumes a single published event. A non-nil error is logged by
// the bus and never reaches the publisher.
type Handler func(ctx context.Context, evt Event) error

// Bus is an in-process publish/subscribe dispatcher. Subscriptions are
// registered once at startup; publishes fan out sequentially in
// registration order within the calling request's flow. There is no
// retry, no dead-letter, and no delivery to handlers registered after a
// publish — at-most-once, best-effort, in-memory.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler under an event type name. Registration
// order determines invocation order for that type.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// Publish delivers evt to every handler registered for its type, in
// registration order, and returns once all of them have run or failed.
// A failing handler never prevents later handlers and never propagates
// to the publisher. With no subscribers this is a silent no-op.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	b.mu.RLock()
	handlers := b.handlers[evt.Type()]
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(ctx, evt, h)
	}
}

// dispatch runs one handler, isolating errors and panics
func (b *Bus) dispatch(ctx context.Context, evt Event, h Handler) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Panic in handler for %s: %v", evt.Type(), r)
		}
	}()

	if err := h(ctx, evt); err != nil {
		log.Printf("❌ Error in handler for %s: %v", evt.Type(), err)
	}
}
