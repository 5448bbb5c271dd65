// Package event dispatches domain events to in-process handlers and RabbitMQ.
package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/odiedo/PesaTrackAdmin/internal/domain/shared"
	"go.uber.org/zap"
)

const defaultBufferSize = 256

// InMemoryEventBus implements EventBus with in-memory pub/sub.
// Before Start, Publish dispatches synchronously. After Start, events are
// queued on a buffered channel and a single worker delivers them in order.
type InMemoryEventBus struct {
	registry *HandlerRegistry
	logger   *zap.Logger
	size     int

	mu      sync.RWMutex
	queue   chan dispatch
	running bool
	done    chan struct{}
}

type dispatch struct {
	ctx   context.Context
	event shared.DomainEvent
}

// BusOption configures the event bus
type BusOption func(*InMemoryEventBus)

// WithBufferSize sets the capacity of the event queue
func WithBufferSize(size int) BusOption {
	return func(b *InMemoryEventBus) {
		if size > 0 {
			b.size = size
		}
	}
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger, opts ...BusOption) *InMemoryEventBus {
	b := &InMemoryEventBus{
		registry: NewHandlerRegistry(),
		logger:   logger,
		size:     defaultBufferSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish hands events to the registered handlers. Handler failures are
// logged and never returned to the publisher.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, event := range events {
		if !b.running {
			b.deliver(ctx, event)
			continue
		}
		// the request context is usually cancelled right after the response
		item := dispatch{ctx: context.WithoutCancel(ctx), event: event}
		select {
		case b.queue <- item:
		case <-ctx.Done():
			return fmt.Errorf("publish %s: %w", event.EventType(), ctx.Err())
		}
	}
	return nil
}

// Subscribe registers a handler for specific event types
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes a handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
	b.logger.Debug("handler unsubscribed")
}

// Start launches the delivery worker
func (b *InMemoryEventBus) Start(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return nil
	}
	b.queue = make(chan dispatch, b.size)
	b.done = make(chan struct{})
	b.running = true

	go b.run(b.queue, b.done)
	b.logger.Info("event bus started", zap.Int("buffer_size", b.size))
	return nil
}

// Stop drains queued events, waiting at most until ctx is done
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return nil
	}
	b.running = false
	close(b.queue)
	done := b.done
	b.mu.Unlock()

	select {
	case <-done:
		b.logger.Info("event bus stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event bus drain: %w", ctx.Err())
	}
}

func (b *InMemoryEventBus) run(queue <-chan dispatch, done chan<- struct{}) {
	defer close(done)
	for item := range queue {
		b.deliver(item.ctx, item.event)
	}
}

func (b *InMemoryEventBus) deliver(ctx context.Context, event shared.DomainEvent) {
	for _, handler := range b.registry.GetHandlers(event.EventType()) {
		if err := b.dispatchToHandler(ctx, handler, event); err != nil {
			b.logger.Error("handler failed to process event",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()),
				zap.Error(err),
			)
		}
	}
}

// dispatchToHandler isolates handler panics from the bus
func (b *InMemoryEventBus) dispatchToHandler(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", event.EventType()),
				zap.Any("panic", r),
			)
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()

	return handler.Handle(ctx, event)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
