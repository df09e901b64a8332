package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/justsurfingit/job-board/internal/logger"
)

// DefaultClientBufferSize is the per-subscriber buffer when none is configured.
const DefaultClientBufferSize = 16

// Broker fans events out to every subscriber. A subscriber whose buffer is
// full misses the event; publishers never block on slow readers.
type Broker struct {
	logger     logger.Logger
	mu         sync.RWMutex
	clients    map[string]chan Event
	bufferSize int
	closed     bool
}

// BrokerOption configures a broker.
type BrokerOption func(*Broker)

// WithClientBufferSize sets the per-subscriber buffer size.
func WithClientBufferSize(size int) BrokerOption {
	return func(b *Broker) {
		if size > 0 {
			b.bufferSize = size
		}
	}
}

// NewBroker creates a broker ready to accept subscribers.
func NewBroker(log logger.Logger, opts ...BrokerOption) *Broker {
	if log == nil {
		log = logger.NewNop()
	}
	b := &Broker{
		logger:     log,
		clients:    make(map[string]chan Event),
		bufferSize: DefaultClientBufferSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish delivers event to all current subscribers.
func (b *Broker) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish cancelled: %w", err)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return fmt.Errorf("broker closed (dropped event: %s)", event.Type)
	}

	dropped := 0
	for id, ch := range b.clients {
		select {
		case ch <- event:
		default:
			dropped++
			b.logger.Warn("Subscriber buffer full, dropping event",
				logger.String("client_id", id),
				logger.String("event_type", event.Type),
			)
		}
	}

	b.logger.Debug("Event published",
		logger.String("event_type", event.Type),
		logger.Int("clients", len(b.clients)),
		logger.Int("dropped", dropped),
	)
	return nil
}

// Subscribe registers a new subscriber. The returned channel is closed when
// ctx ends, when cleanup is called, or when the broker is closed.
func (b *Broker) Subscribe(ctx context.Context) (events <-chan Event, cleanup func()) {
	id := uuid.NewString()
	ch := make(chan Event, b.bufferSize)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.clients[id] = ch
	b.mu.Unlock()

	b.logger.Debug("Client subscribed",
		logger.String("client_id", id),
		logger.Int("total_clients", b.ClientCount()),
	)

	done := make(chan struct{})
	var once sync.Once
	cleanup = func() {
		once.Do(func() {
			close(done)
			b.remove(id)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cleanup()
		case <-done:
		}
	}()

	return ch, cleanup
}

// ClientCount returns the number of connected subscribers.
func (b *Broker) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Close disconnects every subscriber. Later publishes fail.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.clients {
		close(ch)
		delete(b.clients, id)
	}
	b.logger.Info("Event broker closed")
}

func (b *Broker) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.clients[id]; ok {
		close(ch)
		delete(b.clients, id)
	}
}
