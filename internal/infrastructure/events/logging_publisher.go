package events

import (
	"context"
	"sort"
	"sync"

	"github.com/fundraise-pro/themegen/internal/ports"
)

// LoggingPublisher writes every domain event as a structured log entry and
// then delivers it to subscribers in subscription order.
type LoggingPublisher struct {
	logger ports.Logger
	subs   map[string][]subscriptionEntry
	nextID int
	mu     sync.RWMutex
}

// NewLoggingPublisher creates an event publisher backed by logger. A nil
// logger still delivers to subscribers.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]subscriptionEntry),
	}
}

// Publish logs the event and runs its handlers synchronously. Handler errors
// are logged and never stop delivery.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[event.EventType()]...)
	p.mu.RUnlock()

	if p.logger != nil {
		p.logEvent(ctx, event)
	}

	for _, entry := range handlers {
		if err := entry.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}

	return nil
}

func (p *LoggingPublisher) logEvent(ctx context.Context, event ports.DomainEvent) {
	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	case nil:
	default:
		fields = append(fields, "payload", payload)
	}

	switch event.EventType() {
	case ports.EventTokenSubstituted:
		p.logger.Warn(ctx, "domain event", fields...)
	case ports.EventGenerationFailed:
		p.logger.Error(ctx, "domain event", fields...)
	case ports.EventThemeToggled, ports.EventGenerationStarted:
		p.logger.Debug(ctx, "domain event", fields...)
	default:
		p.logger.Info(ctx, "domain event", fields...)
	}
}

// Subscribe registers a handler for the provided event type.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return &subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[eventType]
			for i, entry := range handlers {
				if entry.id == id {
					next := make([]subscriptionEntry, 0, len(handlers)-1)
					next = append(next, handlers[:i]...)
					p.subs[eventType] = append(next, handlers[i+1:]...)
					break
				}
			}
		},
	}, nil
}

var _ ports.EventPublisher = (*LoggingPublisher)(nil)

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

type subscriptionEntry struct {
	id      int
	handler ports.EventHandler
}
