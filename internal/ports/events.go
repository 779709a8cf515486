package ports

import "context"

const (
	// EventGenerationStarted is emitted when a generation run begins.
	EventGenerationStarted = "generation.started"
	// EventGenerationCompleted is emitted after the stylesheet has been produced.
	EventGenerationCompleted = "generation.completed"
	// EventGenerationFailed is emitted when a run terminates with an error.
	EventGenerationFailed = "generation.failed"
	// EventTokenSubstituted is emitted for each color rendered as the neutral substitute.
	EventTokenSubstituted = "token.substituted"
	// EventThemeToggled is emitted when the active mode of a theme switch changes.
	EventThemeToggled = "theme.toggled"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that downstream
// subscribers can use for logging, UI updates, or integrations.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run. Implementations must
// be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures should be
// returned so publishers can log them and continue delivering.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events.
type Subscription interface {
	Unsubscribe()
}
