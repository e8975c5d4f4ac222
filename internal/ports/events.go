package ports

import "context"

const (
	// EventSelectionChanged is emitted once per accepted click or keyboard activation.
	EventSelectionChanged = "calendar.selection_changed"
	// EventDisplayMonthChanged is emitted whenever the visible month changes.
	EventDisplayMonthChanged = "calendar.month_changed"
	// EventSelectionReset is emitted when a partial range mode switch clears the selection.
	EventSelectionReset = "calendar.selection_reset"
)

// DomainEvent represents a significant occurrence within the calendar engine.
// Events carry structured payloads that subscribers can use for logging,
// form bindings, or UI updates.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns only after every handler ran, so a
// subscriber observes the new state before the next input event is
// processed. Implementations must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures should be
// returned rather than panicking so publishers can log them and keep
// delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers invoke Unsubscribe
// to stop receiving events.
type Subscription interface {
	Unsubscribe()
}
