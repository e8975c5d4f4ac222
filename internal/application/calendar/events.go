package calendar

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/rangepick/internal/domain/calendar"
	"github.com/alexisbeaulieu97/rangepick/internal/ports"
)

// SelectionChangedEvent carries the selection accepted from a click or a
// keyboard activation. Zero times mark unset bounds.
type SelectionChangedEvent struct {
	Start time.Time
	End   time.Time
}

// EventType implements ports.DomainEvent.
func (e SelectionChangedEvent) EventType() string { return ports.EventSelectionChanged }

// Payload implements ports.DomainEvent.
func (e SelectionChangedEvent) Payload() interface{} {
	return map[string]interface{}{
		"start": boundField(e.Start),
		"end":   boundField(e.End),
	}
}

// Selection returns the event contents as a SelectionState.
func (e SelectionChangedEvent) Selection() calendar.SelectionState {
	return calendar.SelectionState{Start: e.Start, End: e.End}
}

// MonthChangedEvent reports a change of the visible month.
type MonthChangedEvent struct {
	CurrentMonth  time.Month
	CurrentYear   int
	PreviousMonth time.Month
	PreviousYear  int
}

// EventType implements ports.DomainEvent.
func (e MonthChangedEvent) EventType() string { return ports.EventDisplayMonthChanged }

// Payload implements ports.DomainEvent.
func (e MonthChangedEvent) Payload() interface{} {
	return map[string]interface{}{
		"current_month":  int(e.CurrentMonth),
		"current_year":   e.CurrentYear,
		"previous_month": int(e.PreviousMonth),
		"previous_year":  e.PreviousYear,
	}
}

// SelectionResetEvent reports that a partial range mode switch cleared the selection.
type SelectionResetEvent struct {
	Mode calendar.PartialRangeType
}

// EventType implements ports.DomainEvent.
func (e SelectionResetEvent) EventType() string { return ports.EventSelectionReset }

// Payload implements ports.DomainEvent.
func (e SelectionResetEvent) Payload() interface{} {
	return map[string]interface{}{"mode": string(e.Mode)}
}

func boundField(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}

func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger ports.Logger, event ports.DomainEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil && logger != nil {
		logger.Warn(ctx, "failed to publish domain event", "event_type", event.EventType(), "error", err)
	}
}
