package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	logginginfra "github.com/alexisbeaulieu97/rangepick/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/rangepick/internal/ports"
)

func newJSONLogger(t *testing.T, buf *bytes.Buffer) ports.Logger {
	t.Helper()
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     "debug",
		Layer:     "test",
		Component: "publisher",
		Format:    "json",
	})
	require.NoError(t, err)
	return logger
}

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newJSONLogger(t, buf))

	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, sampleEvent{
		eventType: ports.EventDisplayMonthChanged,
		payload:   map[string]interface{}{"current_month": 4, "current_year": 2024},
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "calendar event", entry["msg"])
	require.Equal(t, ports.EventDisplayMonthChanged, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.EqualValues(t, 4, entry["current_month"])
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	var got []string
	_, err := publisher.Subscribe(ports.EventSelectionChanged, func(ctx context.Context, event ports.DomainEvent) error {
		got = append(got, "typed:"+event.EventType())
		return nil
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(WildcardEvent, func(ctx context.Context, event ports.DomainEvent) error {
		got = append(got, "any:"+event.EventType())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventSelectionChanged}))
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventSelectionReset}))

	require.Equal(t, []string{
		"typed:" + ports.EventSelectionChanged,
		"any:" + ports.EventSelectionChanged,
		"any:" + ports.EventSelectionReset,
	}, got)
}

func TestLoggingPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	calls := 0
	sub, err := publisher.Subscribe(ports.EventSelectionChanged, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventSelectionChanged}))
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventSelectionChanged}))

	require.Equal(t, 1, calls)
}

func TestLoggingPublisherLogsHandlerFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newJSONLogger(t, buf))

	delivered := false
	_, err := publisher.Subscribe(ports.EventSelectionChanged, func(context.Context, ports.DomainEvent) error {
		return errors.New("form rejected value")
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventSelectionChanged, func(context.Context, ports.DomainEvent) error {
		delivered = true
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventSelectionChanged}))
	require.True(t, delivered, "remaining subscribers still run")
	require.Contains(t, buf.String(), "event handler failed")
	require.Contains(t, buf.String(), "form rejected value")
}

type sampleEvent struct {
	eventType string
	payload   interface{}
}

func (e sampleEvent) EventType() string    { return e.eventType }
func (e sampleEvent) Payload() interface{} { return e.payload }
