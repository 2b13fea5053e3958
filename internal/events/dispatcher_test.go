package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPublishesToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []EventType
	d.Subscribe(EventProductCreated, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})
	d.Subscribe(EventProductDeleted, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventProductCreated, ProductID: "p1"}))
	assert.Equal(t, []EventType{EventProductCreated}, seen)
}

func TestDispatcherHandlerErrorIsSwallowed(t *testing.T) {
	d := NewInMemoryDispatcher()

	calls := 0
	d.Subscribe(EventProductUpdated, func(_ context.Context, _ Event) error {
		calls++
		return errors.New("boom")
	})
	d.Subscribe(EventProductUpdated, func(_ context.Context, _ Event) error {
		calls++
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventProductUpdated, ProductID: "p1"}))
	assert.Equal(t, 2, calls)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventProductDeleted, ProductID: "p1"}))
}
