package hooks

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/soyeahso/xpshim/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *Manager {
	return NewManager(logging.New(nil, "silent"))
}

func TestManager_On_And_Emit(t *testing.T) {
	m := testManager()

	var called bool
	m.On(EventStarted, "test", func(_ context.Context, p Payload) error {
		called = true
		assert.Equal(t, EventStarted, p.Event)
		return nil
	})

	m.Emit(context.Background(), EventStarted, nil)
	assert.True(t, called)
}

func TestManager_Emit_MultipleHandlers(t *testing.T) {
	m := testManager()

	var order []string
	m.On(EventMessage, "first", func(_ context.Context, _ Payload) error {
		order = append(order, "first")
		return nil
	})
	m.On(EventMessage, "second", func(_ context.Context, _ Payload) error {
		order = append(order, "second")
		return nil
	})

	m.Emit(context.Background(), EventMessage, nil)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestManager_Emit_WithData(t *testing.T) {
	m := testManager()

	var gotData map[string]any
	m.On(EventMessage, "test", func(_ context.Context, p Payload) error {
		gotData = p.Data
		return nil
	})

	m.Emit(context.Background(), EventMessage, map[string]any{
		"from":    "x-plane",
		"message": "XPLM_MSG_PLANE_LOADED",
	})

	assert.Equal(t, "x-plane", gotData["from"])
	assert.Equal(t, "XPLM_MSG_PLANE_LOADED", gotData["message"])
}

func TestManager_Emit_HandlerError(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(logging.New(&buf, "warn"))

	var secondCalled bool
	m.On(EventEnabled, "failing", func(_ context.Context, _ Payload) error {
		return errors.New("handler broke")
	})
	m.On(EventEnabled, "second", func(_ context.Context, _ Payload) error {
		secondCalled = true
		return nil
	})

	m.Emit(context.Background(), EventEnabled, nil)
	assert.True(t, secondCalled)
	assert.Contains(t, buf.String(), "handler broke")
}

func TestManager_Emit_HandlerPanic(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(logging.New(&buf, "warn"))

	var secondCalled bool
	m.On(EventStopped, "panics", func(_ context.Context, _ Payload) error {
		panic("boom")
	})
	m.On(EventStopped, "second", func(_ context.Context, _ Payload) error {
		secondCalled = true
		return nil
	})

	require.NotPanics(t, func() {
		m.Emit(context.Background(), EventStopped, nil)
	})
	assert.True(t, secondCalled)
	assert.Contains(t, buf.String(), "handler panicked: boom")
}

func TestManager_Emit_NoHandlers(t *testing.T) {
	m := testManager()
	m.Emit(context.Background(), EventStopped, nil)
}

func TestManager_OnAll(t *testing.T) {
	m := testManager()

	var seen []string
	m.OnAll("trace", func(_ context.Context, p Payload) error {
		seen = append(seen, p.Event)
		return nil
	})

	for _, event := range AllEvents {
		assert.Equal(t, 1, m.Count(event))
		m.Emit(context.Background(), event, nil)
	}
	assert.Equal(t, AllEvents, seen)
}
