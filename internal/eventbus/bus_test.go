package eventbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriFactor/internal/models"
)

func TestEventBus_RoundTrip(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(TextChangedEvent{Text: "x = 1"}))
	require.NoError(t, eb.SendToCore(SubmitEvent{}))

	assert.Equal(t, TextChangedEvent{Text: "x = 1"}, <-eb.UIToCore())
	assert.Equal(t, SubmitEvent{}, <-eb.UIToCore())

	snap := models.Snapshot{Text: "y", Loading: true}
	require.NoError(t, eb.SendToUI(StateUpdateEvent{Snapshot: snap}))
	got := (<-eb.CoreToUI()).(StateUpdateEvent)
	assert.Equal(t, snap, got.Snapshot)
}

func TestEventBus_FullChannelReportsError(t *testing.T) {
	eb := NewEventBusWithSize(1)
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })

	require.NoError(t, eb.SendToCore(CopyEvent{}))
	err := eb.SendToCore(CopyEvent{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChannelFull))

	require.Len(t, reported, 1)
	assert.Equal(t, "SendToCore", reported[0].Operation)
}

func TestEventBus_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	eb := NewEventBusWithSize(1)
	defer eb.Close()

	require.NoError(t, eb.SendToUI(StateUpdateEvent{}))
	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrChannelFull)
	}
	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())
	assert.ErrorIs(t, eb.SendToCore(ResetEvent{}), ErrCircuitOpen)
}

func TestEventBus_SendAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	assert.ErrorIs(t, eb.SendToCore(SubmitEvent{}), ErrBusClosed)
	assert.ErrorIs(t, eb.SendToUI(StateUpdateEvent{}), ErrBusClosed)
	assert.Equal(t, CircuitClosed, eb.GetCircuitBreakerState())

	_, ok := <-eb.UIToCore()
	assert.False(t, ok)
}

func TestCircuitBreaker_HalfOpensAfterTimeout(t *testing.T) {
	now := time.Unix(1000, 0)
	cb := NewCircuitBreaker(2, time.Minute)
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	now = now.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, CircuitHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, CircuitClosed, cb.State())
}
