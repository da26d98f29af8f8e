package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriFactor/internal/eventbus"
	"github.com/Rorical/RoriFactor/internal/models"
	"github.com/Rorical/RoriFactor/internal/update"
)

func TestListenForCoreEvents_WrapsEvent(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	ed := NewEventDispatcher(eb)
	defer ed.Stop()

	snap := models.Snapshot{Text: "x", Loading: true}
	require.NoError(t, eb.SendToUI(eventbus.StateUpdateEvent{Snapshot: snap}))

	msg := ed.ListenForCoreEvents()()
	coreMsg, ok := msg.(update.CoreEventMsg)
	require.True(t, ok)
	assert.Equal(t, eventbus.StateUpdateEvent{Snapshot: snap}, coreMsg.Event)
}

func TestListenForCoreEvents_NilAfterStopOrClose(t *testing.T) {
	eb := eventbus.NewEventBus()
	ed := NewEventDispatcher(eb)

	ed.Stop()
	assert.Nil(t, ed.ListenForCoreEvents()())

	eb2 := eventbus.NewEventBus()
	eb2.Close()
	assert.Nil(t, NewEventDispatcher(eb2).ListenForCoreEvents()())
	assert.Same(t, eb, ed.GetEventBus())
	eb.Close()
}
