package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriFactor/internal/dispatcher"
	"github.com/Rorical/RoriFactor/internal/eventbus"
	"github.com/Rorical/RoriFactor/internal/models"
	"github.com/Rorical/RoriFactor/internal/update"
	"github.com/Rorical/RoriFactor/ui/components"
)

func newTestModel(t *testing.T) (*AppModel, *eventbus.EventBus) {
	t.Helper()
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)
	t.Cleanup(func() {
		disp.Stop()
		eb.Close()
	})

	m := newAppModel(models.AppModel{
		View:          models.Snapshot{Text: models.SeedCode},
		EditorFocused: true,
		CoreReady:     true,
	}, disp)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m, eb
}

func nextUIEvent(t *testing.T, eb *eventbus.EventBus) eventbus.UIEvent {
	t.Helper()
	select {
	case e := <-eb.UIToCore():
		return e
	default:
		require.FailNow(t, "no event sent to core")
		return nil
	}
}

func TestAppModel_TypingForwardsFullBuffer(t *testing.T) {
	m, eb := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})

	e, ok := nextUIEvent(t, eb).(eventbus.TextChangedEvent)
	require.True(t, ok)
	assert.Equal(t, m.editor.Value(), e.Text)
	assert.Contains(t, e.Text, "!")
	assert.Len(t, e.Text, len(models.SeedCode)+1)
}

func TestAppModel_TabInsertsIndent(t *testing.T) {
	m, eb := newTestModel(t)
	m.editor.SetValue("")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, indent, m.editor.Value())
	assert.Equal(t, eventbus.TextChangedEvent{Text: indent}, nextUIEvent(t, eb))
}

func TestAppModel_SnapshotReplacesEditorOnlyOnNewGeneration(t *testing.T) {
	m, _ := newTestModel(t)
	m.editor.SetValue("typed locally")

	_, cmd := m.Update(update.CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Snapshot: models.Snapshot{Text: "older echo"},
	}})
	assert.NotNil(t, cmd, "keeps listening for core events")
	assert.Equal(t, "typed locally", m.editor.Value())

	m.Update(update.CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Snapshot: models.Snapshot{Text: "X", TextGeneration: 1},
	}})
	assert.Equal(t, "X", m.editor.Value())
}

func TestAppModel_EscBlursAndShowsHighlightedCode(t *testing.T) {
	m, eb := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editor.Focused())

	// blurred: runes are not typed into the editor
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, models.SeedCode, m.editor.Value())
	assert.Empty(t, eb.UIToCore())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.editor.Focused())
}

func TestAppModel_SubmitKey(t *testing.T) {
	m, eb := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, eventbus.SubmitEvent{}, nextUIEvent(t, eb))
	assert.Contains(t, m.View(), components.SubmittingLabel)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Empty(t, eb.UIToCore())
}

func TestAppModel_View(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	assert.Contains(t, out, components.Title)
	assert.Contains(t, out, components.SubmitLabel)
	assert.Contains(t, out, "Ready")

	m.appModel.Width = 0
	assert.Equal(t, "Loading...", m.View())
}

func TestAppModel_Layout(t *testing.T) {
	m, _ := newTestModel(t)
	editorWidth, panelWidth, bodyHeight := m.layout()
	assert.Equal(t, 120, editorWidth+panelWidth)
	assert.Equal(t, minPanelWidth, panelWidth)
	assert.Equal(t, 28, bodyHeight)
}
