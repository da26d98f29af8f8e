package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriFactor/internal/update"
	"github.com/Rorical/RoriFactor/ui/components"
)

const (
	minPanelWidth = 32
	indent        = "    "
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.spinner.Tick,
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	eventBus := m.dispatcher.GetEventBus()

	switch msg := msg.(type) {
	case update.CoreEventMsg:
		// Handle core events and continue listening
		if update.HandleCoreEvent(&m.appModel, msg) {
			m.loadEditor()
		}
		return m, m.dispatcher.ListenForCoreEvents()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	handled, cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus)
	if handled {
		if _, ok := msg.(tea.WindowSizeMsg); ok {
			m.resize()
		}
		return m, tea.Batch(cmd, m.syncFocus())
	}

	// Everything else belongs to the editor
	before := m.editor.Value()
	key, isKey := msg.(tea.KeyMsg)
	if isKey && key.Type == tea.KeyTab {
		m.editor.InsertString(indent)
	} else {
		m.editor, cmd = m.editor.Update(msg)
	}

	// Only keys and pastes are edits; blinks and other messages never sync
	if isKey && m.editor.Value() != before {
		update.HandleEditorChange(&m.appModel, m.editor.Value(), eventBus)
	}
	return m, cmd
}

// loadEditor puts View.Text into the widget. The widget may normalize it, so
// what it ends up holding is recorded rather than sent back.
func (m *AppModel) loadEditor() {
	m.editor.SetValue(m.appModel.View.Text)
	update.HandleEditorReplaced(&m.appModel, m.editor.Value())
}

func (m *AppModel) syncFocus() tea.Cmd {
	if m.appModel.EditorFocused == m.editor.Focused() {
		return nil
	}
	if m.appModel.EditorFocused {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// layout splits the body between the editor (4/5) and the panel
func (m *AppModel) layout() (editorWidth, panelWidth, bodyHeight int) {
	width := m.appModel.Width
	panelWidth = max(width/5, minPanelWidth)
	if panelWidth > width/2 {
		panelWidth = width / 2
	}
	editorWidth = width - panelWidth
	// header and status line
	bodyHeight = max(m.appModel.Height-2, 3)
	return editorWidth, panelWidth, bodyHeight
}

func (m *AppModel) resize() {
	editorWidth, _, bodyHeight := m.layout()
	// border and padding
	m.editor.SetWidth(max(editorWidth-4, 1))
	m.editor.SetHeight(max(bodyHeight-2, 1))
}

func (m *AppModel) View() string {
	if m.appModel.Width == 0 {
		return "Loading..."
	}

	editorWidth, panelWidth, bodyHeight := m.layout()
	view := m.appModel.View

	code := m.editor.Value()
	if m.appModel.EditorLossy {
		code = view.Text
	}
	editor := components.RenderEditor(m.editor.View(), code, m.appModel.EditorFocused, editorWidth, bodyHeight)
	panel := components.RenderPanel(components.PanelProps{
		View:       view,
		PulseFrame: m.appModel.PulseFrame,
		Spinner:    m.spinner.View(),
		Width:      panelWidth,
		Height:     bodyHeight,
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderHeader(m.appModel.Endpoint, m.appModel.Width),
		lipgloss.JoinHorizontal(lipgloss.Top, editor, panel),
		components.RenderStatus(m.appModel.Status, m.appModel.Width),
	)
}
