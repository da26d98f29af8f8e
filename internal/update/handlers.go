package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriFactor/internal/eventbus"
	"github.com/Rorical/RoriFactor/internal/models"
)

// StatusNoEndpoint is shown when the active profile has no usable endpoint
const StatusNoEndpoint = "No valid endpoint: run `rorifactor profile edit`"

// StatusEditorLossy is shown while the editor displays a normalized copy of
// the code; copy and submit still use the exact text.
const StatusEditorLossy = "Editor shows normalized code (tabs/CR/long file); copy and submit use the exact result"

// HandleKeyMsgWithEventBus handles the keys that act on the whole view. It
// reports handled=false for keys the editor should receive.
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) (bool, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "ctrl+s", "f5":
		submit(appModel, eb)
		return true, nil
	case "ctrl+y", "f6":
		send(appModel, eb, eventbus.CopyEvent{})
		return true, nil
	case "ctrl+r", "f7":
		send(appModel, eb, eventbus.ResetEvent{})
		return true, nil
	case "esc":
		appModel.EditorFocused = false
		return true, nil
	}

	if appModel.EditorFocused {
		return false, nil
	}

	switch keyMsg.String() {
	case "q":
		return true, tea.Quit
	case "enter", "i":
		appModel.EditorFocused = true
		return true, nil
	}
	// Swallow everything else while the editor is blurred
	return true, nil
}

func submit(appModel *models.AppModel, eb *eventbus.EventBus) {
	// Submit is disabled while a request is outstanding
	if appModel.View.Loading {
		return
	}
	if send(appModel, eb, eventbus.SubmitEvent{}) {
		// Local echo until the core's snapshot arrives
		appModel.View.Loading = true
		appModel.Status = statusFor(appModel)
	}
}

func send(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) bool {
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending event: " + err.Error()
		return false
	}
	return true
}

// HandleEditorChange forwards the full editor buffer after a user edit. Only
// call it when a key or paste actually changed the widget.
func HandleEditorChange(appModel *models.AppModel, text string, eb *eventbus.EventBus) {
	if text == appModel.View.Text && !appModel.EditorLossy {
		return
	}
	if send(appModel, eb, eventbus.TextChangedEvent{Text: text}) {
		appModel.View.Text = text
		// The user now owns what the widget shows
		appModel.EditorLossy = false
		appModel.Status = statusFor(appModel)
	}
}

// HandleEditorReplaced records what the widget holds after View.Text was
// loaded into it wholesale. A mismatch is never sent back to the core.
func HandleEditorReplaced(appModel *models.AppModel, widgetText string) {
	appModel.EditorLossy = widgetText != appModel.View.Text
	appModel.Status = statusFor(appModel)
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent applies a core snapshot. It reports whether the editor
// text was replaced wholesale and must be reloaded into the widget.
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) bool {
	event, ok := coreEventMsg.Event.(eventbus.StateUpdateEvent)
	if !ok {
		return false
	}

	replaced := event.Snapshot.TextGeneration != appModel.View.TextGeneration
	appModel.View = event.Snapshot
	appModel.Status = statusFor(appModel)
	return replaced
}

func statusFor(appModel *models.AppModel) string {
	view := appModel.View
	switch {
	case view.Loading:
		return "Refactoring"
	case view.Phase == models.PhaseError:
		return "Error: " + view.LastError
	case !appModel.CoreReady && appModel.ProfileError != "":
		return "Profile error: " + appModel.ProfileError
	case !appModel.CoreReady:
		return StatusNoEndpoint
	case view.CopyPulse:
		return "Copied to clipboard"
	case appModel.EditorLossy:
		return StatusEditorLossy
	default:
		return "Ready"
	}
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only drives the submit button pulse
	if appModel.View.Loading {
		appModel.PulseFrame = (appModel.PulseFrame + 1) % 4
	} else {
		appModel.PulseFrame = 0
	}
	return TickCmd()
}
