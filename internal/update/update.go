package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriFactor/internal/eventbus"
	"github.com/Rorical/RoriFactor/internal/models"
)

// HandleUpdateWithEventBus handles messages that don't touch the editor
// widget. Key messages it leaves unhandled belong to the editor.
func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return true, nil
	case TickMsg:
		return true, HandleTickMsg(appModel)
	}
	return false, nil
}
