package components

import (
	"strings"

	"github.com/Rorical/RoriFactor/ui/styles"
)

const keyHelp = "esc blur · enter edit · q quit"

// RenderStatus draws the one-line status bar. Errors use the same muted
// style as every other status.
func RenderStatus(status string, width int) string {
	statusStyle := styles.StatusStyle(width)

	// Right-align the key help when there is room for it
	gap := width - 2 - len([]rune(status)) - len([]rune(keyHelp))
	if gap < 2 {
		return statusStyle.Render(status)
	}
	return statusStyle.Render(status + strings.Repeat(" ", gap) + keyHelp)
}
