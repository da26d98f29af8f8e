package styles

import "github.com/charmbracelet/lipgloss"

var (
	Accent  = lipgloss.Color("62")
	Muted   = lipgloss.Color("241")
	Good    = lipgloss.Color("42")
	Bad     = lipgloss.Color("203")
	Warning = lipgloss.Color("214")
	Surface = lipgloss.Color("235")
)

func HeaderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(Accent).
		Bold(true).
		Padding(0, 1).
		Width(width)
}

func EditorStyle(width, height int, focused bool) lipgloss.Style {
	border := Muted
	if focused {
		border = Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2)
}

func PanelStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1).
		Width(width - 2).
		Height(height - 2)
}

func LineNumberStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)
}

func ButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(Accent).
		Padding(0, 1)
}

// DisabledButtonStyle pulses between two shades while a request is in flight
func DisabledButtonStyle(frame int) lipgloss.Style {
	shades := []lipgloss.Color{"238", "240", "242", "240"}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")).
		Background(shades[frame%len(shades)]).
		Padding(0, 1)
}

func CopiedButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("16")).
		Background(Good).
		Bold(true).
		Padding(0, 1)
}

func SectionTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true).
		MarginTop(1)
}

func FunctionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("39")).
		PaddingLeft(1)
}

func ScoreStyle(ok bool) lipgloss.Style {
	color := Bad
	if ok {
		color = Good
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Muted)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Muted).
		Background(Surface).
		Padding(0, 1).
		Width(width)
}
