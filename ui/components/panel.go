package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriFactor/internal/models"
	"github.com/Rorical/RoriFactor/ui/styles"
)

const (
	SubmitLabel     = "Add Type Hinting"
	SubmittingLabel = "Refactoring..."
	CopyLabel       = "Copy"
	CopiedLabel     = "Copied!"
	ResetLabel      = "Restart"
)

// PanelProps is everything the side panel renders from
type PanelProps struct {
	View       models.Snapshot
	PulseFrame int
	Spinner    string // current spinner frame, shown while loading
	Width      int
	Height     int
}

func RenderPanel(p PanelProps) string {
	sections := []string{RenderButtons(p.View, p.PulseFrame, p.Spinner)}

	if elapsed := RenderElapsed(p.View); elapsed != "" {
		sections = append(sections, elapsed)
	}
	if fns := RenderFunctions(p.View.Result.FunctionList()); fns != "" {
		sections = append(sections, fns)
	}
	if scores := RenderScores(p.View.Result.Scores()); scores != "" {
		sections = append(sections, scores)
	}

	return styles.PanelStyle(p.Width, p.Height).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// RenderButtons draws submit, copy and reset with their key hints. Submit is
// disabled and pulsing while a request is outstanding.
func RenderButtons(view models.Snapshot, frame int, spinner string) string {
	var submit string
	if view.Loading {
		submit = styles.DisabledButtonStyle(frame).Render(strings.TrimSpace(spinner + " " + SubmittingLabel))
	} else {
		submit = styles.ButtonStyle().Render(SubmitLabel)
	}

	copyBtn := styles.ButtonStyle().Render(CopyLabel)
	if view.CopyPulse {
		copyBtn = styles.CopiedButtonStyle().Render(CopiedLabel)
	}

	hint := styles.MutedStyle()
	return lipgloss.JoinVertical(lipgloss.Left,
		submit+" "+hint.Render("ctrl+s"),
		copyBtn+" "+hint.Render("ctrl+y"),
		styles.ButtonStyle().Render(ResetLabel)+" "+hint.Render("ctrl+r"),
	)
}

func RenderElapsed(view models.Snapshot) string {
	if !view.HasElapsed {
		return ""
	}
	return styles.SectionTitleStyle().Render(fmt.Sprintf("Refactoring Time: %.2f seconds", view.Elapsed))
}

// RenderFunctions lists functions as name(args); empty when there are none
func RenderFunctions(fns []models.FunctionInfo) string {
	if len(fns) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SectionTitleStyle().Render("Functions"))
	for _, fn := range fns {
		line := fn.Signature()
		if extra := functionScores(fn); extra != "" {
			line += " " + extra
		}
		b.WriteString("\n")
		b.WriteString(styles.FunctionStyle().Render(line))
	}
	return b.String()
}

func functionScores(fn models.FunctionInfo) string {
	var parts []string
	if fn.ComplexityScore != nil {
		v := *fn.ComplexityScore
		parts = append(parts, styles.ScoreStyle(models.ComplexityOK(v)).Render(fmt.Sprintf("C %.2f", v)))
	}
	if fn.ReadabilityScore != nil {
		v := *fn.ReadabilityScore
		parts = append(parts, styles.ScoreStyle(models.ReadabilityOK(v)).Render(fmt.Sprintf("R %.2f", v)))
	}
	return strings.Join(parts, " ")
}

// RenderScores shows the aggregate scores with their threshold color
func RenderScores(s models.ScoreSummary) string {
	if !s.Any() {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SectionTitleStyle().Render("Scores"))
	if s.Complexity.Set {
		b.WriteString("\n" + scoreLine("Complexity", s.Complexity, models.ComplexityOK(s.Complexity.Value)))
	}
	if s.Readability.Set {
		b.WriteString("\n" + scoreLine("Readability", s.Readability, models.ReadabilityOK(s.Readability.Value)))
	}
	return b.String()
}

func scoreLine(label string, s models.Score, ok bool) string {
	line := label + ": " + styles.ScoreStyle(ok).Render(fmt.Sprintf("%.2f", s.Value))
	if s.Source == models.ScoreMean {
		line += styles.MutedStyle().Render(" (mean)")
	}
	return line
}
