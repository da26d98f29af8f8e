package components

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriFactor/internal/models"
	"github.com/Rorical/RoriFactor/ui/styles"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func f64(v float64) *float64 { return &v }

func TestHighlightPython_KeepsSource(t *testing.T) {
	code := "def add(a, b):\n  return a + b"
	out := HighlightPython(code)
	assert.Contains(t, plain(out), "def add(a, b):")
	assert.Contains(t, plain(out), "return a + b")
}

func TestRenderCode_LineNumbersAndClip(t *testing.T) {
	out := plain(RenderCode("a = 1\nb = 2\nc = 3\nd = 4", 0))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "1")
	assert.Contains(t, lines[3], "d = 4")

	clipped := plain(RenderCode("a = 1\nb = 2\nc = 3\nd = 4", 3))
	lines = strings.Split(clipped, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "2 more lines")
}

func TestRenderButtons(t *testing.T) {
	idle := plain(RenderButtons(models.Snapshot{}, 0, ""))
	assert.Contains(t, idle, SubmitLabel)
	assert.Contains(t, idle, CopyLabel)
	assert.Contains(t, idle, ResetLabel)

	busy := plain(RenderButtons(models.Snapshot{Loading: true, CopyPulse: true}, 1, "*"))
	assert.Contains(t, busy, SubmittingLabel)
	assert.NotContains(t, busy, SubmitLabel)
	assert.Contains(t, busy, CopiedLabel)
}

func TestRenderElapsed(t *testing.T) {
	assert.Empty(t, RenderElapsed(models.Snapshot{Elapsed: 3}))
	assert.Contains(t, plain(RenderElapsed(models.Snapshot{Elapsed: 1.234, HasElapsed: true})), "Refactoring Time: 1.23 seconds")
}

func TestRenderFunctions(t *testing.T) {
	assert.Empty(t, RenderFunctions(nil))

	out := plain(RenderFunctions([]models.FunctionInfo{
		{Name: "add", Args: []string{"a", "b"}},
		{Name: "noop", ComplexityScore: f64(0.25)},
	}))
	assert.Contains(t, out, "Functions")
	assert.Contains(t, out, "add(a, b)")
	assert.Contains(t, out, "noop() C 0.25")
}

func TestRenderScores(t *testing.T) {
	assert.Empty(t, RenderScores(models.ScoreSummary{}))

	out := plain(RenderScores(models.ScoreSummary{
		Complexity:  models.Score{Value: 0.4, Set: true, Source: models.ScoreAggregate},
		Readability: models.Score{Value: 0.7, Set: true, Source: models.ScoreMean},
	}))
	assert.Contains(t, out, "Complexity: 0.40")
	assert.Contains(t, out, "Readability: 0.70 (mean)")
}

func TestRenderPanel_HidesEmptySections(t *testing.T) {
	out := plain(RenderPanel(PanelProps{Width: 40, Height: 20}))
	assert.NotContains(t, out, "Functions")
	assert.NotContains(t, out, "Scores")
	assert.NotContains(t, out, "Refactoring Time")

	out = plain(RenderPanel(PanelProps{
		View: models.Snapshot{
			HasElapsed: true,
			Result: &models.RefactorResult{
				RefactoredFunctions: []models.FunctionInfo{{Name: "f", ReadabilityScore: f64(0.9)}},
			},
		},
		Width:  60,
		Height: 20,
	}))
	assert.Contains(t, out, "f()")
	assert.Contains(t, out, "Readability: 0.90 (mean)")
}

func TestRenderHeaderAndStatus(t *testing.T) {
	assert.Contains(t, plain(RenderHeader("http://x", 80)), Title)
	assert.Contains(t, plain(RenderStatus("Ready", 80)), "Ready")
	assert.Contains(t, plain(RenderStatus("Ready", 80)), "q quit")
	assert.Contains(t, plain(RenderStatus("Error: boom", 10)), "Error")
}

func TestRenderStatus_ErrorsUseMutedBar(t *testing.T) {
	assert.Equal(t, styles.Muted, styles.StatusStyle(80).GetForeground())
	// too narrow for the key help, so the bar is the plain status style
	assert.Equal(t, styles.StatusStyle(14).Render("Error: boom"), RenderStatus("Error: boom", 14))
}
