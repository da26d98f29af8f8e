package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriFactor/internal/models"
)

func TestReadSource(t *testing.T) {
	src, err := readSource(strings.NewReader("x = 1\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", src)

	src, err = readSource(strings.NewReader("from stdin"), []string{"-"})
	require.NoError(t, err)
	assert.Equal(t, "from stdin", src)

	path := filepath.Join(t.TempDir(), "f.py")
	require.NoError(t, os.WriteFile(path, []byte("def f():\n    pass\n"), 0o644))
	src, err = readSource(nil, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "def f():\n    pass\n", src)

	_, err = readSource(nil, []string{filepath.Join(t.TempDir(), "missing.py")})
	assert.Error(t, err)
}

func TestPrintResult_Plain(t *testing.T) {
	score := 0.3
	snap := models.Snapshot{
		Text:       "def add(a: int, b: int) -> int:\n    return a + b",
		Elapsed:    0.5,
		HasElapsed: true,
		Result: &models.RefactorResult{
			Functions:       []models.FunctionInfo{{Name: "add", Args: []string{"a: int", "b: int"}}},
			ComplexityScore: &score,
		},
	}

	var buf bytes.Buffer
	printResult(&buf, snap, false)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, snap.Text+"\n"))
	assert.Contains(t, out, "Refactoring Time: 0.50 seconds")
	assert.Contains(t, out, "add(a: int, b: int)")
	assert.Contains(t, out, "Complexity: 0.30")
	assert.NotContains(t, out, "Readability")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"use", "profile", "refactor", "endpoints"} {
		assert.True(t, names[want], want)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("clear-on-reset"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("profile"))
}
