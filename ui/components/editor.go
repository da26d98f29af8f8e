package components

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/Rorical/RoriFactor/ui/styles"
)

// HighlightPython applies Python syntax highlighting for a 256-color terminal.
// On any lexer or formatter failure the code is returned unchanged.
func HighlightPython(code string) string {
	lexer := lexers.Get("python")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// RenderCode renders code read-only with line numbers and highlighting,
// clipped to maxLines (0 means no limit).
func RenderCode(code string, maxLines int) string {
	want := strings.Count(code, "\n") + 1
	lines := strings.Split(HighlightPython(code), "\n")
	// The lexer appends a newline when the source lacks one
	if len(lines) > want {
		lines = lines[:want]
	}

	hidden := 0
	if maxLines > 0 && len(lines) > maxLines {
		hidden = len(lines) - maxLines + 1
		lines = lines[:maxLines-1]
	}

	numStyle := styles.LineNumberStyle()
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(numStyle.Render(fmt.Sprintf("%d", i+1)))
		b.WriteString(line)
	}
	if hidden > 0 {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle().Render(fmt.Sprintf("… %d more lines", hidden)))
	}
	return b.String()
}

// RenderEditor frames either the live editor widget or, when it is blurred,
// the highlighted code.
func RenderEditor(editorView, code string, focused bool, width, height int) string {
	body := editorView
	if !focused {
		body = RenderCode(code, height-2)
	}
	return styles.EditorStyle(width, height, focused).Render(body)
}
