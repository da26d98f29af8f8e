package components

import "github.com/Rorical/RoriFactor/ui/styles"

const Title = "Code Refactoring: Python"

// RenderHeader shows the title and, when known, the target endpoint
func RenderHeader(endpoint string, width int) string {
	text := Title
	if endpoint != "" {
		text += "  ·  " + endpoint
	}
	return styles.HeaderStyle(width).Render(text)
}
