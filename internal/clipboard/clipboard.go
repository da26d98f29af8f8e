// Package clipboard wraps the system clipboard behind a small interface so
// the core can be tested without one.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer writes text to a clipboard
type Writer interface {
	WriteAll(text string) error
}

// System is the platform clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API, as chosen by atotto/clipboard).
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}
