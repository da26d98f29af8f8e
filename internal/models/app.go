package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	View          Snapshot // Last snapshot received from core
	Status        string   // Status bar text
	PulseFrame    int      // Animation counter for the submit button pulse
	Width         int      // Terminal width
	Height        int      // Terminal height
	EditorFocused bool     // Whether keystrokes go to the editor
	CoreReady     bool     // Whether the refactor service has a client
	ProfileError  string   // Why the active profile cannot be used, if it can't
	Endpoint      string   // Resolved endpoint shown in the header

	// EditorLossy is set when the editor widget could not hold View.Text
	// verbatim (tabs, carriage returns, control characters, line limit).
	// The core text stays authoritative until the user edits.
	EditorLossy bool
}
