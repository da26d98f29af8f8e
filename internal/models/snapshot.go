package models

import "fmt"

// Phase is the coarse lifecycle of the view
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEditing
	PhaseSubmitting
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Snapshot is an immutable copy of the refactor view state, pushed from the
// core to the UI after every change.
type Snapshot struct {
	Text    string          `json:"text"`
	Phase   Phase           `json:"phase"`
	Loading bool            `json:"loading"`
	Result  *RefactorResult `json:"result,omitempty"`

	// Elapsed is only meaningful once HasElapsed is true
	Elapsed    float64 `json:"elapsed_seconds"`
	HasElapsed bool    `json:"has_elapsed"`

	AttemptID string `json:"attempt_id,omitempty"`
	CopyPulse bool   `json:"copy_pulse"`
	LastError string `json:"last_error,omitempty"`

	// TextGeneration increments whenever Text is replaced wholesale
	// (refactor success, reset), never on user edits.
	TextGeneration uint64 `json:"text_generation"`
}
