package core

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Rorical/RoriFactor/internal/models"
)

// RefactorState is the single source of truth for the refactor view. Each
// exported mutator corresponds to one discrete UI or network event.
type RefactorState struct {
	mu   sync.RWMutex
	seed string

	text       string
	phase      models.Phase
	loading    bool
	result     *models.RefactorResult
	elapsed    float64
	hasElapsed bool
	lastError  error

	attemptID    string
	attemptStart time.Time

	copyPulse      bool
	copyGeneration uint64
	textGeneration uint64
}

func NewRefactorState(seed string) *RefactorState {
	return &RefactorState{
		seed:  seed,
		text:  seed,
		phase: models.PhaseIdle,
	}
}

// Seed returns the text restored by Reset
func (s *RefactorState) Seed() string {
	return s.seed
}

func (s *RefactorState) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

func (s *RefactorState) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetText stores the full editor buffer exactly as given
func (s *RefactorState) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	if !s.loading {
		s.phase = models.PhaseEditing
	}
}

// StartSubmit begins a refactor attempt. It returns ok=false, and changes
// nothing, while another attempt is still outstanding.
func (s *RefactorState) StartSubmit(now time.Time) (attemptID string, source string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return "", "", false
	}

	s.loading = true
	s.phase = models.PhaseSubmitting
	s.lastError = nil
	s.attemptID = uuid.New().String()
	s.attemptStart = now
	return s.attemptID, s.text, true
}

// CompleteSubmit applies a successful response. The editor text and result
// are replaced wholesale. Returns false for a stale or unknown attempt.
func (s *RefactorState) CompleteSubmit(attemptID string, result *models.RefactorResult, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.finishAttempt(attemptID, now) {
		return false
	}
	if result == nil {
		result = &models.RefactorResult{}
	}

	s.text = result.ReformattedCode
	s.textGeneration++
	s.result = result.Clone()
	s.phase = models.PhaseIdle
	return true
}

// FailSubmit records a failed attempt. Text and the previous result stay
// untouched. Returns false for a stale or unknown attempt.
func (s *RefactorState) FailSubmit(attemptID string, err error, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.finishAttempt(attemptID, now) {
		return false
	}

	s.lastError = err
	s.phase = models.PhaseError
	return true
}

// finishAttempt clears loading and records elapsed time exactly once per
// attempt. Caller holds the lock.
func (s *RefactorState) finishAttempt(attemptID string, now time.Time) bool {
	if !s.loading || attemptID == "" || attemptID != s.attemptID {
		return false
	}

	elapsed := now.Sub(s.attemptStart).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	s.elapsed = elapsed
	s.hasElapsed = true
	s.loading = false
	return true
}

// Reset restores the seed text. With clearResults the previous result is
// dropped too; elapsed time is never cleared.
func (s *RefactorState) Reset(clearResults bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = s.seed
	s.textGeneration++
	if clearResults {
		s.result = nil
	}
	if !s.loading {
		s.phase = models.PhaseIdle
		s.lastError = nil
	}
}

// BeginCopyPulse turns the copy feedback on and returns a token for
// EndCopyPulse.
func (s *RefactorState) BeginCopyPulse() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copyPulse = true
	s.copyGeneration++
	return s.copyGeneration
}

// EndCopyPulse turns the feedback off unless a newer copy restarted it
func (s *RefactorState) EndCopyPulse(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.copyGeneration || !s.copyPulse {
		return false
	}
	s.copyPulse = false
	return true
}

func (s *RefactorState) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.Snapshot{
		Text:           s.text,
		Phase:          s.phase,
		Loading:        s.loading,
		Result:         s.result.Clone(),
		Elapsed:        s.elapsed,
		HasElapsed:     s.hasElapsed,
		AttemptID:      s.attemptID,
		CopyPulse:      s.copyPulse,
		TextGeneration: s.textGeneration,
	}
	if s.lastError != nil {
		snap.LastError = s.lastError.Error()
	}
	return snap
}

func (s *RefactorState) GetLastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}
