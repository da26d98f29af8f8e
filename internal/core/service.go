package core

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Rorical/RoriFactor/internal/clipboard"
	"github.com/Rorical/RoriFactor/internal/eventbus"
	"github.com/Rorical/RoriFactor/internal/models"
)

// CopyPulseDuration is how long the copy feedback stays visible
const CopyPulseDuration = 300 * time.Millisecond

// ErrNoEndpoint fails submits when no valid endpoint is configured
var ErrNoEndpoint = errors.New("no refactor endpoint configured")

// Refactorer performs one refactor call
type Refactorer interface {
	Refactor(ctx context.Context, req models.RefactorRequest) (*models.RefactorResult, error)
}

// Options configure a RefactorService
type Options struct {
	Seed         string // initial editor text; models.SeedCode when empty
	Model        string // sent as model_name when non-empty
	ClearOnReset bool   // drop the previous result on reset

	// Unavailable is why there is no client; submits fail with it
	Unavailable error
}

type RefactorService struct {
	client   Refactorer
	clip     clipboard.Writer
	opts     Options
	state    *RefactorState
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	inflight sync.WaitGroup
	pushMu   sync.Mutex

	now           func() time.Time
	pulseDuration time.Duration
}

// NewRefactorService creates the service. client may be nil when no valid
// endpoint is configured; submits then fail immediately.
func NewRefactorService(client Refactorer, clip clipboard.Writer, eb *eventbus.EventBus, opts Options) *RefactorService {
	if opts.Seed == "" {
		opts.Seed = models.SeedCode
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &RefactorService{
		client:        client,
		clip:          clip,
		opts:          opts,
		state:         NewRefactorState(opts.Seed),
		eventBus:      eb,
		ctx:           ctx,
		cancel:        cancel,
		now:           time.Now,
		pulseDuration: CopyPulseDuration,
	}
}

// Start runs the core logic in a goroutine
func (rs *RefactorService) Start() {
	rs.pushStateToUI()
	go rs.eventLoop()
}

// Stop cancels any in-flight request and waits for it to unwind
func (rs *RefactorService) Stop() {
	rs.cancel()
	rs.inflight.Wait()
}

func (rs *RefactorService) IsReady() bool {
	return rs.client != nil
}

// Snapshot returns the current view state
func (rs *RefactorService) Snapshot() models.Snapshot {
	return rs.state.Snapshot()
}

func (rs *RefactorService) eventLoop() {
	for {
		select {
		case <-rs.ctx.Done():
			return
		case event, ok := <-rs.eventBus.UIToCore():
			if !ok {
				return
			}
			rs.handleUIEvent(event)
		}
	}
}

func (rs *RefactorService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.TextChangedEvent:
		rs.state.SetText(e.Text)
		rs.pushStateToUI()
	case eventbus.SubmitEvent:
		rs.submit()
	case eventbus.CopyEvent:
		rs.copyText()
	case eventbus.ResetEvent:
		rs.state.Reset(rs.opts.ClearOnReset)
		rs.pushStateToUI()
	}
}

func (rs *RefactorService) submit() {
	attemptID, source, ok := rs.state.StartSubmit(rs.now())
	if !ok {
		log.Printf("submit ignored: a refactor is already in flight")
		return
	}
	rs.pushStateToUI()

	req := models.RefactorRequest{SourceCode: source, ModelName: rs.opts.Model}
	rs.inflight.Add(1)
	go rs.runRefactor(attemptID, req)
}

func (rs *RefactorService) runRefactor(attemptID string, req models.RefactorRequest) {
	defer rs.inflight.Done()

	if rs.client == nil {
		err := rs.opts.Unavailable
		if err == nil {
			err = ErrNoEndpoint
		}
		rs.state.FailSubmit(attemptID, err, rs.now())
		log.Printf("refactor %s failed: %v", attemptID, err)
		rs.pushStateToUI()
		return
	}

	log.Printf("refactor %s: sending %d bytes", attemptID, len(req.SourceCode))
	result, err := rs.client.Refactor(rs.ctx, req)
	if err != nil {
		if rs.state.FailSubmit(attemptID, err, rs.now()) {
			log.Printf("refactor %s failed: %v", attemptID, err)
		}
		rs.pushStateToUI()
		return
	}

	if rs.state.CompleteSubmit(attemptID, result, rs.now()) {
		log.Printf("refactor %s done: %d functions", attemptID, len(result.FunctionList()))
	}
	rs.pushStateToUI()
}

func (rs *RefactorService) copyText() {
	text := rs.state.Text()
	if err := rs.clip.WriteAll(text); err != nil {
		log.Printf("Could not copy code: %v", err)
		return
	}

	token := rs.state.BeginCopyPulse()
	rs.pushStateToUI()

	time.AfterFunc(rs.pulseDuration, func() {
		if rs.state.EndCopyPulse(token) {
			rs.pushStateToUI()
		}
	})
}

func (rs *RefactorService) pushStateToUI() {
	// Serialize snapshot+send so the UI never sees an older snapshot after a newer one
	rs.pushMu.Lock()
	defer rs.pushMu.Unlock()

	if err := rs.eventBus.SendToUI(eventbus.StateUpdateEvent{Snapshot: rs.state.Snapshot()}); err != nil {
		log.Printf("Error sending state to UI: %v", err)
	}
}

// RefactorOnce runs a single submit against state outside the event loop,
// applying the same transitions the TUI uses.
func RefactorOnce(ctx context.Context, client Refactorer, state *RefactorState, model string) error {
	attemptID, source, ok := state.StartSubmit(time.Now())
	if !ok {
		return errors.New("a refactor is already in flight")
	}

	result, err := client.Refactor(ctx, models.RefactorRequest{SourceCode: source, ModelName: model})
	if err != nil {
		state.FailSubmit(attemptID, err, time.Now())
		return err
	}
	state.CompleteSubmit(attemptID, result, time.Now())
	return nil
}
