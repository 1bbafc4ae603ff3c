package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/padgame/flappad/internal/core"
	"github.com/padgame/flappad/internal/game"
)

// FrameSink presents a completed front buffer once per frame. The whole
// buffer is handed over synchronously; no partial updates.
type FrameSink interface {
	Blit(pix []core.RGB565) error
}

// Renderer draws a simulation snapshot into the framebuffer's back
// buffer. Implementations read the snapshot and never touch the session.
type Renderer interface {
	Draw(fb *core.Framebuffer, snap game.Snapshot)
}

// Runner executes one full frame pass: poll the pointer, advance the
// session, render into the back buffer, swap, and hand the front buffer
// to the sink. All state is owned by the calling goroutine; the loop is
// cooperative and single-threaded.
type Runner struct {
	sched    *Scheduler
	session  *game.Session
	pointer  core.PointerSource
	touch    core.TouchFilter
	fb       *core.Framebuffer
	renderer Renderer
	sink     FrameSink
	logger   *log.Logger
}

// NewRunner wires the loop components together. logger may be nil.
func NewRunner(sched *Scheduler, session *game.Session, pointer core.PointerSource, fb *core.Framebuffer, renderer Renderer, sink FrameSink, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		sched:    sched,
		session:  session,
		pointer:  pointer,
		fb:       fb,
		renderer: renderer,
		sink:     sink,
		logger:   logger,
	}
}

// Session returns the simulation driven by this runner.
func (r *Runner) Session() *game.Session {
	return r.session
}

// Frame runs one scheduler-gated pass. Returns true if a simulation and
// render pass actually executed. A sink error is logged and dropped; the
// frame's pixels are simply lost.
func (r *Runner) Frame(now time.Time) bool {
	dt, due := r.sched.Tick(now)
	if !due {
		return false
	}

	_, touching := r.pointer.Read()
	tap := r.touch.Update(now, touching)

	r.session.Advance(dt, tap)

	r.renderer.Draw(r.fb, r.session.Snapshot())
	r.fb.Swap()
	if err := r.sink.Blit(r.fb.Front()); err != nil {
		r.logger.Warn("frame sink rejected buffer", "error", err)
	}
	return true
}

// Run drives frames until the context is canceled, sleeping between
// frame deadlines. This is the cooperative yield: nothing else touches
// game state, the pause only lets the runtime do housekeeping. Event
// driven hosts call Frame directly instead and let their own loop yield.
func (r *Runner) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		now := time.Now()
		if !r.Frame(now) {
			time.Sleep(r.sched.Wait(now))
		}
	}
}
