package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/padgame/flappad/internal/config"
	"github.com/padgame/flappad/internal/core"
	"github.com/padgame/flappad/internal/game"
	"github.com/padgame/flappad/internal/loop"
	"github.com/padgame/flappad/internal/render"
	"github.com/padgame/flappad/internal/storage"
)

// keyTapHold is how long a synthetic keyboard tap stays "pressed". Long
// enough for one frame pass to see the contact, short enough to release
// before the next debounce window matters.
const keyTapHold = 50 * time.Millisecond

// simPointer adapts terminal input to the touch controller's contract:
// mouse drags report continuous contact, a key press reports a brief
// one. Pressure is a plausible resistive-panel constant; nothing reads
// it yet.
type simPointer struct {
	sample   core.PointerSample
	down     bool
	tapUntil time.Time
}

// Read implements core.PointerSource.
func (p *simPointer) Read() (core.PointerSample, bool) {
	if p.down {
		return p.sample, true
	}
	if time.Now().Before(p.tapUntil) {
		return p.sample, true
	}
	return core.PointerSample{}, false
}

func (p *simPointer) press(x, y int) {
	p.sample = core.PointerSample{X: x, Y: y, Pressure: 600}
	p.down = true
}

func (p *simPointer) moveTo(x, y int) {
	if p.down {
		p.sample.X = x
		p.sample.Y = y
	}
}

func (p *simPointer) release() {
	p.down = false
}

func (p *simPointer) keyTap() {
	p.sample = core.PointerSample{X: core.ScreenWidth / 2, Y: core.ScreenHeight / 2, Pressure: 600}
	p.tapUntil = time.Now().Add(keyTapHold)
}

// frameCapture keeps the latest front buffer for View. The loop hands
// over the buffer it owns; we only read it between frames.
type frameCapture struct {
	pix []core.RGB565
}

// Blit implements loop.FrameSink.
func (c *frameCapture) Blit(pix []core.RGB565) error {
	c.pix = pix
	return nil
}

// Model is the Bubble Tea model hosting the game loop. Each TickMsg
// drives one frame pass; input messages mutate the pointer the loop
// polls on its next pass.
type Model struct {
	runner  *loop.Runner
	pointer *simPointer
	capture *frameCapture
	store   *storage.Store
	logger  *log.Logger

	cfg  config.Config
	keys KeyMap
	help help.Model

	cols int
	rows int

	prevMode game.Mode
	runSaved bool

	frameCount int
	fpsShown   int
	fpsWindow  time.Time
}

// NewModel builds the simulator around a fresh session. store may be
// nil, in which case scores are kept in memory only. A framebuffer
// allocation failure is fatal for the whole program, so it is returned
// rather than logged.
func NewModel(cfg config.Config, store *storage.Store, seed int64, logger *log.Logger) (*Model, error) {
	fb, err := core.NewFramebuffer(core.ScreenWidth, core.ScreenHeight)
	if err != nil {
		return nil, fmt.Errorf("allocate framebuffer: %w", err)
	}

	var scores game.ScoreStore
	if store != nil {
		scores = store.Scores(game.GameID)
	}

	session := game.NewSession(seed, scores, logger)
	session.SetCountdownSkip(cfg.Countdown.SkipOnTap)

	pointer := &simPointer{}
	capture := &frameCapture{}
	runner := loop.NewRunner(
		loop.NewScheduler(cfg.Display.FPS),
		session,
		pointer,
		fb,
		render.New(),
		capture,
		logger,
	)

	return &Model{
		runner:    runner,
		pointer:   pointer,
		capture:   capture,
		store:     store,
		logger:    logger,
		cfg:       cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		cols:      80,
		rows:      24,
		prevMode:  game.ModeMenu,
		fpsWindow: time.Now(),
	}, nil
}

// SetSize sets the terminal size before the first resize message
// arrives.
func (m *Model) SetSize(cols, rows int) {
	if cols > 0 {
		m.cols = cols
	}
	if rows > 0 {
		m.rows = rows
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.cfg.Display.FPS)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tap):
			m.pointer.keyTap()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.help.Width = msg.Width

	case TickMsg:
		if m.runner.Frame(time.Time(msg)) {
			m.afterFrame()
		}
		return m, tickCmd(m.cfg.Display.FPS)
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x, y := m.cellToPixel(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointer.press(x, y)
		}
	case tea.MouseActionRelease:
		m.pointer.release()
	case tea.MouseActionMotion:
		m.pointer.moveTo(x, y)
	}
}

// cellToPixel maps a terminal cell to framebuffer coordinates using the
// same sampling as the half-block renderer, so a click lands on the
// pixel it visually covers.
func (m *Model) cellToPixel(col, row int) (int, int) {
	cols, rows := m.frameSize()
	x := core.Clamp(col*core.ScreenWidth/cols, 0, core.ScreenWidth-1)
	y := core.Clamp(row*core.ScreenHeight/rows, 0, core.ScreenHeight-1)
	return x, y
}

// frameSize is the terminal area the frame occupies: full width, all
// rows but the footer.
func (m *Model) frameSize() (cols, rows int) {
	cols = core.Max(m.cols, 1)
	rows = core.Max(m.rows-1, 1)
	return cols, rows
}

// afterFrame records finished runs and updates the FPS counter. Run
// history is best effort, same as the high score write-through.
func (m *Model) afterFrame() {
	mode := m.runner.Session().Mode()
	if mode == game.ModeGameOver && m.prevMode != game.ModeGameOver && !m.runSaved {
		m.runSaved = true
		if m.store != nil {
			if _, err := m.store.SaveRun(game.GameID, m.runner.Session().Score()); err != nil && m.logger != nil {
				m.logger.Warn("failed to record run", "error", err)
			}
		}
	}
	if mode != game.ModeGameOver {
		m.runSaved = false
	}
	m.prevMode = mode

	if m.cfg.Display.ShowFPS {
		m.frameCount++
		if now := time.Now(); now.Sub(m.fpsWindow) >= time.Second {
			m.fpsShown = m.frameCount
			m.frameCount = 0
			m.fpsWindow = now
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.capture.pix == nil {
		return "starting..."
	}

	cols, rows := m.frameSize()
	frame := RenderFrame(m.capture.pix, core.ScreenWidth, core.ScreenHeight, cols, rows)

	footer := m.help.View(m.keys)
	if m.cfg.Display.ShowFPS {
		footer += fmt.Sprintf("  %d fps", m.fpsShown)
	}
	return frame + "\n" + footer
}
