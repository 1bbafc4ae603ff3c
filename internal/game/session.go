package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// Mode is the game state machine value, the only cross-cutting mutable
// state besides the entities themselves.
type Mode int

const (
	ModeMenu Mode = iota
	ModeCountdown
	ModePlaying
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeCountdown:
		return "countdown"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Session owns all simulation state for one power-on: mode, player,
// pipe ring, score and high score. It is single-threaded by contract;
// Advance must be called from one goroutine only.
type Session struct {
	mode      Mode
	player    Player
	pipes     *PipeRing
	score     int
	highScore int32
	countdown float64 // seconds elapsed in the countdown state
	skipOnTap bool
	store     ScoreStore
	logger    *log.Logger
}

// NewSession constructs a session in the menu state and loads the
// persisted high score. A failed load is non-fatal: it is logged and
// treated as "no saved high score". store may be nil to run without
// persistence; logger may be nil to discard logs.
func NewSession(seed int64, store ScoreStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		mode:   ModeMenu,
		player: NewPlayer(),
		pipes:  NewPipeRing(seed),
		store:  store,
		logger: logger,
	}
	if store != nil {
		saved, ok, err := store.HighScore()
		switch {
		case err != nil:
			logger.Warn("high score load failed", "error", err)
		case ok:
			s.highScore = saved
		}
	}
	return s
}

// SetCountdownSkip enables tapping through the countdown. Off by
// default; the countdown normally cannot be skipped.
func (s *Session) SetCountdownSkip(enabled bool) {
	s.skipOnTap = enabled
}

// Advance runs one simulation tick. dt is the clamped elapsed time in
// seconds; tap is a fresh debounced pointer-down edge.
func (s *Session) Advance(dt float64, tap bool) {
	switch s.mode {
	case ModeMenu:
		if tap {
			s.resetGame()
			s.mode = ModeCountdown
		}

	case ModeCountdown:
		s.countdown += dt
		if s.countdown >= CountdownDuration || (s.skipOnTap && tap) {
			s.mode = ModePlaying
		}

	case ModePlaying:
		s.advancePlaying(dt, tap)

	case ModeGameOver:
		// No reset here; the reset happens on the Menu -> Countdown edge.
		if tap {
			s.mode = ModeMenu
		}
	}
}

// advancePlaying runs the in-game pipeline: physics, obstacle motion and
// recycling, scoring and collision, then the difficulty curve.
func (s *Session) advancePlaying(dt float64, tap bool) {
	if tap {
		s.player.Flap()
	}

	groundHit := s.player.Integrate(dt)
	s.pipes.Advance(dt, GapFor(s.score))

	dead := groundHit
	gap := GapFor(s.score)
	for i := range s.pipes.pipes {
		p := &s.pipes.pipes[i]

		if !p.Counted && float64(PlayerX) > p.X+PipeWidth {
			p.Counted = true
			s.score++
			if int32(s.score) > s.highScore {
				s.highScore = int32(s.score)
				s.persistHighScore()
			}
		}

		if !dead && collides(&s.player, *p, gap) {
			dead = true
		}
	}

	if dead {
		s.mode = ModeGameOver
		return
	}

	// Reapply the global speed only when the curve actually moved it;
	// the mapping is deterministic so skipping identical writes is
	// behavior-neutral.
	if target := SpeedFor(s.score); abs(target-s.pipes.Speed()) > SpeedEpsilon {
		s.pipes.SetSpeed(target)
	}
}

// persistHighScore is write-through: called the instant the score
// exceeds the old high. A failed write is logged and ignored; whether
// the old value survives is decided by the next session's load.
func (s *Session) persistHighScore() {
	if s.store == nil {
		return
	}
	if err := s.store.SetHighScore(s.highScore); err != nil {
		s.logger.Warn("high score save failed", "score", s.highScore, "error", err)
	}
}

// resetGame restores score, player, and all pipes to initial values.
func (s *Session) resetGame() {
	s.score = 0
	s.player = NewPlayer()
	s.pipes.Reset()
	s.countdown = 0
}

// Mode returns the current state machine value.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the current session score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen this process lifetime, seeded
// from the persistent store at construction.
func (s *Session) HighScore() int32 {
	return s.highScore
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
