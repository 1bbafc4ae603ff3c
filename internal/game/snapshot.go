package game

// PipeView is the read-only obstacle state exposed to renderers.
type PipeView struct {
	X       float64
	GapY    int
	GapSize int
	Counted bool
}

// Snapshot is the read-only view handed from simulation to renderer each
// frame. Renderers read it and never touch the session.
type Snapshot struct {
	Mode               Mode
	PlayerY            float64
	PlayerVel          float64
	Pipes              [PipeCount]PipeView
	Score              int
	HighScore          int32
	CountdownRemaining float64
}

// Snapshot copies the current state into a renderer-safe view.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:      s.mode,
		PlayerY:   s.player.Y,
		PlayerVel: s.player.Vel,
		Score:     s.score,
		HighScore: s.highScore,
	}
	if s.mode == ModeCountdown {
		snap.CountdownRemaining = CountdownDuration - s.countdown
		if snap.CountdownRemaining < 0 {
			snap.CountdownRemaining = 0
		}
	}
	gap := GapFor(s.score)
	for i, p := range s.pipes.pipes {
		snap.Pipes[i] = PipeView{
			X:       p.X,
			GapY:    p.GapY,
			GapSize: gap,
			Counted: p.Counted,
		}
	}
	return snap
}
