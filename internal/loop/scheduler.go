// Package loop provides the fixed-cadence frame scheduler and the runner
// that wires input, simulation, rendering, and the frame sink together.
package loop

import "time"

// MaxFrameDelta caps the elapsed time fed to the simulation so physics
// cannot explode after a stall (storage write, debugger, GC pause).
const MaxFrameDelta = 0.1

// Scheduler gates the simulation to a fixed target frame interval. It
// keeps a deadline accumulator: a frame runs only once the deadline has
// passed, and the elapsed time since the previous frame is clamped to
// MaxFrameDelta. Time is always passed in, which keeps the scheduler
// testable against a virtual clock.
type Scheduler struct {
	interval time.Duration
	deadline time.Time
	last     time.Time
	started  bool
}

// NewScheduler creates a scheduler targeting the given frame rate.
func NewScheduler(fps int) *Scheduler {
	if fps <= 0 {
		fps = 60
	}
	return &Scheduler{interval: time.Second / time.Duration(fps)}
}

// Interval returns the target frame interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Tick reports whether a frame is due at now and, if so, the clamped
// elapsed seconds since the previous frame. The first call always runs
// a frame with a zero delta.
func (s *Scheduler) Tick(now time.Time) (dt float64, due bool) {
	if !s.started {
		s.started = true
		s.last = now
		s.deadline = now.Add(s.interval)
		return 0, true
	}
	if now.Before(s.deadline) {
		return 0, false
	}

	dt = now.Sub(s.last).Seconds()
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	s.last = now
	s.deadline = now.Add(s.interval)
	return dt, true
}

// Wait returns how long the caller should yield before the next frame
// is due. Zero when a frame is already due.
func (s *Scheduler) Wait(now time.Time) time.Duration {
	if !s.started {
		return 0
	}
	d := s.deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
