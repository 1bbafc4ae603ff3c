package core

import "time"

// DebounceWindow is how long after a registered tap further pointer-down
// edges are ignored, so one physical tap cannot trigger twice.
const DebounceWindow = 300 * time.Millisecond

// PointerSample is one calibrated reading from the touch controller,
// already mapped to screen space.
type PointerSample struct {
	X, Y     int
	Pressure int
}

// PointerSource produces pointer samples. Read is polled once per frame
// and reports ok=false when there is no contact. A dropped frame's
// sample is simply missed; there are no retries.
type PointerSource interface {
	Read() (PointerSample, bool)
}

// TouchFilter turns raw per-frame contact readings into debounced tap
// edges. All state lives in explicit fields so the filter can be
// constructed fresh per session and driven with a synthetic clock in
// tests.
type TouchFilter struct {
	touching bool
	lastTap  time.Time
	hasTap   bool
}

// Update feeds one frame's contact state and reports whether a fresh,
// debounced pointer-down edge occurred. Time is passed in by the caller;
// the filter never reads the wall clock.
func (f *TouchFilter) Update(now time.Time, touching bool) bool {
	wasTouching := f.touching
	f.touching = touching

	if !touching || wasTouching {
		return false
	}
	if f.hasTap && now.Sub(f.lastTap) < DebounceWindow {
		return false
	}
	f.lastTap = now
	f.hasTap = true
	return true
}

// Reset clears contact and debounce state.
func (f *TouchFilter) Reset() {
	*f = TouchFilter{}
}
