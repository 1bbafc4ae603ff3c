package game

import (
	"math/rand"

	"github.com/padgame/flappad/internal/core"
)

// Pipe is one obstacle: a vertical barrier pair with a passable gap.
// GapY is the top of the gap. Speed is kept in sync with the global
// difficulty speed. Counted marks whether it has already scored.
type Pipe struct {
	X       float64
	GapY    int
	Speed   float64
	Counted bool
}

// Rects returns the collision boxes of the two solid segments for the
// given gap size.
func (p Pipe) Rects(gap int) (top, bottom core.FRect) {
	top = core.FRect{X: p.X, Y: 0, W: PipeWidth, H: float64(p.GapY)}
	bottomY := float64(p.GapY + gap)
	bottom = core.FRect{X: p.X, Y: bottomY, W: PipeWidth, H: float64(GroundY) - bottomY}
	return top, bottom
}

// PipeRing is a fixed array of PipeCount obstacles recycled in place.
// Pipes are teleported back past the right edge when they leave the
// screen; nothing is allocated after construction, which keeps frame
// timing deterministic on a constrained target.
type PipeRing struct {
	pipes [PipeCount]Pipe
	rng   *rand.Rand
}

// NewPipeRing creates a ring seeded for deterministic gap placement.
func NewPipeRing(seed int64) *PipeRing {
	r := &PipeRing{rng: rand.New(rand.NewSource(seed))}
	r.Reset()
	return r
}

// Reset staggers the pipes off the right edge and rerolls gaps. Each
// gap after the first is clamped against the previously initialized
// pipe with the same fairness rule used at recycle time, with a fixed
// max difference of BaseGap/2.
func (r *PipeRing) Reset() {
	speed := SpeedFor(0)
	for i := range r.pipes {
		gapY := r.rollGap(BaseGap)
		if i > 0 {
			gapY = clampToNeighbor(gapY, r.pipes[i-1].GapY, BaseGap/2)
		}
		r.pipes[i] = Pipe{
			X:     float64(ScreenW + i*PipeSpacing),
			GapY:  gapY,
			Speed: speed,
		}
	}
}

// SetSpeed applies the global difficulty speed to every pipe.
func (r *PipeRing) SetSpeed(speed float64) {
	for i := range r.pipes {
		r.pipes[i].Speed = speed
	}
}

// Speed returns the current per-pipe speed (uniform across the ring).
func (r *PipeRing) Speed() float64 {
	return r.pipes[0].Speed
}

// Advance moves the pipes left by their dt-scaled speed and recycles any
// pipe whose right edge has passed the left edge of the screen. The gap
// size of the current difficulty tier governs new gap placement.
func (r *PipeRing) Advance(dt float64, gap int) {
	for i := range r.pipes {
		r.pipes[i].X -= r.pipes[i].Speed * dt * PhysicsRate
	}
	for i := range r.pipes {
		if r.pipes[i].X+PipeWidth < 0 {
			r.recycle(i, gap)
		}
	}
}

// recycle teleports pipe i behind the current rightmost pipe, rerolls
// its gap, and clamps the gap against the previous neighbor in travel
// order so back-to-back gaps never differ by more than half a gap.
func (r *PipeRing) recycle(i int, gap int) {
	rightmost := r.rightmostExcept(-1)
	r.pipes[i].X = r.pipes[rightmost].X + PipeSpacing

	gapY := r.rollGap(gap)
	neighbor := r.rightmostExcept(i)
	if neighbor != i {
		gapY = clampToNeighbor(gapY, r.pipes[neighbor].GapY, gap/2)
	}
	r.pipes[i].GapY = gapY
	r.pipes[i].Counted = false
}

// rollGap draws a uniform gap top inside the legal band for the given
// gap size.
func (r *PipeRing) rollGap(gap int) int {
	lo := core.Max(GapMargin, gap/2)
	hi := ScreenH - gap - GroundHeight - GapMargin
	if hi < lo {
		hi = lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// rightmostExcept returns the index of the pipe with the greatest x,
// skipping index skip. Ties keep the first match in index order.
func (r *PipeRing) rightmostExcept(skip int) int {
	best := -1
	for i := range r.pipes {
		if i == skip {
			continue
		}
		if best < 0 || r.pipes[i].X > r.pipes[best].X {
			best = i
		}
	}
	if best < 0 {
		best = skip
	}
	return best
}

// clampToNeighbor pulls a gap top toward the neighbor's until they
// differ by at most maxDiff.
func clampToNeighbor(gapY, neighborY, maxDiff int) int {
	return core.Clamp(gapY, neighborY-maxDiff, neighborY+maxDiff)
}

// Pipes returns a copy of the ring for read-only consumers.
func (r *PipeRing) Pipes() [PipeCount]Pipe {
	return r.pipes
}
