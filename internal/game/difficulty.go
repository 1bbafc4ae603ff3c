package game

import "github.com/padgame/flappad/internal/core"

// tier is one bracket of the score-indexed difficulty curve.
type tier struct {
	minScore     int
	speedFactor  float64
	gapReduction int
}

// Brackets are checked from hardest down; the first whose threshold the
// score meets wins.
var tiers = [...]tier{
	{minScore: 30, speedFactor: 1.25, gapReduction: 18},
	{minScore: 20, speedFactor: 1.2, gapReduction: 12},
	{minScore: 10, speedFactor: 1.1, gapReduction: 5},
	{minScore: 0, speedFactor: 1.0, gapReduction: 0},
}

func tierFor(score int) tier {
	for _, t := range tiers {
		if score >= t.minScore {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// SpeedFor maps a cumulative score to the global pipe speed, in pixels
// per frame at the 60 fps baseline.
func SpeedFor(score int) float64 {
	return BaseSpeed * tierFor(score).speedFactor
}

// GapFor maps a cumulative score to the pipe gap size in pixels. The
// hardest bracket is floored at MinGap.
func GapFor(score int) int {
	return core.Max(BaseGap-tierFor(score).gapReduction, MinGap)
}
