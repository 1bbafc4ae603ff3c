// Package game implements the simulation core: the session state machine,
// frame-rate-independent physics, the recycled pipe ring, collision and
// scoring, and the score-driven difficulty curve. It has no rendering or
// platform dependencies; everything is driven through Session.Advance.
package game

import "github.com/padgame/flappad/internal/core"

// GameID keys persisted scores in the byte store.
const GameID = "flappad"

// World geometry. The playfield matches the panel, with a ground strip
// along the bottom.
const (
	ScreenW      = core.ScreenWidth
	ScreenH      = core.ScreenHeight
	GroundHeight = 24
)

// Player sprite. X never changes; only y and vertical velocity move.
const (
	PlayerX      = 60
	PlayerWidth  = 34
	PlayerHeight = 24
)

// Physics, tuned in pixels per frame at the 60 fps baseline. Integration
// scales every delta by dt*PhysicsRate so the feel is identical at any
// actual frame rate.
const (
	PhysicsRate  = 60.0
	Gravity      = 0.35
	FlapImpulse  = -6.5
	MaxFallSpeed = 10.0
	CeilingY     = 2.0
)

// Pipes. A fixed ring of PipeCount obstacles is recycled in place; no
// pipe is ever allocated after reset.
const (
	PipeCount   = 3
	PipeWidth   = 52
	PipeSpacing = ScreenW / 2
	BaseSpeed   = 2.2
	BaseGap     = 100
	MinGap      = 70
	GapMargin   = 20
)

// Hitbox insets shave the sprite bounds so grazing a pipe edge does not
// kill the player.
const (
	HitInsetX = 5
	HitInsetY = 3
)

// SpeedEpsilon throttles global speed reapplication: the difficulty
// speed is pushed to the pipes only when it moves by more than this.
const SpeedEpsilon = 0.05

// CountdownDuration is how long the countdown state lasts, in seconds.
const CountdownDuration = 3.0

// GroundY is the y coordinate of the top of the ground strip.
const GroundY = ScreenH - GroundHeight
