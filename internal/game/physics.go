package game

import "github.com/padgame/flappad/internal/core"

// Player is the controllable bird. X is fixed at PlayerX; only vertical
// state changes.
type Player struct {
	Y   float64
	Vel float64
}

// NewPlayer returns a player centered vertically in the playfield.
func NewPlayer() Player {
	return Player{Y: float64(GroundY-PlayerHeight) / 2}
}

// Flap applies the instantaneous upward impulse.
func (p *Player) Flap() {
	p.Vel = FlapImpulse
}

// Integrate advances vertical motion by dt seconds. All deltas are
// scaled by dt*PhysicsRate, never applied as per-frame constants, so the
// trajectory is independent of the actual frame rate. The ceiling is a
// soft clamp that zeroes velocity; the ground clamps y and reports the
// collision, which ends the game.
func (p *Player) Integrate(dt float64) (groundHit bool) {
	p.Vel += Gravity * dt * PhysicsRate
	if p.Vel > MaxFallSpeed {
		p.Vel = MaxFallSpeed
	}
	p.Y += p.Vel * dt * PhysicsRate

	if p.Y < CeilingY {
		p.Y = CeilingY
		p.Vel = 0
	}

	floor := float64(GroundY - PlayerHeight)
	if p.Y > floor {
		p.Y = floor
		return true
	}
	return false
}

// Hitbox returns the collision box, inset from the sprite bounds.
func (p *Player) Hitbox() core.FRect {
	return core.FRect{
		X: float64(PlayerX + HitInsetX),
		Y: p.Y + HitInsetY,
		W: float64(PlayerWidth - 2*HitInsetX),
		H: float64(PlayerHeight - 2*HitInsetY),
	}
}
