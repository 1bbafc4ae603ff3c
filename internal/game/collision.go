package game

// collides tests the player hitbox against one pipe: inside either solid
// segment vertically AND overlapping the pipe's horizontal span.
func collides(p *Player, pipe Pipe, gap int) bool {
	box := p.Hitbox()

	if box.Right() <= pipe.X || box.X >= pipe.X+PipeWidth {
		return false
	}

	gapTop := float64(pipe.GapY)
	gapBottom := float64(pipe.GapY + gap)
	return box.Y < gapTop || box.Bottom() > gapBottom
}
