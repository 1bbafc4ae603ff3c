// Package render draws simulation snapshots into the framebuffer. It is
// pure presentation: it reads the snapshot handed to it each frame and
// never mutates simulation state.
package render

import (
	"math"
	"strconv"

	"github.com/padgame/flappad/internal/core"
	"github.com/padgame/flappad/internal/game"
)

const (
	pipeCapHeight = 10
	pipeCapLip    = 3
	hudScale      = 3
	titleScale    = 5
)

// SceneRenderer draws the world plus a per-mode overlay.
type SceneRenderer struct{}

// New creates a scene renderer.
func New() *SceneRenderer {
	return &SceneRenderer{}
}

// Draw renders one frame into the back buffer.
func (r *SceneRenderer) Draw(fb *core.Framebuffer, snap game.Snapshot) {
	r.drawWorld(fb, snap)

	switch snap.Mode {
	case game.ModeMenu:
		r.drawMenu(fb, snap)
	case game.ModeCountdown:
		r.drawCountdown(fb, snap)
	case game.ModePlaying:
		r.drawScore(fb, snap)
	case game.ModeGameOver:
		r.drawGameOver(fb, snap)
	}
}

func (r *SceneRenderer) drawWorld(fb *core.Framebuffer, snap game.Snapshot) {
	fb.Clear(core.ColorSky)

	for _, p := range snap.Pipes {
		r.drawPipe(fb, p)
	}

	// Ground strip with a hard top line.
	fb.FillRect(core.NewRect(0, game.GroundY, game.ScreenW, game.GroundHeight), core.ColorGround)
	fb.HLine(0, game.GroundY, game.ScreenW, core.ColorGroundLine)
	fb.HLine(0, game.GroundY+1, game.ScreenW, core.ColorGroundLine)

	r.drawBird(fb, snap)
}

func (r *SceneRenderer) drawPipe(fb *core.Framebuffer, p game.PipeView) {
	x := int(math.Round(p.X))
	bottomY := p.GapY + p.GapSize

	// Solid segments.
	fb.FillRect(core.NewRect(x, 0, game.PipeWidth, p.GapY), core.ColorPipe)
	fb.FillRect(core.NewRect(x, bottomY, game.PipeWidth, game.GroundY-bottomY), core.ColorPipe)

	// Shaded right edge gives the columns some depth.
	fb.FillRect(core.NewRect(x+game.PipeWidth-6, 0, 6, p.GapY), core.ColorPipeShade)
	fb.FillRect(core.NewRect(x+game.PipeWidth-6, bottomY, 6, game.GroundY-bottomY), core.ColorPipeShade)

	// Caps overhang the column on both sides.
	fb.FillRect(core.NewRect(x-pipeCapLip, p.GapY-pipeCapHeight, game.PipeWidth+2*pipeCapLip, pipeCapHeight), core.ColorPipeShade)
	fb.FillRect(core.NewRect(x-pipeCapLip, bottomY, game.PipeWidth+2*pipeCapLip, pipeCapHeight), core.ColorPipeShade)
}

func (r *SceneRenderer) drawBird(fb *core.Framebuffer, snap game.Snapshot) {
	x := game.PlayerX
	y := int(math.Round(snap.PlayerY))

	fb.FillRect(core.NewRect(x, y, game.PlayerWidth, game.PlayerHeight), core.ColorBird)
	// Beak on the leading edge, eye above it.
	fb.FillRect(core.NewRect(x+game.PlayerWidth-6, y+game.PlayerHeight/2-3, 8, 6), core.ColorBirdBeak)
	fb.FillRect(core.NewRect(x+game.PlayerWidth-12, y+4, 5, 5), core.ColorBlack)
}

func (r *SceneRenderer) drawCenteredText(fb *core.Framebuffer, y int, text string, scale int, c core.RGB565) {
	x := (fb.Width() - fb.TextWidth(text, scale)) / 2
	fb.DrawText(x, y, text, scale, c)
}

func (r *SceneRenderer) drawMenu(fb *core.Framebuffer, snap game.Snapshot) {
	r.drawCenteredText(fb, 40, "FLAPPAD", titleScale, core.ColorWhite)
	r.drawCenteredText(fb, 120, "TAP TO START", hudScale, core.ColorWhite)
	if snap.HighScore > 0 {
		r.drawCenteredText(fb, 160, "BEST "+strconv.Itoa(int(snap.HighScore)), 2, core.ColorWhite)
	}
}

func (r *SceneRenderer) drawCountdown(fb *core.Framebuffer, snap game.Snapshot) {
	n := int(math.Ceil(snap.CountdownRemaining))
	if n < 1 {
		n = 1
	}
	r.drawCenteredText(fb, 80, strconv.Itoa(n), 8, core.ColorWhite)
}

func (r *SceneRenderer) drawScore(fb *core.Framebuffer, snap game.Snapshot) {
	r.drawCenteredText(fb, 12, strconv.Itoa(snap.Score), hudScale, core.ColorWhite)
}

func (r *SceneRenderer) drawGameOver(fb *core.Framebuffer, snap game.Snapshot) {
	panel := core.NewRect(60, 60, game.ScreenW-120, 110)
	fb.FillRect(panel, core.ColorPanel)
	fb.HLine(panel.X, panel.Y, panel.W, core.ColorWhite)
	fb.HLine(panel.X, panel.Bottom()-1, panel.W, core.ColorWhite)
	fb.VLine(panel.X, panel.Y, panel.H, core.ColorWhite)
	fb.VLine(panel.Right()-1, panel.Y, panel.H, core.ColorWhite)

	r.drawCenteredText(fb, panel.Y+12, "GAME OVER", hudScale, core.ColorAccent)
	r.drawCenteredText(fb, panel.Y+48, "SCORE "+strconv.Itoa(snap.Score), 2, core.ColorWhite)
	r.drawCenteredText(fb, panel.Y+68, "BEST "+strconv.Itoa(int(snap.HighScore)), 2, core.ColorWhite)
	r.drawCenteredText(fb, panel.Y+90, "TAP FOR MENU", 2, core.ColorWhite)
}
