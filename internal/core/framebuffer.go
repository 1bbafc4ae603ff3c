package core

import "fmt"

// Logical display dimensions. The panel is driven in landscape.
const (
	ScreenWidth  = 320
	ScreenHeight = 240
)

// maxDimension bounds framebuffer allocation so a bad caller cannot
// request a buffer the target could never hold.
const maxDimension = 1024

// Framebuffer is a double-buffered RGB565 pixel surface. All drawing
// operates on the back buffer; Swap promotes it to the front buffer,
// which is what gets handed to the frame sink. Rendering happens exactly
// once per frame right before the handoff, so the sink never observes a
// partially drawn buffer.
type Framebuffer struct {
	w, h  int
	front []RGB565
	back  []RGB565
}

// NewFramebuffer allocates both buffers. Allocation failure here is
// unrecoverable; callers must treat an error as fatal before entering
// the game loop.
func NewFramebuffer(w, h int) (*Framebuffer, error) {
	if w <= 0 || h <= 0 || w > maxDimension || h > maxDimension {
		return nil, fmt.Errorf("framebuffer: invalid dimensions %dx%d", w, h)
	}
	return &Framebuffer{
		w:     w,
		h:     h,
		front: make([]RGB565, w*h),
		back:  make([]RGB565, w*h),
	}, nil
}

// Width returns the buffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.w
}

// Height returns the buffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.h
}

// Swap promotes the back buffer to the front buffer.
func (f *Framebuffer) Swap() {
	f.front, f.back = f.back, f.front
}

// Front returns the last completed frame. The slice is owned by the
// framebuffer and remains valid until the next Swap.
func (f *Framebuffer) Front() []RGB565 {
	return f.front
}

// Clear fills the back buffer with the given color.
func (f *Framebuffer) Clear(c RGB565) {
	for i := range f.back {
		f.back[i] = c
	}
}

// SetPixel places a pixel in the back buffer.
// Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) SetPixel(x, y int, c RGB565) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.back[y*f.w+x] = c
}

// Pixel returns the back-buffer pixel at (x, y), or black out of bounds.
func (f *Framebuffer) Pixel(x, y int) RGB565 {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return ColorBlack
	}
	return f.back[y*f.w+x]
}

// FillRect fills a rectangle in the back buffer, clipped to the bounds.
func (f *Framebuffer) FillRect(r Rect, c RGB565) {
	x0 := Clamp(r.X, 0, f.w)
	y0 := Clamp(r.Y, 0, f.h)
	x1 := Clamp(r.Right(), 0, f.w)
	y1 := Clamp(r.Bottom(), 0, f.h)
	for y := y0; y < y1; y++ {
		row := f.back[y*f.w : y*f.w+f.w]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// HLine draws a horizontal line of the given width.
func (f *Framebuffer) HLine(x, y, w int, c RGB565) {
	f.FillRect(NewRect(x, y, w, 1), c)
}

// VLine draws a vertical line of the given height.
func (f *Framebuffer) VLine(x, y, h int, c RGB565) {
	f.FillRect(NewRect(x, y, 1, h), c)
}

// DrawText renders a string with the built-in 5x7 font at an integer
// scale. Glyphs outside the font map render as blanks; pixels outside
// the buffer are clipped.
func (f *Framebuffer) DrawText(x, y int, text string, scale int, c RGB565) {
	if scale < 1 {
		scale = 1
	}
	cx := x
	for _, ch := range text {
		g, ok := glyph(ch)
		if ok {
			for col := 0; col < glyphWidth; col++ {
				bits := g[col]
				for row := 0; row < glyphHeight; row++ {
					if bits&(1<<row) == 0 {
						continue
					}
					f.FillRect(NewRect(cx+col*scale, y+row*scale, scale, scale), c)
				}
			}
		}
		cx += (glyphWidth + 1) * scale
	}
}

// TextWidth returns the pixel width of a string at the given scale,
// used for centering HUD text.
func (f *Framebuffer) TextWidth(text string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return n*(glyphWidth+1)*scale - scale
}
