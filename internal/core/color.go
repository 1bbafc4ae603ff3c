package core

// RGB565 is a 16-bit packed pixel in 5-6-5 layout, the native format of
// the target display panel.
type RGB565 uint16

// NewRGB565 packs 8-bit color channels into a 5-6-5 pixel.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGB unpacks the pixel back to 8-bit channels. The low bits are
// replicated from the high bits so full white round-trips to 255.
func (c RGB565) RGB() (r, g, b uint8) {
	r = uint8(c >> 8 & 0xF8)
	r |= r >> 5
	g = uint8(c >> 3 & 0xFC)
	g |= g >> 6
	b = uint8(c << 3)
	b |= b >> 5
	return r, g, b
}

// Palette for the game scenes.
var (
	ColorBlack      = NewRGB565(0, 0, 0)
	ColorWhite      = NewRGB565(255, 255, 255)
	ColorSky        = NewRGB565(112, 197, 206)
	ColorPipe       = NewRGB565(106, 190, 48)
	ColorPipeShade  = NewRGB565(75, 139, 34)
	ColorBird       = NewRGB565(255, 208, 64)
	ColorBirdBeak   = NewRGB565(235, 120, 52)
	ColorGround     = NewRGB565(222, 184, 121)
	ColorGroundLine = NewRGB565(120, 92, 54)
	ColorPanel      = NewRGB565(48, 48, 64)
	ColorAccent     = NewRGB565(255, 96, 96)
)
