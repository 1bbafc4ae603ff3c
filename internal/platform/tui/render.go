package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/padgame/flappad/internal/core"
)

// cellColors keys the style cache on the foreground/background pixel pair
// of a half-block cell. The scene palette is small, so the cache stays
// small too.
type cellColors struct {
	top    core.RGB565
	bottom core.RGB565
}

var styleCache = map[cellColors]lipgloss.Style{}

func cellStyle(c cellColors) lipgloss.Style {
	if style, ok := styleCache[c]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(hexColor(c.top)).
		Background(hexColor(c.bottom))
	styleCache[c] = style
	return style
}

func hexColor(c core.RGB565) lipgloss.Color {
	r, g, b := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RenderFrame converts a framebuffer into a styled string of half-block
// cells, cols wide and rows tall. Each terminal cell covers two vertical
// pixels: the upper half is the foreground of '▀', the lower half the
// background. Adjacent cells with the same color pair are grouped to
// keep the ANSI output small.
func RenderFrame(pix []core.RGB565, fbW, fbH, cols, rows int) string {
	if cols <= 0 || rows <= 0 || len(pix) < fbW*fbH {
		return ""
	}

	var sb strings.Builder
	sb.Grow(cols*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < cols {
			start := sampleCell(pix, fbW, fbH, cols, rows, col, row)

			// Collect consecutive cells with the same color pair.
			count := 0
			for col < cols {
				if sampleCell(pix, fbW, fbH, cols, rows, col, row) != start {
					break
				}
				count++
				col++
			}

			sb.WriteString(cellStyle(start).Render(strings.Repeat("▀", count)))
		}
	}
	return sb.String()
}

// sampleCell picks the two framebuffer pixels shown by a terminal cell
// using nearest-neighbor sampling, so any terminal size shows the whole
// frame.
func sampleCell(pix []core.RGB565, fbW, fbH, cols, rows, col, row int) cellColors {
	x := col * fbW / cols
	topY := (row * 2) * fbH / (rows * 2)
	botY := (row*2 + 1) * fbH / (rows * 2)
	return cellColors{
		top:    pix[topY*fbW+x],
		bottom: pix[botY*fbW+x],
	}
}
