// Package tui is the desktop stand-in for the device: a Bubble Tea
// program that shows the framebuffer as half-block cells and turns
// mouse events into pointer samples. It plays the role of the SPI panel
// and the touch controller; the simulation core never knows the
// difference.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame pass.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// target frame rate. The event loop sleeping between ticks is the
// scheduler's yield in this host.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
