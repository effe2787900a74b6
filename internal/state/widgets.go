package state

import (
	"fmt"

	"minefield/internal/core"
	"minefield/internal/input"
	"minefield/internal/render"
)

const (
	textColors   render.DrawColors = 0x0003
	titleColors  render.DrawColors = 0x0004
	panelColors  render.DrawColors = 0x0042
	buttonColors render.DrawColors = 0x0042
	labelColors  render.DrawColors = 0x0004
)

// Status bar layout.
const (
	timeX, timeY     = 2, 2
	minesX, minesY   = 96, 2
	statusX, statusY = 2, 10
)

// footer is the band under the default board used by result and help text.
var footer = core.Rect{X: 0, Y: 134, W: render.ScreenWidth, H: 26}

var (
	pauseButton = button{Rect: core.Rect{X: 136, Y: 2, W: 16, H: 16}, label: "II"}
	playButton  = button{Rect: core.Rect{X: 56, Y: 68, W: 48, H: 16}, label: "PLAY"}
)

type button struct {
	core.Rect
	label string
}

func (b button) draw(s render.Surface) {
	s.SetDrawColors(buttonColors)
	s.Rect(b.X, b.Y, b.W, b.H)
	s.SetDrawColors(labelColors)
	x := b.X + (b.W-render.TextWidth(b.label))/2
	y := b.Y + (b.H-render.LineHeight)/2
	s.Text(b.label, x, y)
}

// clicked reports a left click inside the button this frame.
func (b button) clicked(p input.Pointer) bool {
	if !p.LeftClicked() {
		return false
	}
	return b.Contains(p.Coordinates())
}

func drawHUD(s render.Surface, remaining, seconds int) {
	s.SetDrawColors(textColors)
	s.Text(fmt.Sprintf("Time:%3d", seconds), timeX, timeY)
	s.Text(fmt.Sprintf("Mines:%02d", remaining), minesX, minesY)
}

// drawPanel draws a filled box with centred lines of text.
func drawPanel(s render.Surface, r core.Rect, lines ...string) {
	s.SetDrawColors(panelColors)
	s.Rect(r.X, r.Y, r.W, r.H)
	s.SetDrawColors(labelColors)
	y := r.Y + (r.H-len(lines)*render.LineHeight)/2
	for _, l := range lines {
		s.Text(l, centered(r, l), y)
		y += render.LineHeight
	}
}

func centered(r core.Rect, text string) int {
	return r.X + (r.W-render.TextWidth(text))/2
}
