// Package ui draws the debug overlay both hosts can toggle over the game.
package ui

import (
	"minefield/internal/core"
	"minefield/internal/render"
)

const (
	panelColors render.DrawColors = 0x0043
	textColors  render.DrawColors = 0x0001

	margin = 2
)

// Overlay draws a provider's parameters in a box at the top-left corner.
type Overlay struct {
	source  ParameterProvider
	visible bool
}

// NewOverlay constructs a hidden overlay reading from source.
func NewOverlay(source ParameterProvider) *Overlay {
	return &Overlay{source: source}
}

func (o *Overlay) Toggle()       { o.visible = !o.visible }
func (o *Overlay) Visible() bool { return o.visible }

// Bounds returns the box the overlay covers for the given lines.
func Bounds(lines []string) core.Rect {
	w := 0
	for _, l := range lines {
		w = max(w, render.TextWidth(l))
	}
	return core.Rect{
		X: 0,
		Y: render.LineHeight * 2,
		W: min(w+2*margin, render.ScreenWidth),
		H: len(lines)*render.LineHeight + 2*margin,
	}
}

// Draw paints the overlay if it is visible. It leaves the draw colors as it
// found them.
func (o *Overlay) Draw(s render.Surface) {
	if !o.visible || o.source == nil {
		return
	}
	lines := o.source.Parameters().Lines()
	if len(lines) == 0 {
		return
	}
	colors := s.DrawColors()
	defer s.SetDrawColors(colors)

	r := Bounds(lines)
	s.SetDrawColors(panelColors)
	s.Rect(r.X, r.Y, r.W, r.H)
	s.SetDrawColors(textColors)
	for i, l := range lines {
		s.Text(l, r.X+margin, r.Y+margin+i*render.LineHeight)
	}
}
