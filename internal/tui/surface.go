// Package tui hosts the game in a terminal through tcell.
//
// One terminal cell covers render.CharWidth x render.LineHeight logical
// pixels, so the 160x160 logical screen needs 40x20 cells and a tile takes
// two cells side by side.
package tui

import (
	"minefield/internal/core"
	"minefield/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	Cols = render.ScreenWidth / render.CharWidth
	Rows = render.ScreenHeight / render.LineHeight

	tileCols = render.TileSize / render.CharWidth
)

// CellOf maps a logical pixel to the cell containing it.
func CellOf(x, y int) (col, row int) {
	return floorDiv(x, render.CharWidth), floorDiv(y, render.LineHeight)
}

// PixelOf maps a cell to the logical pixel at its centre.
func PixelOf(col, row int) (x, y int) {
	return col*render.CharWidth + render.CharWidth/2, row*render.LineHeight + render.LineHeight/2
}

func floorDiv(a, b int) int {
	if a < 0 {
		return (a - b + 1) / b
	}
	return a / b
}

// Surface draws onto a tcell screen. Colors come from the palette; a
// transparent slot keeps whatever the cell already shows.
type Surface struct {
	screen  tcell.Screen
	palette [4]tcell.Color
	colors  render.DrawColors
}

var _ render.Surface = (*Surface)(nil)

func NewSurface(screen tcell.Screen, pal render.Palette) *Surface {
	s := &Surface{screen: screen}
	for i, c := range pal {
		s.palette[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return s
}

// color resolves the palette slot n of the current draw colors.
func (s *Surface) color(n int) (tcell.Color, bool) {
	ref := s.colors.Slot(n)
	if ref == 0 || int(ref) > len(s.palette) {
		return tcell.ColorDefault, false
	}
	return s.palette[ref-1], true
}

// Clear paints the whole logical screen in the lightest palette color.
func (s *Surface) Clear() {
	s.screen.Clear()
	style := tcell.StyleDefault.Background(s.palette[0]).Foreground(s.palette[3])
	for row := range Rows {
		for col := range Cols {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (s *Surface) DrawColors() render.DrawColors     { return s.colors }
func (s *Surface) SetDrawColors(c render.DrawColors) { s.colors = c }

// set writes r at a cell. fg and bg apply only when their ok flag is set.
func (s *Surface) set(col, row int, r rune, fg tcell.Color, fgOK bool, bg tcell.Color, bgOK bool) {
	if col < 0 || row < 0 || col >= Cols || row >= Rows {
		return
	}
	_, _, style, _ := s.screen.GetContent(col, row)
	if fgOK {
		style = style.Foreground(fg)
	}
	if bgOK {
		style = style.Background(bg)
	}
	s.screen.SetContent(col, row, r, nil, style)
}

// Glyphs returns the two cells a sprite is drawn with.
func Glyphs(sp render.Sprite) [tileCols]rune {
	switch sp {
	case render.SpriteCovered:
		return [tileCols]rune{'[', ']'}
	case render.SpriteFlag:
		return [tileCols]rune{'F', ' '}
	case render.SpriteMine:
		return [tileCols]rune{'*', ' '}
	}
	if d, ok := sp.Digit(); ok && d > 0 {
		return [tileCols]rune{rune('0' + d), ' '}
	}
	return [tileCols]rune{'.', ' '}
}

// raised sprites are mostly set bits and draw light on dark.
func raised(sp render.Sprite) bool {
	return sp == render.SpriteCovered || sp == render.SpriteFlag
}

func (s *Surface) Blit(sp render.Sprite, x, y int) {
	light, lightOK := s.color(1)
	dark, darkOK := s.color(2)
	fg, fgOK, bg, bgOK := dark, darkOK, light, lightOK
	if raised(sp) {
		fg, fgOK, bg, bgOK = light, lightOK, dark, darkOK
	}
	col, row := CellOf(x, y)
	for i, r := range Glyphs(sp) {
		s.set(col+i, row, r, fg, fgOK, bg, bgOK)
	}
}

func (s *Surface) Text(str string, x, y int) {
	fg, fgOK := s.color(1)
	bg, bgOK := s.color(2)
	col, row := CellOf(x, y)
	for i, r := range []rune(str) {
		s.set(col+i, row, r, fg, fgOK, bg, bgOK)
	}
}

func (s *Surface) HLine(x, y, length int) {
	fg, ok := s.color(1)
	if !ok || length <= 0 {
		return
	}
	c0, row := CellOf(x, y)
	c1, _ := CellOf(x+length-1, y)
	for col := c0; col <= c1; col++ {
		s.line(col, row, '─', fg)
	}
}

func (s *Surface) VLine(x, y, length int) {
	fg, ok := s.color(1)
	if !ok || length <= 0 {
		return
	}
	col, r0 := CellOf(x, y)
	_, r1 := CellOf(x, y+length-1)
	for row := r0; row <= r1; row++ {
		s.line(col, row, '│', fg)
	}
}

// line draws a line glyph on a blank cell, joining crossing lines into '┼'.
// A cell showing any other glyph keeps it and only takes the line color.
func (s *Surface) line(col, row int, r rune, fg tcell.Color) {
	if col < 0 || row < 0 || col >= Cols || row >= Rows {
		return
	}
	cur, _, _, _ := s.screen.GetContent(col, row)
	switch cur {
	case ' ', 0:
	case '─', '│', '┼':
		if cur != r {
			r = '┼'
		}
	default:
		r = cur
	}
	s.set(col, row, r, fg, true, 0, false)
}

// Rect fills every cell whose centre lies inside the rectangle. Cells are too
// coarse for a separate outline, so the outline color only shows when the
// fill is transparent.
func (s *Surface) Rect(x, y, w, h int) {
	fill, ok := s.color(1)
	if !ok {
		if fill, ok = s.color(2); !ok {
			return
		}
	}
	r := core.Rect{X: x, Y: y, W: w, H: h}
	c0, r0 := CellOf(x, y)
	c1, r1 := CellOf(x+w-1, y+h-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if r.Contains(PixelOf(col, row)) {
				s.set(col, row, ' ', 0, false, fill, true)
			}
		}
	}
}
