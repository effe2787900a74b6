// Package render defines the color-indexed drawing surface the game core
// paints onto, the tile sprite sheet, and the surface implementations that do
// not depend on a terminal.
//
// Coordinates are logical pixels in a ScreenWidth x ScreenHeight space. Colors
// are never passed directly: a surface carries a DrawColors value whose
// nibbles select palette slots, and every primitive reads the slots it needs.
package render

import (
	"fmt"
	"image/color"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 160

	// TileSize is the edge of a sprite in logical pixels.
	TileSize = 8
	// CharWidth and LineHeight give the fixed text cell in logical pixels.
	CharWidth  = 4
	LineHeight = 8
)

// DrawColors packs four palette references, one per nibble. Slot 1 is the
// lowest nibble. A nibble of 0 means transparent; 1..4 select Palette entries.
type DrawColors uint16

// Slot returns the palette reference held by slot n (1..4).
func (c DrawColors) Slot(n int) uint8 {
	if n < 1 || n > 4 {
		return 0
	}
	return uint8(c>>(4*(n-1))) & 0xF
}

func (c DrawColors) String() string { return fmt.Sprintf("0x%04x", uint16(c)) }

// Palette holds the four colors DrawColors refer to.
type Palette [4]color.RGBA

// DefaultPalette goes from lightest (1) to darkest (4).
var DefaultPalette = Palette{
	{R: 0xe0, G: 0xf8, B: 0xcf, A: 0xff},
	{R: 0x86, G: 0xc0, B: 0x6c, A: 0xff},
	{R: 0x30, G: 0x68, B: 0x50, A: 0xff},
	{R: 0x07, G: 0x18, B: 0x21, A: 0xff},
}

// Color resolves a palette reference. ok is false for 0 and out of range
// references, which draw as transparent.
func (p Palette) Color(ref uint8) (c color.RGBA, ok bool) {
	if ref == 0 || int(ref) > len(p) {
		return color.RGBA{}, false
	}
	return p[ref-1], true
}

// Surface is the drawing sink consumed by the screens and the minefield.
//
//   - Blit draws an 8x8 sprite: clear bits use slot 1, set bits use slot 2.
//   - Text draws fixed width text: glyphs use slot 1, background slot 2.
//   - HLine and VLine draw with slot 1.
//   - Rect fills with slot 1 and outlines with slot 2.
//
// Implementations never change DrawColors on their own.
type Surface interface {
	DrawColors() DrawColors
	SetDrawColors(c DrawColors)
	Blit(s Sprite, x, y int)
	Text(s string, x, y int)
	HLine(x, y, length int)
	VLine(x, y, length int)
	Rect(x, y, w, h int)
}

// TextWidth returns the width in logical pixels of s drawn with Text.
func TextWidth(s string) int { return len(s) * CharWidth }
