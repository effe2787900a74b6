package render

import "fmt"

// Sprite identifies an 8x8 tile image of the sprite sheet.
type Sprite uint8

const (
	SpriteCovered Sprite = iota
	SpriteFlag
	SpriteMine
	// SpriteDigit0 is an uncovered tile without neighbours; SpriteDigit0+n
	// shows n.
	SpriteDigit0
)

// MaxDigit is the highest adjacency number the sheet can show.
const MaxDigit = 8

// SpriteDigit returns the uncovered tile sprite showing n, saturating at
// MaxDigit.
func SpriteDigit(n uint8) Sprite {
	if n > MaxDigit {
		n = MaxDigit
	}
	return SpriteDigit0 + Sprite(n)
}

// Digit reports the number shown by an uncovered tile sprite.
func (s Sprite) Digit() (uint8, bool) {
	if s < SpriteDigit0 || s > SpriteDigit0+MaxDigit {
		return 0, false
	}
	return uint8(s - SpriteDigit0), true
}

func (s Sprite) String() string {
	switch s {
	case SpriteCovered:
		return "covered"
	case SpriteFlag:
		return "flag"
	case SpriteMine:
		return "mine"
	}
	if d, ok := s.Digit(); ok {
		return fmt.Sprintf("digit%d", d)
	}
	return fmt.Sprintf("sprite(%d)", uint8(s))
}

// Bitmap is a 1bpp 8x8 image, one byte per row, most significant bit on the
// left.
type Bitmap [TileSize]uint8

var (
	coveredBitmap = Bitmap{0xFF, 0xFF, 0xC3, 0xC3, 0xC3, 0xC3, 0xFF, 0xFF}
	flagBitmap    = Bitmap{0xFF, 0x99, 0x9D, 0x99, 0x91, 0xB9, 0x81, 0xFF}
	mineBitmap    = Bitmap{0xFF, 0x80, 0x9C, 0xBE, 0xBE, 0xBE, 0x9C, 0x80}

	// 3x5 numerals drawn at columns 3..5, rows 2..6 of an uncovered tile.
	digitGlyphs = [MaxDigit + 1][5]uint8{
		{0, 0, 0, 0, 0},
		{2, 6, 2, 2, 7},
		{7, 1, 7, 4, 7},
		{7, 1, 3, 1, 7},
		{5, 5, 7, 1, 1},
		{7, 4, 7, 1, 7},
		{7, 4, 7, 5, 7},
		{7, 1, 1, 2, 2},
		{7, 5, 7, 5, 7},
	}
)

// BitmapOf returns the image for s. Unknown sprites render as covered tiles.
func BitmapOf(s Sprite) Bitmap {
	switch s {
	case SpriteCovered:
		return coveredBitmap
	case SpriteFlag:
		return flagBitmap
	case SpriteMine:
		return mineBitmap
	}
	d, ok := s.Digit()
	if !ok {
		return coveredBitmap
	}
	b := Bitmap{0xFF, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}
	for row, bits := range digitGlyphs[d] {
		b[row+2] |= bits << 2
	}
	return b
}

// Cells expands the bitmap into TileSize*TileSize values of 0 or 1.
func (b Bitmap) Cells() []uint8 {
	cells := make([]uint8, TileSize*TileSize)
	for y, row := range b {
		for x := 0; x < TileSize; x++ {
			if row&(0x80>>x) != 0 {
				cells[y*TileSize+x] = 1
			}
		}
	}
	return cells
}
