package minefield

import (
	"strings"

	"minefield/internal/core"
	"minefield/internal/render"
)

// tileColors draws tiles light on dark.
const tileColors render.DrawColors = 0x0041

// Draw paints every tile at its pixel position. Pass nil mines to draw the
// board as if it had none.
func (m *Map) Draw(s render.Surface, mines Mines) {
	s.SetDrawColors(tileColors)
	mask := m.mineMask(mines)
	for y := 0; y < m.tiles.H; y++ {
		for x := 0; x < m.tiles.W; x++ {
			p := m.offset.Add(core.Pt(x*TileSize, y*TileSize))
			s.Blit(m.sprite(x, y, mask), p.X, p.Y)
		}
	}
}

func (m *Map) sprite(x, y int, mask []bool) render.Sprite {
	t := tileOf(m.tiles.At(x, y))
	switch {
	case t.Flagged:
		return render.SpriteFlag
	case t.Covered:
		return render.SpriteCovered
	case mask[m.tiles.Index(x, y)]:
		return render.SpriteMine
	}
	return render.SpriteDigit(m.countAround(x, y, mask))
}

// Dump renders the board as text, one row per line: '#' covered, 'F'
// flagged, '*' uncovered mine, '.' empty, digits for counts. Covered mines
// show as 'm' so debug output can tell them apart.
func (m *Map) Dump(mines Mines) string {
	mask := m.mineMask(mines)
	var b strings.Builder
	for y := 0; y < m.tiles.H; y++ {
		for x := 0; x < m.tiles.W; x++ {
			t := tileOf(m.tiles.At(x, y))
			mine := mask[m.tiles.Index(x, y)]
			switch {
			case t.Flagged:
				b.WriteByte('F')
			case t.Covered && mine:
				b.WriteByte('m')
			case t.Covered:
				b.WriteByte('#')
			case mine:
				b.WriteByte('*')
			default:
				n := m.countAround(x, y, mask)
				if n == 0 {
					b.WriteByte('.')
				} else {
					b.WriteByte('0' + n)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
