package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// SpritePixels rasterizes s into TileSize*TileSize RGBA pixels using the
// first two slots of colors. Transparent slots yield zero alpha.
func SpritePixels(s Sprite, colors DrawColors, pal Palette) []byte {
	off, _ := pal.Color(colors.Slot(1))
	on, _ := pal.Color(colors.Slot(2))
	buf := make([]byte, 4*TileSize*TileSize)
	fillPaletteRGBA(buf, BitmapOf(s).Cells(), []color.RGBA{off, on})
	return buf
}
