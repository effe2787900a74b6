//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// fontScale shrinks basicfont's 13px cell onto a LineHeight row.
const fontScale = float64(LineHeight) / 13

type spriteKey struct {
	sprite Sprite
	colors DrawColors
}

// Screen implements Surface on top of an ebiten image. Sprite images are
// rasterized once per sprite and color pair and then reused.
type Screen struct {
	dst     *ebiten.Image
	colors  DrawColors
	palette Palette
	sprites map[spriteKey]*ebiten.Image
	pixel   *ebiten.Image
}

// NewScreen returns a Screen drawing with pal.
func NewScreen(pal Palette) *Screen {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Screen{
		colors:  0x4321,
		palette: pal,
		sprites: map[spriteKey]*ebiten.Image{},
		pixel:   pixel,
	}
}

// Begin targets dst for the following calls and clears it to palette color 1.
func (s *Screen) Begin(dst *ebiten.Image) {
	s.dst = dst
	if bg, ok := s.palette.Color(1); ok {
		dst.Fill(bg)
	}
}

func (s *Screen) DrawColors() DrawColors     { return s.colors }
func (s *Screen) SetDrawColors(c DrawColors) { s.colors = c }

func (s *Screen) Blit(sp Sprite, x, y int) {
	if s.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	s.dst.DrawImage(s.sprite(sp), op)
}

func (s *Screen) sprite(sp Sprite) *ebiten.Image {
	key := spriteKey{sprite: sp, colors: s.colors & 0xFF}
	if img, ok := s.sprites[key]; ok {
		return img
	}
	img := ebiten.NewImage(TileSize, TileSize)
	img.WritePixels(SpritePixels(sp, s.colors, s.palette))
	s.sprites[key] = img
	return img
}

func (s *Screen) Text(str string, x, y int) {
	if s.dst == nil {
		return
	}
	if bg, ok := s.palette.Color(s.colors.Slot(2)); ok {
		s.fill(x, y, TextWidth(str), LineHeight, bg)
	}
	fg, ok := s.palette.Color(s.colors.Slot(1))
	if !ok {
		return
	}
	face := basicfont.Face7x13
	// One glyph per CharWidth cell keeps text aligned with the terminal host.
	for i := 0; i < len(str); i++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(fontScale, fontScale)
		op.GeoM.Translate(float64(x+i*CharWidth), float64(y)+float64(face.Ascent)*fontScale)
		op.ColorM.ScaleWithColor(fg)
		text.DrawWithOptions(s.dst, str[i:i+1], face, op)
	}
}

func (s *Screen) HLine(x, y, length int) {
	if c, ok := s.palette.Color(s.colors.Slot(1)); ok {
		s.fill(x, y, length, 1, c)
	}
}

func (s *Screen) VLine(x, y, length int) {
	if c, ok := s.palette.Color(s.colors.Slot(1)); ok {
		s.fill(x, y, 1, length, c)
	}
}

func (s *Screen) Rect(x, y, w, h int) {
	if c, ok := s.palette.Color(s.colors.Slot(1)); ok {
		s.fill(x, y, w, h, c)
	}
	if c, ok := s.palette.Color(s.colors.Slot(2)); ok {
		s.fill(x, y, w, 1, c)
		s.fill(x, y+h-1, w, 1, c)
		s.fill(x, y, 1, h, c)
		s.fill(x+w-1, y, 1, h, c)
	}
}

func (s *Screen) fill(x, y, w, h int, col color.RGBA) {
	if s.dst == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.ScaleWithColor(col)
	s.dst.DrawImage(s.pixel, op)
}
