package render

import (
	"strings"

	"minefield/internal/core"
)

// Op names a Surface primitive.
type Op string

const (
	OpBlit  Op = "blit"
	OpText  Op = "text"
	OpHLine Op = "hline"
	OpVLine Op = "vline"
	OpRect  Op = "rect"
)

// Call is one recorded drawing primitive.
type Call struct {
	Op     Op
	Sprite Sprite
	Text   string
	X, Y   int
	W, H   int
	Colors DrawColors
}

// Recorder is a headless Surface that keeps every call. It backs tests and
// debug dumps.
type Recorder struct {
	colors DrawColors
	Calls  []Call
}

// NewRecorder returns an empty recorder using colors as its initial state.
func NewRecorder(colors DrawColors) *Recorder {
	return &Recorder{colors: colors}
}

func (r *Recorder) DrawColors() DrawColors     { return r.colors }
func (r *Recorder) SetDrawColors(c DrawColors) { r.colors = c }

func (r *Recorder) Blit(s Sprite, x, y int) {
	r.Calls = append(r.Calls, Call{Op: OpBlit, Sprite: s, X: x, Y: y, W: TileSize, H: TileSize, Colors: r.colors})
}

func (r *Recorder) Text(s string, x, y int) {
	r.Calls = append(r.Calls, Call{Op: OpText, Text: s, X: x, Y: y, W: TextWidth(s), H: LineHeight, Colors: r.colors})
}

func (r *Recorder) HLine(x, y, length int) {
	r.Calls = append(r.Calls, Call{Op: OpHLine, X: x, Y: y, W: length, H: 1, Colors: r.colors})
}

func (r *Recorder) VLine(x, y, length int) {
	r.Calls = append(r.Calls, Call{Op: OpVLine, X: x, Y: y, W: 1, H: length, Colors: r.colors})
}

func (r *Recorder) Rect(x, y, w, h int) {
	r.Calls = append(r.Calls, Call{Op: OpRect, X: x, Y: y, W: w, H: h, Colors: r.colors})
}

// Reset drops recorded calls but keeps the current colors.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Blits maps each blit position to the last sprite drawn there.
func (r *Recorder) Blits() map[core.Point]Sprite {
	out := map[core.Point]Sprite{}
	for _, c := range r.Calls {
		if c.Op == OpBlit {
			out[core.Pt(c.X, c.Y)] = c.Sprite
		}
	}
	return out
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// HasText reports whether any drawn string contains sub.
func (r *Recorder) HasText(sub string) bool {
	for _, s := range r.Texts() {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
