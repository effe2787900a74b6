// Package minefield implements the minesweeper board: tile storage, seeded
// mine placement, flood-fill reveal, flags and terminal-state queries.
//
// Mines are not part of the board. They are an ordered coordinate list passed
// into every query that needs them, so the same board can be inspected with
// or without its mines.
//
// Coordinate arguments are checked: operations addressing a tile outside the
// board return an error wrapping ErrOutOfRange and leave the board untouched.
// The click handlers translate pixels and drop out-of-range clicks silently.
package minefield

import (
	"errors"
	"fmt"

	"minefield/internal/core"
	"minefield/internal/render"
	pcore "minefield/pkg/core"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// Log receives placement and flood diagnostics at debug level.
var Log = logrus.New()

const (
	// TileSize is the edge of a tile in pixels.
	TileSize = render.TileSize
	// DefaultDigitCap caps adjacency numbers at the eight neighbours.
	DefaultDigitCap uint8 = 8
)

var (
	ErrOutOfRange   = errors.New("coordinates out of range")
	ErrInvalidSize  = errors.New("invalid board size")
	ErrDigitCap     = errors.New("digit cap must be at least 1")
	ErrTooManyMines = errors.New("too many mines for board")
	ErrMinesPlaced  = errors.New("mines already placed")
)

const (
	tileCovered uint8 = 1 << iota
	tileFlagged
)

// Tile is the player-visible state of one cell.
type Tile struct {
	Covered bool
	Flagged bool
}

func tileOf(v uint8) Tile {
	return Tile{Covered: v&tileCovered != 0, Flagged: v&tileFlagged != 0}
}

// Outcome is the result of a reveal.
type Outcome int

const (
	// Unchanged means the tile was flagged or already uncovered.
	Unchanged Outcome = iota
	Revealed
	Detonated
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Revealed:
		return "revealed"
	case Detonated:
		return "detonated"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Map is a fixed-size board of tiles drawn at a pixel offset.
type Map struct {
	tiles    *core.ByteGrid
	offset   core.Point
	digitCap uint8
	seed     int64
	rng      *pcore.RNG
	placed   bool
}

// Option customizes New.
type Option func(*Map)

// WithSeed sets the seed mine placement is derived from.
func WithSeed(seed int64) Option {
	return func(m *Map) { m.seed = seed }
}

// WithDigitCap caps the adjacency numbers reported and drawn.
func WithDigitCap(n uint8) Option {
	return func(m *Map) { m.digitCap = n }
}

// New returns a width x height board with every tile covered and unflagged.
// offset is the pixel position of tile (0, 0).
func New(width, height int, offset core.Point, opts ...Option) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	m := &Map{offset: offset, digitCap: DefaultDigitCap}
	for _, opt := range opts {
		opt(m)
	}
	if m.digitCap == 0 {
		return nil, ErrDigitCap
	}
	m.tiles = core.NewByteGrid(width, height)
	m.tiles.Fill(tileCovered)
	m.rng = pcore.NewRNG(m.seed)
	return m, nil
}

// FromRandomSeed returns a covered board whose mine placement is fully
// determined by seed, the dimensions and the first revealed tile.
func FromRandomSeed(seed int64, width, height int, offset core.Point) (*Map, error) {
	return New(width, height, offset, WithSeed(seed))
}

func (m *Map) Width() int             { return m.tiles.W }
func (m *Map) Height() int            { return m.tiles.H }
func (m *Map) Size() core.Size        { return core.Size{W: m.tiles.W, H: m.tiles.H} }
func (m *Map) Seed() int64            { return m.seed }
func (m *Map) MinesPlaced() bool      { return m.placed }
func (m *Map) InBounds(x, y int) bool { return m.tiles.InBounds(x, y) }

// Bounds returns the pixel rectangle covered by the board.
func (m *Map) Bounds() core.Rect {
	return core.Rect{X: m.offset.X, Y: m.offset.Y, W: m.tiles.W * TileSize, H: m.tiles.H * TileSize}
}

func (m *Map) check(x, y int) error {
	if !m.tiles.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfRange, x, y, m.tiles.W, m.tiles.H)
	}
	return nil
}

// Tile returns the state of (x, y).
func (m *Map) Tile(x, y int) (Tile, error) {
	if err := m.check(x, y); err != nil {
		return Tile{}, err
	}
	return tileOf(m.tiles.At(x, y)), nil
}

// Reveal uncovers (x, y). Flagged and already uncovered tiles are left alone.
// Uncovering a tile without adjacent mines floods outwards through the
// 8-connected neighbourhood, stopping at flagged tiles and at tiles that
// touch a mine.
func (m *Map) Reveal(x, y int, mines Mines) (Outcome, error) {
	if err := m.check(x, y); err != nil {
		return Unchanged, err
	}
	v := m.tiles.At(x, y)
	if v&tileFlagged != 0 || v&tileCovered == 0 {
		return Unchanged, nil
	}
	m.uncover(x, y)

	mask := m.mineMask(mines)
	if mask[m.tiles.Index(x, y)] {
		return Detonated, nil
	}
	if m.countAround(x, y, mask) == 0 {
		n := m.flood(x, y, mask)
		Log.WithFields(logrus.Fields{"x": x, "y": y, "uncovered": n}).Debug("flood reveal")
	}
	return Revealed, nil
}

// flood uncovers the region around an uncovered zero tile. Tiles are
// uncovered when they are queued, so none is queued twice.
func (m *Map) flood(x, y int, mask []bool) int {
	var work deque.Deque[core.Point]
	work.PushBack(core.Pt(x, y))
	uncovered := 0
	for work.Len() > 0 {
		p := work.PopFront()
		m.tiles.Neighbors(p.X, p.Y, func(nx, ny int) {
			v := m.tiles.At(nx, ny)
			if v&tileCovered == 0 || v&tileFlagged != 0 || mask[m.tiles.Index(nx, ny)] {
				return
			}
			m.uncover(nx, ny)
			uncovered++
			if m.countAround(nx, ny, mask) == 0 {
				work.PushBack(core.Pt(nx, ny))
			}
		})
	}
	return uncovered
}

func (m *Map) uncover(x, y int) {
	m.tiles.Set(x, y, m.tiles.At(x, y)&^(tileCovered|tileFlagged))
}

// ToggleFlag flips the flag on a covered tile. Uncovered tiles are ignored.
func (m *Map) ToggleFlag(x, y int) error {
	if err := m.check(x, y); err != nil {
		return err
	}
	v := m.tiles.At(x, y)
	if v&tileCovered == 0 {
		return nil
	}
	m.tiles.Set(x, y, v^tileFlagged)
	return nil
}

// TileAt translates a pixel position into tile coordinates. ok is false
// outside Bounds.
func (m *Map) TileAt(px, py int) (x, y int, ok bool) {
	if !m.Bounds().Contains(px, py) {
		return 0, 0, false
	}
	d := core.Pt(px, py).Sub(m.offset)
	return d.X / TileSize, d.Y / TileSize, true
}

// HandleLeftClick reveals the tile under the pixel position, if any.
func (m *Map) HandleLeftClick(px, py int, mines Mines) Outcome {
	x, y, ok := m.TileAt(px, py)
	if !ok {
		return Unchanged
	}
	out, _ := m.Reveal(x, y, mines)
	return out
}

// HandleRightClick toggles the flag under the pixel position and reports
// whether a flag changed.
func (m *Map) HandleRightClick(px, py int) bool {
	x, y, ok := m.TileAt(px, py)
	if !ok {
		return false
	}
	before := m.tiles.At(x, y)
	_ = m.ToggleFlag(x, y)
	return before != m.tiles.At(x, y)
}

// AdjacentMineCount counts mines among the neighbours of (x, y), capped at
// the board's digit cap.
func (m *Map) AdjacentMineCount(x, y int, mines Mines) (uint8, error) {
	if err := m.check(x, y); err != nil {
		return 0, err
	}
	return m.countAround(x, y, m.mineMask(mines)), nil
}

func (m *Map) countAround(x, y int, mask []bool) uint8 {
	var n uint8
	m.tiles.Neighbors(x, y, func(nx, ny int) {
		if mask[m.tiles.Index(nx, ny)] && n < m.digitCap {
			n++
		}
	})
	return n
}

// mineMask flags, per tile index, whether a mine sits there. Mines outside
// the board are ignored.
func (m *Map) mineMask(mines Mines) []bool {
	mask := make([]bool, m.tiles.W*m.tiles.H)
	for _, p := range mines {
		if m.tiles.InBounds(p.X, p.Y) {
			mask[m.tiles.Index(p.X, p.Y)] = true
		}
	}
	return mask
}

// CountUncoveredTiles scans the board for uncovered tiles.
func (m *Map) CountUncoveredTiles() int {
	return m.tiles.Count(func(v uint8) bool { return v&tileCovered == 0 })
}

// CountFlaggedTiles scans the board for flagged tiles.
func (m *Map) CountFlaggedTiles() int {
	return m.tiles.Count(func(v uint8) bool { return v&tileFlagged != 0 })
}

// RemainingMines is total minus the placed flags, never below zero.
func (m *Map) RemainingMines(total int) int {
	return max(total-m.CountFlaggedTiles(), 0)
}

// HasSteppedOnMine reports whether any mine tile is uncovered. It rescans on
// every call.
func (m *Map) HasSteppedOnMine(mines Mines) bool {
	for _, p := range mines {
		if m.tiles.InBounds(p.X, p.Y) && m.tiles.At(p.X, p.Y)&tileCovered == 0 {
			return true
		}
	}
	return false
}

// HasStarted reports whether any tile has been uncovered.
func (m *Map) HasStarted() bool {
	for _, v := range m.tiles.Cells() {
		if v&tileCovered == 0 {
			return true
		}
	}
	return false
}
