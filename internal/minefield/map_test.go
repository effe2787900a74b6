package minefield

import (
	"io"
	"os"
	"testing"

	"minefield/internal/core"
	"minefield/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newMap(t *testing.T, w, h int) *Map {
	t.Helper()
	m, err := New(w, h, core.Point{})
	require.NoError(t, err)
	return m
}

func TestNewAllCoveredAndUnflagged(t *testing.T) {
	for _, size := range []core.Size{{W: 1, H: 1}, {W: 4, H: 4}, {W: 16, H: 14}, {W: 7, H: 3}} {
		m := newMap(t, size.W, size.H)
		tiles := 0
		for y := 0; y < size.H; y++ {
			for x := 0; x < size.W; x++ {
				tile, err := m.Tile(x, y)
				require.NoError(t, err)
				assert.Equal(t, Tile{Covered: true}, tile)
				tiles++
			}
		}
		assert.Equal(t, size.Area(), tiles)
		assert.Zero(t, m.CountUncoveredTiles())
		assert.Zero(t, m.CountFlaggedTiles())
		assert.False(t, m.HasStarted())
	}
}

func TestNewRejectsBadParameters(t *testing.T) {
	_, err := New(0, 4, core.Point{})
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = New(4, -1, core.Point{})
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = New(4, 4, core.Point{}, WithDigitCap(0))
	assert.ErrorIs(t, err, ErrDigitCap)
}

func TestOutOfRangeAccess(t *testing.T) {
	m := newMap(t, 4, 4)
	_, err := m.Tile(4, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = m.Reveal(-1, 0, nil)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, m.ToggleFlag(0, 4), ErrOutOfRange)
	_, err = m.AdjacentMineCount(9, 9, nil)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.False(t, m.HasStarted(), "failed access must not modify the board")
}

// Scenario A: a single mine in the corner, the opposite corner floods the
// rest of the board and wins.
func TestRevealFloodsWholeBoard(t *testing.T) {
	m := newMap(t, 4, 4)
	mines := Mines{core.Pt(3, 3)}

	out, err := m.Reveal(0, 0, mines)
	require.NoError(t, err)
	assert.Equal(t, Revealed, out)

	want := "" +
		"....\n" +
		"....\n" +
		"..11\n" +
		"..1m\n"
	assert.Equal(t, want, m.Dump(mines))
	assert.Equal(t, 15, m.CountUncoveredTiles())
	assert.False(t, m.HasSteppedOnMine(mines))
	assert.Equal(t, 16, m.CountUncoveredTiles()+len(mines), "board is won")

	for _, p := range []core.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 3}} {
		n, err := m.AdjacentMineCount(p.X, p.Y, mines)
		require.NoError(t, err)
		assert.Equal(t, uint8(1), n, "count at %v", p)
	}
}

// Scenario B: stepping on the mine directly.
func TestRevealMineDetonatesWithoutFlood(t *testing.T) {
	m := newMap(t, 4, 4)
	mines := Mines{core.Pt(3, 3)}

	out, err := m.Reveal(3, 3, mines)
	require.NoError(t, err)
	assert.Equal(t, Detonated, out)
	assert.True(t, m.HasSteppedOnMine(mines))
	assert.Equal(t, 1, m.CountUncoveredTiles())
}

// Scenario C: a flagged tile cannot be revealed.
func TestRevealFlaggedIsNoop(t *testing.T) {
	m := newMap(t, 4, 4)
	mines := Mines{core.Pt(3, 3)}
	require.NoError(t, m.ToggleFlag(2, 2))

	out, err := m.Reveal(2, 2, mines)
	require.NoError(t, err)
	assert.Equal(t, Unchanged, out)

	tile, _ := m.Tile(2, 2)
	assert.Equal(t, Tile{Covered: true, Flagged: true}, tile)
	assert.Zero(t, m.CountUncoveredTiles())
}

func TestRevealStopsAtFlags(t *testing.T) {
	m := newMap(t, 5, 1)
	require.NoError(t, m.ToggleFlag(2, 0))

	_, err := m.Reveal(0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "..F##\n", m.Dump(nil))
}

func TestRevealIsIdempotent(t *testing.T) {
	m := newMap(t, 6, 6)
	mines := Mines{core.Pt(5, 5), core.Pt(0, 5)}
	_, err := m.Reveal(0, 0, mines)
	require.NoError(t, err)
	before := m.Dump(mines)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			tile, _ := m.Tile(x, y)
			if tile.Covered {
				continue
			}
			out, err := m.Reveal(x, y, mines)
			require.NoError(t, err)
			assert.Equal(t, Unchanged, out)
		}
	}
	assert.Equal(t, before, m.Dump(mines))
}

func TestToggleFlag(t *testing.T) {
	m := newMap(t, 3, 3)
	require.NoError(t, m.ToggleFlag(1, 1))
	assert.Equal(t, 1, m.CountFlaggedTiles())
	require.NoError(t, m.ToggleFlag(1, 1))
	assert.Zero(t, m.CountFlaggedTiles())

	_, err := m.Reveal(0, 0, Mines{core.Pt(2, 2)})
	require.NoError(t, err)
	require.NoError(t, m.ToggleFlag(0, 0))
	tile, _ := m.Tile(0, 0)
	assert.Equal(t, Tile{}, tile, "uncovered tiles cannot be flagged")
}

func TestAdjacentMineCountCapped(t *testing.T) {
	mines := Mines{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x != 1 || y != 1 {
				mines = append(mines, core.Pt(x, y))
			}
		}
	}

	m := newMap(t, 3, 3)
	n, err := m.AdjacentMineCount(1, 1, mines)
	require.NoError(t, err)
	assert.Equal(t, uint8(8), n)

	capped, err := New(3, 3, core.Point{}, WithDigitCap(3))
	require.NoError(t, err)
	n, err = capped.AdjacentMineCount(1, 1, mines)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), n)
}

func TestClickTranslation(t *testing.T) {
	m, err := New(16, 14, core.Pt(0, 20))
	require.NoError(t, err)
	assert.Equal(t, core.Rect{X: 0, Y: 20, W: 128, H: 112}, m.Bounds())

	x, y, ok := m.TileAt(0, 20)
	assert.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y, ok = m.TileAt(127, 20+14*8-1)
	assert.True(t, ok)
	assert.Equal(t, 15, x)
	assert.Equal(t, 13, y)

	for _, p := range []core.Point{{X: 0, Y: 19}, {X: -1, Y: 30}, {X: 128, Y: 30}, {X: 10, Y: 20 + 14*8}} {
		_, _, ok := m.TileAt(p.X, p.Y)
		assert.False(t, ok, "pixel %v", p)
	}

	assert.Equal(t, Unchanged, m.HandleLeftClick(50, 5, nil))
	assert.False(t, m.HandleRightClick(200, 200))
	assert.False(t, m.HasStarted())

	assert.True(t, m.HandleRightClick(12, 28))
	tile, _ := m.Tile(1, 1)
	assert.True(t, tile.Flagged)

	mines := Mines{core.Pt(15, 13)}
	assert.Equal(t, Revealed, m.HandleLeftClick(3, 22, mines))
	assert.True(t, m.HasStarted())
}

func TestRemainingMines(t *testing.T) {
	m := newMap(t, 4, 4)
	assert.Equal(t, 5, m.RemainingMines(5))
	for x := 0; x < 4; x++ {
		require.NoError(t, m.ToggleFlag(x, 0))
		require.NoError(t, m.ToggleFlag(x, 1))
	}
	assert.Zero(t, m.RemainingMines(5))
}

func TestDrawSprites(t *testing.T) {
	m, err := New(3, 1, core.Pt(0, 20))
	require.NoError(t, err)
	mines := Mines{core.Pt(2, 0)}
	require.NoError(t, m.ToggleFlag(1, 0))
	_, err = m.Reveal(0, 0, mines)
	require.NoError(t, err)

	rec := render.NewRecorder(0)
	m.Draw(rec, mines)
	blits := rec.Blits()
	require.Len(t, blits, 3)
	assert.Equal(t, render.SpriteDigit(0), blits[core.Pt(0, 20)])
	assert.Equal(t, render.SpriteFlag, blits[core.Pt(8, 20)])
	assert.Equal(t, render.SpriteCovered, blits[core.Pt(16, 20)])

	_, err = m.Reveal(2, 0, mines)
	require.NoError(t, err)
	rec.Reset()
	m.Draw(rec, mines)
	assert.Equal(t, render.SpriteMine, rec.Blits()[core.Pt(16, 20)])

	// Without mines the same tile draws as an empty uncovered tile.
	rec.Reset()
	m.Draw(rec, nil)
	assert.Equal(t, render.SpriteDigit(0), rec.Blits()[core.Pt(16, 20)])
}

func TestDrawDigits(t *testing.T) {
	m := newMap(t, 3, 3)
	mines := Mines{core.Pt(0, 0), core.Pt(2, 0)}
	_, err := m.Reveal(1, 1, mines)
	require.NoError(t, err)

	rec := render.NewRecorder(0)
	m.Draw(rec, mines)
	assert.Equal(t, render.SpriteDigit(2), rec.Blits()[core.Pt(8, 8)])
	for _, c := range rec.Calls {
		assert.Equal(t, tileColors, c.Colors)
	}
}
