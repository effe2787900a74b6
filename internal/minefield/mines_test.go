package minefield

import (
	"testing"

	"minefield/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceMinesReproducible(t *testing.T) {
	place := func() Mines {
		m, err := FromRandomSeed(42, 16, 14, core.Pt(0, 20))
		require.NoError(t, err)
		mines, err := m.PlaceMines(5, core.Pt(7, 7))
		require.NoError(t, err)
		return mines
	}
	first := place()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, place())
	}

	other, err := FromRandomSeed(43, 16, 14, core.Pt(0, 20))
	require.NoError(t, err)
	mines, err := other.PlaceMines(5, core.Pt(7, 7))
	require.NoError(t, err)
	assert.NotEqual(t, first, mines)
}

func TestPlaceMinesUniqueInBoundsAndClearOfFirstClick(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		m, err := FromRandomSeed(seed, 9, 9, core.Point{})
		require.NoError(t, err)
		first := core.Pt(int(seed%9), int(seed/9%9))
		mines, err := m.PlaceMines(10, first)
		require.NoError(t, err)
		require.Len(t, mines, 10)

		seen := map[core.Point]bool{}
		for _, p := range mines {
			assert.True(t, m.InBounds(p.X, p.Y))
			assert.False(t, seen[p], "duplicate mine %v", p)
			seen[p] = true
			assert.False(t, abs(p.X-first.X) <= 1 && abs(p.Y-first.Y) <= 1,
				"seed %d: mine %v next to first click %v", seed, p, first)
		}
	}
}

func TestPlaceMinesDenseBoardUsesNeighbours(t *testing.T) {
	m, err := FromRandomSeed(1, 3, 3, core.Point{})
	require.NoError(t, err)
	mines, err := m.PlaceMines(8, core.Pt(1, 1))
	require.NoError(t, err)
	assert.Len(t, mines, 8)
	assert.False(t, mines.Contains(1, 1))
}

func TestPlaceMinesErrors(t *testing.T) {
	m, err := FromRandomSeed(1, 3, 3, core.Point{})
	require.NoError(t, err)

	_, err = m.PlaceMines(9, core.Pt(0, 0))
	assert.ErrorIs(t, err, ErrTooManyMines)
	_, err = m.PlaceMines(2, core.Pt(3, 0))
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = m.PlaceMines(2, core.Pt(0, 0))
	require.NoError(t, err)
	_, err = m.PlaceMines(2, core.Pt(0, 0))
	assert.ErrorIs(t, err, ErrMinesPlaced)
	assert.True(t, m.MinesPlaced())
}

func TestFirstRevealNeverDetonates(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		m, err := FromRandomSeed(seed, 4, 4, core.Point{})
		require.NoError(t, err)
		first := core.Pt(int(seed%4), int(seed/4%4))
		mines, err := m.PlaceMines(5, first)
		require.NoError(t, err)
		out, err := m.Reveal(first.X, first.Y, mines)
		require.NoError(t, err)
		assert.Equal(t, Revealed, out, "seed %d", seed)
	}
}

func TestMinesContains(t *testing.T) {
	ms := Mines{core.Pt(1, 2), core.Pt(3, 4)}
	assert.True(t, ms.Contains(3, 4))
	assert.False(t, ms.Contains(2, 1))
	assert.False(t, Mines(nil).Contains(0, 0))
}
