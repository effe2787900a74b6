package minefield

import (
	"testing"

	"minefield/internal/core"
	pcore "minefield/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomBoard places mines anywhere, first click included.
func randomBoard(t *testing.T, seed int64, w, h, count int) (*Map, Mines) {
	t.Helper()
	m, err := New(w, h, core.Point{})
	require.NoError(t, err)
	rng := pcore.NewRNG(seed)
	var mines Mines
	for len(mines) < count {
		p := core.Pt(rng.IntN(w), rng.IntN(h))
		if !mines.Contains(p.X, p.Y) {
			mines = append(mines, p)
		}
	}
	return m, mines
}

func checkFloodRegion(t *testing.T, m *Map, mines Mines) {
	t.Helper()
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			tile, _ := m.Tile(x, y)
			if tile.Covered {
				continue
			}
			require.False(t, mines.Contains(x, y), "flood uncovered mine at (%d,%d)\n%s", x, y, m.Dump(mines))
			n, _ := m.AdjacentMineCount(x, y, mines)
			if n != 0 {
				continue
			}
			m.tiles.Neighbors(x, y, func(nx, ny int) {
				nt, _ := m.Tile(nx, ny)
				if !nt.Flagged {
					assert.False(t, nt.Covered, "zero tile (%d,%d) left neighbour (%d,%d) covered\n%s",
						x, y, nx, ny, m.Dump(mines))
				}
			})
		}
	}
}

func TestFloodRegionBoundary(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		m, mines := randomBoard(t, seed, 20, 15, 25)

		var start core.Point
		found := false
		for y := 0; y < m.Height() && !found; y++ {
			for x := 0; x < m.Width() && !found; x++ {
				n, _ := m.AdjacentMineCount(x, y, mines)
				if n == 0 && !mines.Contains(x, y) {
					start, found = core.Pt(x, y), true
				}
			}
		}
		if !found {
			continue
		}

		out, err := m.Reveal(start.X, start.Y, mines)
		require.NoError(t, err)
		require.Equal(t, Revealed, out)
		checkFloodRegion(t, m, mines)
		assert.False(t, m.HasSteppedOnMine(mines))
	}
}

func TestSteppedOnMineIffMineUncovered(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		m, mines := randomBoard(t, seed, 8, 8, 10)
		rng := pcore.NewRNG(seed + 1000)

		for step := 0; step < 40; step++ {
			x, y := rng.IntN(8), rng.IntN(8)
			if rng.IntN(3) == 0 {
				require.NoError(t, m.ToggleFlag(x, y))
			} else {
				_, err := m.Reveal(x, y, mines)
				require.NoError(t, err)
			}

			uncoveredMine := false
			for _, p := range mines {
				if tile, _ := m.Tile(p.X, p.Y); !tile.Covered {
					uncoveredMine = true
				}
			}
			require.Equal(t, uncoveredMine, m.HasSteppedOnMine(mines), "seed %d step %d", seed, step)
		}
	}
}

func TestWinConditionIgnoresFlags(t *testing.T) {
	m, err := New(4, 4, core.Point{})
	require.NoError(t, err)
	mines := Mines{core.Pt(0, 3), core.Pt(3, 0)}
	won := func() bool { return m.CountUncoveredTiles()+len(mines) == 16 }

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if tile, _ := m.Tile(x, y); mines.Contains(x, y) || !tile.Covered {
				continue
			}
			require.False(t, won())
			_, err := m.Reveal(x, y, mines)
			require.NoError(t, err)
		}
	}
	assert.True(t, won())
	assert.Equal(t, 14, m.CountUncoveredTiles())

	require.NoError(t, m.ToggleFlag(0, 3))
	assert.True(t, won(), "flags on mines do not change the outcome")
}

func TestFloodLargeBoard(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	m, err := New(1000, 1000, core.Point{})
	require.NoError(t, err)
	mines := Mines{core.Pt(999, 999)}

	out, err := m.Reveal(0, 0, mines)
	require.NoError(t, err)
	assert.Equal(t, Revealed, out)
	assert.Equal(t, 1000*1000-1, m.CountUncoveredTiles())
}
