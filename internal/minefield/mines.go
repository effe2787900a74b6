package minefield

import (
	"fmt"

	"minefield/internal/core"

	"github.com/sirupsen/logrus"
)

// Mines is an ordered list of mine coordinates.
type Mines []core.Point

// Contains reports whether a mine sits at (x, y).
func (ms Mines) Contains(x, y int) bool {
	for _, p := range ms {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// PlaceMines draws count unique mine positions from the board's random
// source. The first revealed tile is never mined and its neighbours are kept
// clear as long as the board has room for count mines elsewhere. It may be
// called once per board.
func (m *Map) PlaceMines(count int, first core.Point) (Mines, error) {
	if m.placed {
		return nil, ErrMinesPlaced
	}
	if err := m.check(first.X, first.Y); err != nil {
		return nil, err
	}
	total := m.tiles.W * m.tiles.H
	if count < 0 || count > total-1 {
		return nil, fmt.Errorf("%w: %d mines on %d tiles", ErrTooManyMines, count, total)
	}

	near := func(p core.Point) bool {
		return abs(p.X-first.X) <= 1 && abs(p.Y-first.Y) <= 1
	}
	candidates := make([]core.Point, 0, total)
	for y := 0; y < m.tiles.H; y++ {
		for x := 0; x < m.tiles.W; x++ {
			if p := core.Pt(x, y); !near(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) < count {
		m.tiles.Neighbors(first.X, first.Y, func(x, y int) {
			candidates = append(candidates, core.Pt(x, y))
		})
	}

	m.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	mines := make(Mines, count)
	copy(mines, candidates[:count])
	m.placed = true

	Log.WithFields(logrus.Fields{
		"seed":  m.seed,
		"first": first,
		"count": count,
	}).Debug("placed mines")
	return mines, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
