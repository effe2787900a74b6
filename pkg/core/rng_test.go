package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000), "draw %d", i)
	}
}

func TestRNGShuffleIsPermutation(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	NewRNG(3).Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	seen := map[int]bool{}
	for _, v := range values {
		seen[v] = true
	}
	assert.Len(t, seen, 10)
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	assert.Zero(t, r.IntN(0))
	assert.Zero(t, r.IntN(-4))
}
