// Package state implements the stackable screen machine of the game.
//
// Screens are small value types. The machine pops the top screen every
// frame and hands it to its own Update, which returns a Transition carrying
// the screen (or its successor) back. A screen therefore cannot stay mounted
// half-updated: whatever the transition does not return is dropped.
package state

import (
	"fmt"

	"minefield/internal/audio"
	"minefield/internal/core"
	"minefield/internal/input"
	"minefield/internal/render"
)

// MineCount is the number of mines on every board.
const MineCount = 5

// Kind tags the screen variants.
type Kind int

const (
	KindInitial Kind = iota
	KindMainMenu
	KindPreGame
	KindInGame
	KindPause
	KindGameOver
	KindGameWon
)

func (k Kind) String() string {
	switch k {
	case KindInitial:
		return "initial"
	case KindMainMenu:
		return "main_menu"
	case KindPreGame:
		return "pre_game"
	case KindInGame:
		return "in_game"
	case KindPause:
		return "pause"
	case KindGameOver:
		return "game_over"
	case KindGameWon:
		return "game_won"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// State is one screen. Draw must not mutate the screen; Update consumes it
// and returns what the stack should hold next.
type State interface {
	Kind() Kind
	Draw(s render.Surface)
	Update(env Env) Transition
}

// Env is what a screen may consume during Update.
type Env struct {
	Pointer input.Pointer
	// Sound may be nil.
	Sound audio.Player
}

func (e Env) play(c audio.Cue) {
	if e.Sound != nil {
		e.Sound.Play(c)
	}
}

// Setup holds the parameters every new game is built from.
type Setup struct {
	Seed   int64
	Width  int
	Height int
	// Offset is the pixel position of the top-left tile.
	Offset core.Point
	// TPS converts timer ticks to seconds for display.
	TPS int
}

// DefaultSetup is a 16x14 board below a 20 pixel status bar.
func DefaultSetup() Setup {
	return Setup{Width: 16, Height: 14, Offset: core.Pt(0, 20), TPS: 60}
}

// seedFor derives the seed of the given round so that every game differs
// while a session stays reproducible.
func (s Setup) seedFor(round int) int64 {
	return s.Seed + int64(round)
}
