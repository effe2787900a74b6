// Package audio turns game events into short synthesized sounds.
package audio

import "fmt"

// Cue names a game event with a sound.
type Cue int

const (
	CueClick Cue = iota
	CueReveal
	CueFlag
	CueDetonate
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CueReveal:
		return "reveal"
	case CueFlag:
		return "flag"
	case CueDetonate:
		return "detonate"
	case CueWin:
		return "win"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Player plays cues without blocking the frame.
type Player interface {
	Play(c Cue)
}

// Mute discards every cue.
type Mute struct{}

func (Mute) Play(Cue) {}

// Config controls synthesis.
type Config struct {
	SampleRate int
	// Volume is a linear gain in [0, 1].
	Volume float64
}

// DefaultConfig returns CD-rate audio at half volume.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, Volume: 0.5}
}
