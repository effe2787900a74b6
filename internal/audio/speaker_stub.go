//go:build !audio

package audio

import "errors"

// Available reports whether this build can open an output device.
const Available = false

// ErrNoDevice is returned by NewSpeaker in builds without the audio tag.
var ErrNoDevice = errors.New("audio output requires building with the 'audio' tag")

// Speaker is a placeholder for builds without audio output.
type Speaker struct{}

// NewSpeaker always fails without the audio build tag.
func NewSpeaker(Config) (*Speaker, error) { return nil, ErrNoDevice }

// Play is a no-op placeholder.
func (s *Speaker) Play(Cue) {}

// Close is a no-op placeholder.
func (s *Speaker) Close() {}
