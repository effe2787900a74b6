//go:build audio

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Available reports whether this build can open an output device.
const Available = true

// Speaker plays cues on the default output device.
type Speaker struct {
	cfg Config
}

// NewSpeaker initializes the output device with a 100ms buffer.
func NewSpeaker(cfg Config) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{cfg: cfg}, nil
}

// Play queues the sound for c on the speaker mixer.
func (s *Speaker) Play(c Cue) {
	speaker.Play(Synthesize(c, s.cfg))
}

// Close releases the output device.
func (s *Speaker) Close() {
	speaker.Close()
}
