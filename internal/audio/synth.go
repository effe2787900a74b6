package audio

import (
	"math"
	"time"

	pcore "minefield/pkg/core"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueClick:  {{freq: 1200, dur: 15 * time.Millisecond}},
	CueReveal: {{freq: 660, dur: 40 * time.Millisecond}},
	CueFlag:   {{freq: 440, dur: 60 * time.Millisecond}},
	CueWin: {
		{freq: 523.25, dur: 120 * time.Millisecond},
		{freq: 659.25, dur: 120 * time.Millisecond},
		{freq: 783.99, dur: 240 * time.Millisecond},
	},
}

const detonateDuration = 400 * time.Millisecond

// Duration returns the length of the sound for c.
func Duration(c Cue) time.Duration {
	if c == CueDetonate {
		return detonateDuration
	}
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

// Synthesize builds the streamer for c. The result is finite and reusable
// only once.
func Synthesize(c Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer
	if c == CueDetonate {
		s = fade(noise(rate.N(detonateDuration), pcore.NewRNG(int64(rate))), rate.N(detonateDuration))
	} else {
		notes := cueNotes[c]
		parts := make([]beep.Streamer, 0, len(notes))
		for _, n := range notes {
			parts = append(parts, tone(rate, n))
		}
		s = beep.Seq(parts...)
	}
	return volume(s, cfg.Volume)
}

func tone(rate beep.SampleRate, n note) beep.Streamer {
	samples := rate.N(n.dur)
	sine, err := generators.SineTone(rate, n.freq)
	if err != nil {
		return beep.Silence(samples)
	}
	return fade(beep.Take(samples, sine), samples)
}

// noise streams total samples of white noise.
func noise(total int, rng *pcore.RNG) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := min(len(samples), total-pos)
		for i := 0; i < n; i++ {
			v := rng.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		pos += n
		return n, true
	})
}

// fader ramps the wrapped stream linearly down to silence over total samples.
type fader struct {
	streamer beep.Streamer
	pos      int
	total    int
}

func fade(s beep.Streamer, total int) beep.Streamer {
	return &fader{streamer: s, total: total}
}

func (f *fader) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 0.0
		if f.total > 0 && f.pos < f.total {
			gain = float64(f.total-f.pos) / float64(f.total)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }

// volume applies a linear gain; zero or less is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
