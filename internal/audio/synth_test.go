package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestSynthesizeLengthMatchesDuration(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	for _, c := range []Cue{CueClick, CueReveal, CueFlag, CueDetonate, CueWin} {
		samples := drain(t, Synthesize(c, cfg))
		want := 0
		if c == CueWin {
			for _, n := range cueNotes[c] {
				want += rate.N(n.dur)
			}
		} else {
			want = rate.N(Duration(c))
		}
		assert.Equal(t, want, len(samples), "cue %v", c)
	}
}

func TestSynthesizeSamplesBounded(t *testing.T) {
	cfg := Config{SampleRate: 22050, Volume: 1}
	for _, c := range []Cue{CueReveal, CueDetonate, CueWin} {
		for i, s := range drain(t, Synthesize(c, cfg)) {
			require.LessOrEqual(t, s[0], 1.0, "cue %v sample %d", c, i)
			require.GreaterOrEqual(t, s[0], -1.0, "cue %v sample %d", c, i)
		}
	}
}

func TestSynthesizeFadesOut(t *testing.T) {
	samples := drain(t, Synthesize(CueDetonate, Config{SampleRate: 8000, Volume: 1}))
	require.NotEmpty(t, samples)
	last := samples[len(samples)-1]
	assert.InDelta(t, 0, last[0], 0.01)
}

func TestSilentVolume(t *testing.T) {
	for _, s := range drain(t, Synthesize(CueFlag, Config{SampleRate: 8000, Volume: 0})) {
		require.Zero(t, s[0])
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 480*time.Millisecond, Duration(CueWin))
	assert.Equal(t, detonateDuration, Duration(CueDetonate))
	assert.Zero(t, Duration(Cue(99)))
	assert.Equal(t, "detonate", CueDetonate.String())
}

func TestMuteAndStubSatisfyPlayer(t *testing.T) {
	var _ Player = Mute{}
	var _ Player = (*Speaker)(nil)
	Mute{}.Play(CueWin)
}
