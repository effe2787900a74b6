package app

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"minefield/internal/audio"
	"minefield/internal/core"
	"minefield/internal/state"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaultsMatchDefaultSetup(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, state.DefaultSetup(), cfg.Setup())
}

func TestConfigSoundDefaultsToBuild(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, audio.Available, cfg.Sound)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-sound"}))
	assert.True(t, cfg.Sound)
}

func TestConfigHidesCursorOnlyWithCrosshair(t *testing.T) {
	cfg := NewConfig()
	assert.True(t, cfg.HideCursor())

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-crosshair=false"}))
	assert.False(t, cfg.HideCursor())
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{
		"-seed", "12", "-width", "9", "-height", "7", "-tps", "30",
		"-sound=false", "-debug", "-log", "mf.log",
	}))

	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(12), cfg.Seed)
	assert.False(t, cfg.Sound)
	assert.True(t, cfg.Crosshair)
	assert.Equal(t, "mf.log", cfg.LogFile)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel())

	setup := cfg.Setup()
	assert.Equal(t, 9, setup.Width)
	assert.Equal(t, 7, setup.Height)
	assert.Equal(t, 30, setup.TPS)
	assert.Equal(t, core.Pt(0, 20), setup.Offset)
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"narrow":    func(c *Config) { c.Width = 1 },
		"wide":      func(c *Config) { c.Width = MaxWidth + 1 },
		"tall":      func(c *Config) { c.Height = MaxHeight + 1 },
		"too small": func(c *Config) { c.Width, c.Height = 2, 2 },
		"scale":     func(c *Config) { c.Scale = 0 },
		"tps":       func(c *Config) { c.TPS = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	defer func() {
		for _, l := range Loggers() {
			l.SetLevel(logrus.InfoLevel)
			l.SetOutput(io.Discard)
		}
	}()
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.Debug = true
	ConfigureLogging(cfg, &buf, false)

	state.Log.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.NotContains(t, buf.String(), "\x1b[")
}
