package app

import (
	"errors"
	"flag"
	"fmt"

	"minefield/internal/audio"
	"minefield/internal/render"
	"minefield/internal/state"

	"github.com/sirupsen/logrus"
)

// Board limits keep the board and its status bar on the logical screen.
const (
	MinSide   = 2
	MaxWidth  = render.ScreenWidth / render.TileSize
	MaxHeight = 14
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the command-line parameters for the application.
type Config struct {
	Seed      int64
	Width     int
	Height    int
	Scale     int
	TPS       int
	Sound     bool
	Crosshair bool
	Debug     bool
	LogFile   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 16, Height: 14, Scale: 4, TPS: 60, Sound: audio.Available, Crosshair: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed of the first board")
	fs.IntVar(&c.Width, "width", c.Width, "board width in tiles")
	fs.IntVar(&c.Height, "height", c.Height, "board height in tiles")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound effects (builds with the audio tag)")
	fs.BoolVar(&c.Crosshair, "crosshair", c.Crosshair, "draw a crosshair at the pointer")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log state transitions")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
}

// Validate checks that the parameters describe a playable board.
func (c *Config) Validate() error {
	switch {
	case c.Width < MinSide || c.Width > MaxWidth:
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalidConfig, c.Width, MinSide, MaxWidth)
	case c.Height < MinSide || c.Height > MaxHeight:
		return fmt.Errorf("%w: height %d not in [%d, %d]", ErrInvalidConfig, c.Height, MinSide, MaxHeight)
	case c.Width*c.Height <= state.MineCount:
		return fmt.Errorf("%w: %dx%d board cannot hold %d mines", ErrInvalidConfig, c.Width, c.Height, state.MineCount)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	case c.TPS < 1:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// Setup converts the configuration into game parameters.
func (c *Config) Setup() state.Setup {
	s := state.DefaultSetup()
	s.Seed = c.Seed
	s.Width, s.Height = c.Width, c.Height
	s.TPS = c.TPS
	return s
}

// HideCursor reports whether the host should hide the system pointer. Only
// the crosshair replaces it.
func (c *Config) HideCursor() bool { return c.Crosshair }

// LogLevel is Debug with -debug and Info otherwise.
func (c *Config) LogLevel() logrus.Level {
	if c.Debug {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}
