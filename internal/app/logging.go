package app

import (
	"io"

	"minefield/internal/minefield"
	"minefield/internal/state"

	"github.com/sirupsen/logrus"
)

// Loggers are the package loggers a binary configures at start-up.
func Loggers() []*logrus.Logger {
	return []*logrus.Logger{state.Log, minefield.Log}
}

// ConfigureLogging points every package logger at out with the configured
// level. Colors are for terminals only.
func ConfigureLogging(c *Config, out io.Writer, colors bool) {
	for _, l := range Loggers() {
		l.SetOutput(out)
		l.SetLevel(c.LogLevel())
		l.SetFormatter(&logrus.TextFormatter{
			ForceColors:   colors,
			DisableColors: !colors,
			FullTimestamp: true,
		})
	}
}
