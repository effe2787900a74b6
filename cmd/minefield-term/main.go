package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"

	"minefield/internal/app"
	"minefield/internal/audio"
	"minefield/internal/state"
	"minefield/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// The terminal belongs to the game, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	app.ConfigureLogging(cfg, out, false)

	var sound audio.Player = audio.Mute{}
	if cfg.Sound {
		sp, err := audio.NewSpeaker(audio.DefaultConfig())
		if err != nil {
			state.Log.WithError(err).Warn("sound disabled")
		} else {
			defer sp.Close()
			sound = sp
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	session := app.NewSession(cfg.Setup(), sound, cfg.Crosshair)
	host := tui.NewHost(screen, session, cfg.TPS, state.Log)
	err = host.Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
