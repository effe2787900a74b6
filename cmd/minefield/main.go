//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"minefield/internal/app"
	"minefield/internal/audio"
	"minefield/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
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
	app.ConfigureLogging(cfg, os.Stderr, true)

	var sound audio.Player = audio.Mute{}
	if cfg.Sound {
		sp, err := audio.NewSpeaker(audio.DefaultConfig())
		if err != nil {
			log.WithError(err).Warn("sound disabled")
		} else {
			defer sp.Close()
			sound = sp
		}
	}

	game := app.New(app.NewSession(cfg.Setup(), sound, cfg.Crosshair))

	ebiten.SetWindowTitle("minefield")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(render.ScreenWidth*cfg.Scale, render.ScreenHeight*cfg.Scale)
	if cfg.HideCursor() {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
