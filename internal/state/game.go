package state

import (
	"fmt"

	"minefield/internal/audio"
	"minefield/internal/core"
	"minefield/internal/minefield"
	"minefield/internal/render"

	"github.com/sirupsen/logrus"
)

// InGame is a running game: the board, its mines and the play timer.
type InGame struct {
	field *minefield.Map
	mines minefield.Mines
	timer core.Timer
	menu  MainMenu
}

// NewInGame starts a game on field with the given mines. menu is where the
// player returns once the game is decided.
func NewInGame(field *minefield.Map, mines minefield.Mines, menu MainMenu) InGame {
	return InGame{field: field, mines: mines, timer: core.NewTimer(), menu: menu}
}

func (InGame) Kind() Kind { return KindInGame }

func (g InGame) Field() *minefield.Map  { return g.field }
func (g InGame) Mines() minefield.Mines { return g.mines }
func (g InGame) Timer() core.Timer      { return g.timer }

// Seconds is the elapsed play time shown in the status bar.
func (g InGame) Seconds() int { return g.timer.Seconds(g.menu.setup.TPS) }

// Lost reports whether a mine has been uncovered.
func (g InGame) Lost() bool { return g.field.HasSteppedOnMine(g.mines) }

// Won reports whether every safe tile is uncovered. Flags do not matter.
func (g InGame) Won() bool {
	safe := g.field.Size().Area() - len(g.mines)
	return !g.Lost() && g.field.CountUncoveredTiles() == safe
}

// Over reports whether the game is decided.
func (g InGame) Over() bool { return g.Lost() || g.Won() }

func (g InGame) Draw(s render.Surface) {
	g.field.Draw(s, g.mines)
	drawHUD(s, g.field.RemainingMines(len(g.mines)), g.Seconds())
	s.SetDrawColors(textColors)
	switch {
	case g.Lost():
		s.Text("GAME OVER!!!", statusX, statusY)
	case g.Won():
		s.Text("GAME WON!!!", statusX, statusY)
	default:
		pauseButton.draw(s)
	}
}

func (g InGame) Update(env Env) Transition {
	if g.Lost() {
		g.timer.Stop()
		return Replace(NewGameOver(g))
	}
	if g.Won() {
		g.timer.Stop()
		return Replace(NewGameWon(g))
	}

	ptr := env.Pointer
	if ptr.LeftClicked() {
		x, y := ptr.Coordinates()
		if pauseButton.Contains(x, y) {
			env.play(audio.CueClick)
			return Push(g, Pause{})
		}
		switch g.field.HandleLeftClick(x, y, g.mines) {
		case minefield.Revealed:
			env.play(audio.CueReveal)
		case minefield.Detonated:
			env.play(audio.CueDetonate)
		}
	}
	if ptr.RightClicked() && g.field.HandleRightClick(ptr.Coordinates()) {
		env.play(audio.CueFlag)
	}

	switch {
	case g.Lost():
		g.timer.Stop()
		g.logEnd("game lost")
	case g.Won():
		g.timer.Stop()
		env.play(audio.CueWin)
		g.logEnd("game won")
	case g.field.HasStarted():
		if !g.timer.Running() {
			g.timer.Start()
		}
		g.timer.Update()
	}
	return Replace(g)
}

func (g InGame) logEnd(msg string) {
	Log.WithFields(logrus.Fields{
		"seed":    g.field.Seed(),
		"seconds": g.Seconds(),
		"flags":   g.field.CountFlaggedTiles(),
	}).Info(msg)
}

// Pause covers the game until the player clicks.
type Pause struct{}

var pausePanel = core.Rect{X: 32, Y: 56, W: 96, H: 32}

func (Pause) Kind() Kind { return KindPause }

func (Pause) Draw(s render.Surface) {
	drawPanel(s, pausePanel, "PAUSED", "click to resume")
}

func (p Pause) Update(env Env) Transition {
	if env.Pointer.LeftClicked() {
		env.play(audio.CueClick)
		return Pop()
	}
	return Replace(p)
}

// GameOver shows the lost board until the player clicks.
type GameOver struct {
	game InGame
}

func NewGameOver(g InGame) GameOver { return GameOver{game: g} }

func (GameOver) Kind() Kind { return KindGameOver }

// Game returns the finished game.
func (o GameOver) Game() InGame { return o.game }

func (o GameOver) Draw(s render.Surface) {
	o.game.Draw(s)
	drawPanel(s, footer, fmt.Sprintf("BOOM after %ds", o.game.Seconds()), "click for menu")
}

func (o GameOver) Update(env Env) Transition {
	return finish(o, o.game, env)
}

// GameWon shows the cleared board until the player clicks.
type GameWon struct {
	game InGame
}

func NewGameWon(g InGame) GameWon { return GameWon{game: g} }

func (GameWon) Kind() Kind { return KindGameWon }

// Game returns the finished game.
func (w GameWon) Game() InGame { return w.game }

func (w GameWon) Draw(s render.Surface) {
	w.game.Draw(s)
	drawPanel(s, footer, fmt.Sprintf("Cleared in %ds", w.game.Seconds()), "click for menu")
}

func (w GameWon) Update(env Env) Transition {
	return finish(w, w.game, env)
}

func finish(self State, g InGame, env Env) Transition {
	if !env.Pointer.LeftClicked() {
		return Replace(self)
	}
	env.play(audio.CueClick)
	return Replace(g.menu.next())
}
