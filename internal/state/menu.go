package state

import (
	"fmt"

	"minefield/internal/audio"
	"minefield/internal/core"
	"minefield/internal/minefield"
	"minefield/internal/render"

	"github.com/sirupsen/logrus"
)

// Initial is the screen the machine boots with. It hands over to the main
// menu on its first update.
type Initial struct {
	setup Setup
}

func NewInitial(setup Setup) Initial { return Initial{setup: setup} }

func (Initial) Kind() Kind              { return KindInitial }
func (Initial) Draw(render.Surface)     {}
func (i Initial) Update(Env) Transition { return Replace(NewMainMenu(i.setup, 0)) }

// MainMenu waits for the PLAY button. Round counts the games started from
// this session and selects the next board's seed.
type MainMenu struct {
	setup Setup
	round int
}

func NewMainMenu(setup Setup, round int) MainMenu {
	return MainMenu{setup: setup, round: round}
}

func (MainMenu) Kind() Kind { return KindMainMenu }

// Setup returns the game parameters the menu starts games with.
func (m MainMenu) Setup() Setup { return m.setup }

// Round returns the number of games played before this menu.
func (m MainMenu) Round() int { return m.round }

// next is the menu shown after the current round ends.
func (m MainMenu) next() MainMenu { return NewMainMenu(m.setup, m.round+1) }

var (
	menuTitle = core.Rect{X: 0, Y: 32, W: render.ScreenWidth, H: render.LineHeight}
	menuHelp  = []string{"LEFT: reveal", "RIGHT: flag"}
)

func (m MainMenu) Draw(s render.Surface) {
	s.SetDrawColors(titleColors)
	const title = "MINEFIELD"
	s.Text(title, centered(menuTitle, title), menuTitle.Y)
	s.HLine(centered(menuTitle, title), menuTitle.Y+render.LineHeight+1, render.TextWidth(title))

	playButton.draw(s)

	s.SetDrawColors(textColors)
	y := footer.Y - 2*render.LineHeight
	for _, l := range menuHelp {
		s.Text(l, centered(footer, l), y)
		y += render.LineHeight
	}
	if m.round > 0 {
		played := fmt.Sprintf("Games:%d", m.round)
		s.Text(played, centered(footer, played), footer.Y+render.LineHeight)
	}
}

func (m MainMenu) Update(env Env) Transition {
	if !playButton.clicked(env.Pointer) {
		return Replace(m)
	}
	env.play(audio.CueClick)
	pre, err := NewPreGame(m)
	if err != nil {
		Log.WithError(err).Error("cannot build board")
		return Replace(m)
	}
	return Replace(pre)
}

// PreGame shows a covered board with no mines. The first reveal places the
// mines around it and starts the game.
type PreGame struct {
	field *minefield.Map
	menu  MainMenu
}

// NewPreGame builds the empty board of the menu's current round.
func NewPreGame(menu MainMenu) (PreGame, error) {
	setup := menu.setup
	field, err := minefield.FromRandomSeed(setup.seedFor(menu.round), setup.Width, setup.Height, setup.Offset)
	if err != nil {
		return PreGame{}, fmt.Errorf("pre game: %w", err)
	}
	return PreGame{field: field, menu: menu}, nil
}

func (PreGame) Kind() Kind { return KindPreGame }

// Field returns the board. It has no mines until the game starts.
func (p PreGame) Field() *minefield.Map { return p.field }

func (p PreGame) Draw(s render.Surface) {
	p.field.Draw(s, nil)
	drawHUD(s, p.field.RemainingMines(MineCount), 0)
	s.SetDrawColors(textColors)
	s.Text("Pick a tile", statusX, statusY)
}

func (p PreGame) Update(env Env) Transition {
	ptr := env.Pointer
	if ptr.LeftClicked() {
		if x, y, ok := p.field.TileAt(ptr.Coordinates()); ok {
			if t, _ := p.field.Tile(x, y); !t.Flagged {
				return p.start(env, core.Pt(x, y))
			}
		}
	}
	if ptr.RightClicked() && p.field.HandleRightClick(ptr.Coordinates()) {
		env.play(audio.CueFlag)
	}
	return Replace(p)
}

// start places the mines clear of first and lets the new game handle the
// click that started it.
func (p PreGame) start(env Env, first core.Point) Transition {
	mines, err := p.field.PlaceMines(MineCount, first)
	if err != nil {
		Log.WithError(err).Error("cannot place mines")
		return Replace(p.menu)
	}
	Log.WithFields(logrus.Fields{
		"seed":  p.field.Seed(),
		"round": p.menu.round,
		"first": first,
	}).Info("game started")
	return NewInGame(p.field, mines, p.menu).Update(env)
}
