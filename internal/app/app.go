//go:build ebiten

package app

import (
	"minefield/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	screen  *render.Screen
}

// New constructs a Game drawing session with the default palette.
func New(session *Session) *Game {
	return &Game{session: session, screen: render.NewScreen(render.DefaultPalette)}
}

// Update samples the mouse and advances the screens by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.session.Overlay().Toggle()
	}
	x, y := ebiten.CursorPosition()
	g.session.Mouse().Sample(x, y,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	g.session.Frame()
	return nil
}

// Draw renders the screen stack.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Begin(screen)
	g.session.Draw(g.screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenWidth, render.ScreenHeight
}
