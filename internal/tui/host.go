package tui

import (
	"context"
	"time"

	"minefield/internal/app"
	"minefield/internal/input"
	"minefield/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Host runs a session on a tcell screen. Terminal events are read on their
// own goroutine; everything else happens on the goroutine calling Run.
type Host struct {
	screen  tcell.Screen
	surface *Surface
	session *app.Session
	tps     int
	log     *logrus.Logger
}

// NewHost prepares screen for the game. The caller owns screen and must Fini
// it after Run returns.
func NewHost(screen tcell.Screen, session *app.Session, tps int, log *logrus.Logger) *Host {
	screen.EnableMouse()
	screen.HideCursor()
	if tps < 1 {
		tps = 1
	}
	return &Host{
		screen:  screen,
		surface: NewSurface(screen, render.DefaultPalette),
		session: session,
		tps:     tps,
		log:     log,
	}
}

// HandleEvent feeds one terminal event to the session. It returns false when
// the player asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyF1, ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
			h.session.Overlay().Toggle()
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		mouse := h.session.Mouse()
		mouse.MoveTo(PixelOf(col, row))
		buttons := ev.Buttons()
		setButton(mouse, input.ButtonLeft, buttons&tcell.ButtonPrimary != 0)
		setButton(mouse, input.ButtonRight, buttons&tcell.ButtonSecondary != 0)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func setButton(m *input.Mouse, b input.Button, down bool) {
	if down {
		m.Press(b)
		return
	}
	m.Release(b)
}

// Frame advances the session one tick and redraws.
func (h *Host) Frame() {
	h.session.Frame()
	h.Draw()
}

// Draw repaints the screen from the session.
func (h *Host) Draw() {
	h.surface.Clear()
	h.session.Draw(h.surface)
	h.screen.Show()
}

// Run ticks the session at the configured rate until ctx is done or the
// player quits.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.tps))
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			h.log.WithField("frames", h.session.Frames()).Debug("context done")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.HandleEvent(ev) {
				h.log.WithField("frames", h.session.Frames()).Debug("quit requested")
				return nil
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}
