package app

import (
	"strconv"
	"strings"

	"minefield/internal/audio"
	"minefield/internal/input"
	"minefield/internal/render"
	"minefield/internal/state"
	"minefield/internal/ui"
)

// crosshairColors draws the pointer in the darkest palette entry.
const crosshairColors render.DrawColors = 0x0004

// Session is the host-independent part of the game: the screen stack and the
// pointer it reads. Hosts feed the mouse, call Frame once per tick and Draw
// once per displayed frame.
type Session struct {
	machine   *state.Machine
	mouse     *input.Mouse
	sound     audio.Player
	overlay   *ui.Overlay
	crosshair bool
	setup     state.Setup
	frames    int
}

// NewSession boots a machine for setup. A nil sound plays nothing.
func NewSession(setup state.Setup, sound audio.Player, crosshair bool) *Session {
	if sound == nil {
		sound = audio.Mute{}
	}
	s := &Session{
		machine:   state.NewMachine(state.NewInitial(setup)),
		mouse:     input.NewMouse(),
		sound:     sound,
		crosshair: crosshair,
		setup:     setup,
	}
	s.overlay = ui.NewOverlay(s)
	return s
}

func (s *Session) Mouse() *input.Mouse     { return s.mouse }
func (s *Session) Machine() *state.Machine { return s.machine }
func (s *Session) Frames() int             { return s.frames }
func (s *Session) Overlay() *ui.Overlay    { return s.overlay }

// Frame updates the top screen and then clears the pointer's click edges.
func (s *Session) Frame() {
	s.machine.Update(state.Env{Pointer: s.mouse, Sound: s.sound})
	s.mouse.Update()
	s.frames++
}

// Draw paints the stack, the debug overlay and the pointer crosshair.
func (s *Session) Draw(dst render.Surface) {
	s.machine.Draw(dst)
	s.overlay.Draw(dst)
	if !s.crosshair {
		return
	}
	colors := dst.DrawColors()
	dst.SetDrawColors(crosshairColors)
	x, y := s.mouse.Coordinates()
	dst.VLine(x, y-1, 3)
	dst.HLine(x-1, y, 3)
	dst.SetDrawColors(colors)
}

// Parameters describes the session for the debug overlay.
func (s *Session) Parameters() ui.ParameterSnapshot {
	kinds := s.machine.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	snap := ui.ParameterSnapshot{Groups: []ui.ParameterGroup{{
		Name: "session",
		Params: []ui.Parameter{
			{Key: "frames", Value: strconv.Itoa(s.frames)},
			{Key: "stack", Value: strings.Join(names, ">")},
			{Key: "board", Value: strconv.Itoa(s.setup.Width) + "x" + strconv.Itoa(s.setup.Height)},
		},
	}}}
	if g, ok := s.machine.Game(); ok {
		snap.Groups = append(snap.Groups, ui.ParameterGroup{
			Name: "game",
			Params: []ui.Parameter{
				{Key: "seed", Value: strconv.FormatInt(g.Field().Seed(), 10)},
				{Key: "open", Value: strconv.Itoa(g.Field().CountUncoveredTiles())},
				{Key: "flags", Value: strconv.Itoa(g.Field().CountFlaggedTiles())},
				{Key: "ticks", Value: strconv.Itoa(g.Timer().Get())},
			},
		})
	}
	return snap
}
