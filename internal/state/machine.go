package state

import (
	"errors"
	"fmt"

	"minefield/internal/render"

	"github.com/sirupsen/logrus"
)

// Log receives transition and game lifecycle messages.
var Log = logrus.New()

var (
	// ErrEmptyStack is the panic value when the stack runs out of screens.
	ErrEmptyStack = errors.New("state machine stack is empty")
	// ErrNilState is the panic value when a transition carries no screen.
	ErrNilState = errors.New("transition carries a nil state")
)

// Machine is a stack of screens; index 0 is drawn first, the last entry is
// the only one updated.
type Machine struct {
	states []State
}

// NewMachine returns a machine holding initial.
func NewMachine(initial State) *Machine {
	m := &Machine{}
	m.push(initial)
	return m
}

// Update pops the top screen, updates it and applies the returned
// transition. It panics with ErrEmptyStack if the stack is, or would become,
// empty.
func (m *Machine) Update(env Env) {
	n := len(m.states)
	if n == 0 {
		panic(ErrEmptyStack)
	}
	top := m.states[n-1]
	m.states[n-1] = nil
	m.states = m.states[:n-1]

	t := top.Update(env)
	switch t.kind {
	case transitionReplace:
		m.push(t.next)
		if t.next.Kind() != top.Kind() {
			Log.WithFields(logrus.Fields{
				"from": top.Kind(),
				"to":   t.next.Kind(),
			}).Debug("replacing state")
		}
	case transitionPush:
		m.push(t.old)
		m.push(t.next)
		Log.WithFields(logrus.Fields{
			"state": t.next.Kind(),
			"depth": len(m.states),
		}).Debug("pushing state")
	case transitionPop:
		if len(m.states) == 0 {
			panic(fmt.Errorf("%w: popped %s", ErrEmptyStack, top.Kind()))
		}
		Log.WithFields(logrus.Fields{
			"popped": top.Kind(),
			"state":  m.Top().Kind(),
			"depth":  len(m.states),
		}).Debug("popping state")
	}
}

func (m *Machine) push(s State) {
	if s == nil {
		panic(ErrNilState)
	}
	m.states = append(m.states, s)
}

// Draw paints the whole stack bottom to top. Each screen starts from the
// draw colors the previous one was given, not the ones it left behind.
func (m *Machine) Draw(s render.Surface) {
	for _, st := range m.states {
		colors := s.DrawColors()
		st.Draw(s)
		s.SetDrawColors(colors)
	}
}

// Top returns the active screen, or nil if the stack is empty.
func (m *Machine) Top() State {
	if len(m.states) == 0 {
		return nil
	}
	return m.states[len(m.states)-1]
}

// Len returns the stack depth.
func (m *Machine) Len() int { return len(m.states) }

// Kinds lists the stack bottom to top.
func (m *Machine) Kinds() []Kind {
	kinds := make([]Kind, len(m.states))
	for i, st := range m.states {
		kinds[i] = st.Kind()
	}
	return kinds
}

// Game returns the topmost game on the stack, including one shown by a
// result screen.
func (m *Machine) Game() (InGame, bool) {
	for i := len(m.states) - 1; i >= 0; i-- {
		switch st := m.states[i].(type) {
		case InGame:
			return st, true
		case GameOver:
			return st.game, true
		case GameWon:
			return st.game, true
		}
	}
	return InGame{}, false
}
