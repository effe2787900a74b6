// Package input provides the pointer device consumed by the game screens.
package input

// Pointer is the per-frame view of a pointing device. Coordinates share the
// logical pixel space of the draw surface. Clicks are edge triggered: each
// physical press is reported for exactly one frame, until Update.
type Pointer interface {
	Coordinates() (x, y int)
	LeftClicked() bool
	RightClicked() bool
	// Update clears the edge triggers. The frame driver calls it once per
	// frame after the screens have updated.
	Update()
}

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	buttonCount
)

// Mouse latches press edges fed by a host. Hosts that poll (ebiten) call
// Sample every frame; hosts that receive events (tcell) call MoveTo, Press
// and Release as events arrive. A press is latched until Update even when the
// button is released within the same frame.
type Mouse struct {
	x, y    int
	held    [buttonCount]bool
	clicked [buttonCount]bool
}

// NewMouse returns a mouse at the origin with no buttons held.
func NewMouse() *Mouse { return &Mouse{} }

func (m *Mouse) Coordinates() (int, int) { return m.x, m.y }
func (m *Mouse) LeftClicked() bool       { return m.clicked[ButtonLeft] }
func (m *Mouse) RightClicked() bool      { return m.clicked[ButtonRight] }

func (m *Mouse) Update() {
	for i := range m.clicked {
		m.clicked[i] = false
	}
}

// MoveTo sets the pointer position.
func (m *Mouse) MoveTo(x, y int) {
	m.x, m.y = x, y
}

// Press marks b as held and latches a click if it was not held already.
func (m *Mouse) Press(b Button) {
	if b >= buttonCount {
		return
	}
	if !m.held[b] {
		m.clicked[b] = true
	}
	m.held[b] = true
}

// Release marks b as no longer held.
func (m *Mouse) Release(b Button) {
	if b >= buttonCount {
		return
	}
	m.held[b] = false
}

// Sample records a complete device state.
func (m *Mouse) Sample(x, y int, left, right bool) {
	m.MoveTo(x, y)
	m.set(ButtonLeft, left)
	m.set(ButtonRight, right)
}

func (m *Mouse) set(b Button, down bool) {
	if down {
		m.Press(b)
		return
	}
	m.Release(b)
}

// Click is a convenience for scripted input: move, press and release.
func (m *Mouse) Click(b Button, x, y int) {
	m.MoveTo(x, y)
	m.Press(b)
	m.Release(b)
}
