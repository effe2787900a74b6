package core

// Timer counts frames while running. It starts stopped at zero and only moves
// forward; there is no reset, a new game gets a new Timer.
type Timer struct {
	ticks   int
	running bool
}

// NewTimer returns a stopped timer at zero.
func NewTimer() Timer { return Timer{} }

// Start makes subsequent Update calls count.
func (t *Timer) Start() { t.running = true }

// Stop freezes the timer at its current value.
func (t *Timer) Stop() { t.running = false }

// Running reports whether Update advances the timer.
func (t Timer) Running() bool { return t.running }

// Update advances the timer by one tick if it is running.
func (t *Timer) Update() {
	if t.running {
		t.ticks++
	}
}

// Get returns the elapsed tick count.
func (t Timer) Get() int { return t.ticks }

// Seconds converts the tick count to whole seconds at the given tick rate.
func (t Timer) Seconds(tps int) int {
	if tps <= 0 {
		return t.ticks
	}
	return t.ticks / tps
}
