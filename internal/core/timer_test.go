package core

import "testing"

func TestTimerStartsStopped(t *testing.T) {
	timer := NewTimer()
	timer.Update()
	if timer.Get() != 0 || timer.Running() {
		t.Fatalf("new timer advanced: ticks=%d running=%v", timer.Get(), timer.Running())
	}
}

func TestTimerCountsWhileRunning(t *testing.T) {
	timer := NewTimer()
	timer.Start()
	for i := 0; i < 130; i++ {
		timer.Update()
	}
	timer.Stop()
	timer.Update()

	if timer.Get() != 130 {
		t.Fatalf("ticks=%d, expected 130", timer.Get())
	}
	if got := timer.Seconds(60); got != 2 {
		t.Fatalf("seconds=%d, expected 2", got)
	}
}
