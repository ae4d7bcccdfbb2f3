package component

import (
	"time"

	"github.com/yohamta/donburi"
)

// Timer is a repeating interval timer advanced by frame deltas. A single
// Tick may cross several interval boundaries; the timer catches up and
// reports finished once.
type Timer struct {
	interval time.Duration
	elapsed  time.Duration
	finished bool
}

// NewTimer returns a repeating timer with the given interval.
func NewTimer(interval time.Duration) Timer {
	return Timer{interval: interval}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) {
	t.finished = false
	if t.interval <= 0 {
		t.finished = true
		return
	}
	t.elapsed += dt
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		t.finished = true
	}
}

// JustFinished reports whether the interval elapsed during the last Tick.
func (t *Timer) JustFinished() bool {
	return t.finished
}

// Elapsed returns the time accumulated toward the next firing.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// TickTimerData carries the repeating one-second timer that paces the
// sprite-count log line.
type TickTimerData struct {
	Timer Timer
}

var TickTimer = donburi.NewComponentType[TickTimerData]()
