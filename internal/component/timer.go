package component

// timerEpsilon absorbs float drift from summing fixed steps (120 * 1/60 < 2.0).
const timerEpsilon = 1e-9

// Timer is a countdown advanced by the clock delta.
// Repeating timers carry the overshoot into the next period; one-shot timers
// stay finished until Reset.
type Timer struct {
	Duration  float64
	Elapsed   float64
	Repeating bool
	finished  bool
}

func NewTimer(duration float64, repeating bool) Timer {
	return Timer{Duration: duration, Repeating: repeating}
}

// Tick advances the timer and reports whether it fired during this call.
func (t *Timer) Tick(dt float64) bool {
	if t.finished && !t.Repeating {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed+timerEpsilon < t.Duration {
		return false
	}
	if t.Repeating {
		t.Elapsed -= t.Duration
		if t.Elapsed < 0 {
			t.Elapsed = 0
		}
		return true
	}
	t.Elapsed = t.Duration
	t.finished = true
	return true
}

// Reset re-arms the timer from zero.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
}
