package clock

import "time"

// Timer measures elapsed milliseconds with start/stop/pause/resume semantics.
// The zero value is a stopped timer reading the Real source.
type Timer struct {
	Clock Source

	startedAt time.Time
	pausedFor time.Duration // elapsed time frozen at pause
	started   bool
	paused    bool
}

// NewTimer returns a stopped timer reading src.
func NewTimer(src Source) Timer {
	return Timer{Clock: src}
}

func (t *Timer) now() time.Time {
	if t.Clock == nil {
		return Real.Now()
	}
	return t.Clock.Now()
}

// Start resets elapsed time to zero and marks the timer running.
func (t *Timer) Start() {
	t.started = true
	t.paused = false
	t.startedAt = t.now()
	t.pausedFor = 0
}

// Stop halts the timer and resets it.
func (t *Timer) Stop() {
	t.started = false
	t.paused = false
	t.startedAt = time.Time{}
	t.pausedFor = 0
}

// Pause freezes the elapsed time. No-op unless running and not paused.
func (t *Timer) Pause() {
	if !t.started || t.paused {
		return
	}
	t.paused = true
	t.pausedFor = t.now().Sub(t.startedAt)
}

// Resume continues from the frozen elapsed time. No-op unless paused.
func (t *Timer) Resume() {
	if !t.started || !t.paused {
		return
	}
	t.paused = false
	t.startedAt = t.now().Add(-t.pausedFor)
	t.pausedFor = 0
}

// Ticks returns the elapsed milliseconds since Start minus time spent
// paused. A stopped timer reads 0.
func (t *Timer) Ticks() uint32 {
	if !t.started {
		return 0
	}
	if t.paused {
		return uint32(t.pausedFor.Milliseconds())
	}
	d := t.now().Sub(t.startedAt)
	if d < 0 {
		return 0
	}
	return uint32(d.Milliseconds())
}

func (t *Timer) Started() bool { return t.started }

func (t *Timer) Paused() bool { return t.started && t.paused }
