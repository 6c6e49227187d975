package clock

import (
	"sync"
	"time"
)

// Source supplies the current time. Timers only ever subtract two readings from
// the same Source, so time.Now's monotonic reading keeps them immune to
// wall-clock adjustments.
type Source interface {
	Now() time.Time
}

type realSource struct{}

func (realSource) Now() time.Time { return time.Now() }

// Real is the process clock.
var Real Source = realSource{}

// Manual is a Source that only moves when told to. Used by tests and by
// anything that needs to replay a session deterministically.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual creates a manual source starting at an arbitrary fixed instant.
func NewManual() *Manual {
	return &Manual{now: time.Unix(0, 0)}
}

func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the source forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// AdvanceMillis is Advance for the millisecond ticks the game works in.
func (m *Manual) AdvanceMillis(ms int) {
	m.Advance(time.Duration(ms) * time.Millisecond)
}
