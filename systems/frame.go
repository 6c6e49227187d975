package systems

import (
	"github.com/automoto/jasmine/components"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/automoto/jasmine/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrameTime measures the time covered by this frame and restarts the
// physics timer. It runs first, so every later system sees the same elapsed
// value.
func UpdateFrameTime(e *ecs.ECS) {
	c := GetOrCreateClock(e)
	c.Elapsed = c.Physics.Ticks()
	c.Physics.Start()
}

// FrameTicks is the elapsed milliseconds of the current frame.
func FrameTicks(e *ecs.ECS) uint32 {
	return GetOrCreateClock(e).Elapsed
}

// GetOrCreateClock returns the world clock. A world created without one
// runs on the process clock.
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = factory.CreateClock(e, clock.Real)
	}
	return components.Clock.Get(entry)
}

// ClockSource is the time source timers in this world should read.
func ClockSource(e *ecs.ECS) clock.Source {
	return GetOrCreateClock(e).Source
}
