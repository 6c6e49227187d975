package components

import (
	"github.com/automoto/jasmine/shared/clock"
	"github.com/yohamta/donburi"
)

// ClockData is the world's time source and per-frame physics timer
// (singleton component).
type ClockData struct {
	Source  clock.Source
	Physics clock.Timer
	Elapsed uint32 // ms covered by the current frame
}

var Clock = donburi.NewComponentType[ClockData]()
