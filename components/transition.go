package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransitionData is the black fade drawn over a freshly entered level
// (singleton component).
type TransitionData struct {
	Tween  *gween.Tween
	Alpha  float32 // 0..255
	Active bool
}

var Transition = donburi.NewComponentType[TransitionData]()
