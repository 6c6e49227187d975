package systems

import (
	"image/color"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// StartTransition covers the screen in black and fades it out.
func StartTransition(e *ecs.ECS) {
	t := GetOrCreateTransition(e)
	t.Tween = gween.New(255, 0, cfg.Transition.Duration, ease.Linear)
	t.Alpha = 255
	t.Active = true
}

// UpdateTransition advances the fade by this frame's elapsed time.
func UpdateTransition(e *ecs.ECS) {
	t := GetOrCreateTransition(e)
	if !t.Active || t.Tween == nil {
		return
	}
	alpha, done := t.Tween.Update(float32(FrameTicks(e)) / 1000)
	t.Alpha = alpha
	if done {
		t.Alpha = 0
		t.Active = false
	}
}

func DrawTransition(e *ecs.ECS, screen *ebiten.Image) {
	t := GetOrCreateTransition(e)
	if !t.Active || t.Alpha <= 0 {
		return
	}
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, color.RGBA{A: uint8(t.Alpha)}, false)
}

// GetOrCreateTransition returns the singleton level fade.
func GetOrCreateTransition(e *ecs.ECS) *components.TransitionData {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Transition))
	}
	return components.Transition.Get(entry)
}
