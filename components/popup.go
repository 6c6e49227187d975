package components

import (
	"strconv"

	cfg "github.com/automoto/jasmine/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DamagePopup is the floating number drawn above a hit actor.
type DamagePopup struct {
	Text     string
	Scale    float64
	Rotation float64 // degrees
	Alpha    int

	fade *gween.Tween
}

// Rise is how far above the actor the popup has drifted, in pixels.
func (p *DamagePopup) Rise() int {
	return (255 - p.Alpha) / cfg.Combat.PopupRise
}

// AddPopup shows amount above the actor. Bigger hits draw bigger.
func (a *ActorData) AddPopup(amount int, rotation float64) {
	scale := float64(amount) / 100 * 2
	scale = max(cfg.Combat.PopupMinScale, min(cfg.Combat.PopupMaxScale, scale))

	frames := float32(255) / float32(cfg.Combat.PopupFade)
	a.Popups = append(a.Popups, DamagePopup{
		Text:     strconv.Itoa(amount),
		Scale:    scale,
		Rotation: rotation,
		Alpha:    255,
		fade:     gween.New(255, 0, frames, ease.Linear),
	})
}

// UpdatePopups fades every popup by one frame and drops the invisible ones.
func (a *ActorData) UpdatePopups() {
	kept := a.Popups[:0]
	for _, p := range a.Popups {
		if p.Alpha <= 0 {
			continue
		}
		v, done := p.fade.Update(1)
		p.Alpha = max(0, int(v+0.5))
		if done {
			p.Alpha = 0
		}
		kept = append(kept, p)
	}
	a.Popups = kept
}
