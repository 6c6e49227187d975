package systems

import (
	"image/color"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box and each actor's attack range when
// range display is switched on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowRanges {
		return
	}
	cam := GetOrCreateCamera(e)
	view := cam.Rect()

	if space := spaceOf(e); space != nil {
		for _, obj := range space.Objects() {
			if obj.X+obj.W < float64(view.Min.X) || obj.X > float64(view.Max.X) ||
				obj.Y+obj.H < float64(view.Min.Y) || obj.Y > float64(view.Max.Y) {
				continue
			}
			c := color.RGBA{0, 255, 255, 255}
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			strokeRect(screen, float32(obj.X)-float32(cam.X), float32(obj.Y)-float32(cam.Y), float32(obj.W), float32(obj.H), c)
		}
	}

	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		r := attackRange(components.Actor.Get(entry))
		if !r.Overlaps(view) {
			return
		}
		strokeRect(screen, float32(r.Min.X-cam.X), float32(r.Min.Y-cam.Y), float32(r.Dx()), float32(r.Dy()), color.RGBA{255, 0, 0, 255})
	})
}

func strokeRect(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)
	vector.FillRect(screen, x, y+h-1, w, 1, c, false)
	vector.FillRect(screen, x, y, 1, h, c, false)
	vector.FillRect(screen, x+w-1, y, 1, h, c, false)
}
