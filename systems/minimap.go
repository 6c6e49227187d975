package systems

import (
	"image"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// minimapDot projects a map position onto the minimap of a screen width
// pixels wide. ok is false when the dot falls outside the inset.
func minimapDot(cam *components.CameraData, x, y, width int) (image.Point, bool) {
	m := cfg.Minimap
	p := image.Pt(
		width-m.OriginRight+(x-cam.X)/m.Scale,
		m.OriginY+(y-cam.Y)/m.Scale,
	)
	ok := p.X > width-m.ClipLeft && p.X < width-m.ClipRight &&
		p.Y > m.ClipTop && p.Y < m.ClipBottom
	return p, ok
}

// DrawMinimap marks every actor near the camera on the inset in the top
// right corner: the player in green, everyone else in red.
func DrawMinimap(e *ecs.ECS, screen *ebiten.Image) {
	m := cfg.Minimap
	cam := GetOrCreateCamera(e)
	width := screen.Bounds().Dx()

	vector.FillRect(screen,
		float32(width-m.ClipLeft), float32(m.ClipTop),
		float32(m.ClipLeft-m.ClipRight), float32(m.ClipBottom-m.ClipTop),
		m.FrameColor, false)

	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		p, ok := minimapDot(cam, int(actor.Position.X), int(actor.Position.Y), width)
		if !ok {
			return
		}
		c := m.OtherColor
		if entry.HasComponent(tags.Player) {
			c = m.PlayerColor
		}
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(m.DotSize), float32(m.DotSize), c, false)
	})
}
