package systems

import (
	"image"
	"math"
	"sort"

	"github.com/automoto/jasmine/assets"
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// visibleCells returns the cell range covered by the camera, one tile of
// padding included, clipped to the grid.
func visibleCells(grid *components.GridData, cam *components.CameraData) image.Rectangle {
	ts := cfg.Map.TileSize
	r := image.Rect(
		cam.X/ts-1, cam.Y/ts-1,
		(cam.X+cam.W)/ts+1, (cam.Y+cam.H)/ts+1,
	)
	return r.Intersect(image.Rect(0, 0, grid.Cols, grid.Rows))
}

// DrawTiles paints the three map layers, back to front, over the cells the
// camera can see.
func DrawTiles(e *ecs.ECS, screen *ebiten.Image) {
	grid := GetGrid(e)
	if grid == nil {
		return
	}
	cam := GetOrCreateCamera(e)
	cells := visibleCells(grid, cam)
	ts := cfg.Map.TileSize

	for _, layer := range []components.TileLayer{
		components.LayerBackground1,
		components.LayerBackground2,
		components.LayerForeground,
	} {
		for row := cells.Min.Y; row < cells.Max.Y; row++ {
			for col := cells.Min.X; col < cells.Max.X; col++ {
				img := assets.Tile(grid.At(row, col).Layer(layer))
				if img == nil {
					continue
				}
				drawOp.GeoM.Reset()
				drawOp.ColorScale.Reset()
				drawOp.GeoM.Translate(float64(col*ts-cam.X), float64(row*ts-cam.Y))
				screen.DrawImage(img, drawOp)
			}
		}
	}
}

// DrawActors paints every actor on screen, lower ones in front, followed by
// their damage popups.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	cam := GetOrCreateCamera(e)
	view := cam.Rect().Inset(-cfg.Character.Width)

	var visible []*components.ActorData
	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Actor) {
			return
		}
		actor := components.Actor.Get(entry)
		if actor.Bounds().Overlaps(view) {
			visible = append(visible, actor)
		}
	})
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Position.Y < visible[j].Position.Y
	})

	for _, actor := range visible {
		drawActor(screen, cam, actor)
	}
	for _, actor := range visible {
		drawPopups(screen, cam, actor)
	}
}

func drawActor(screen *ebiten.Image, cam *components.CameraData, actor *components.ActorData) {
	img := assets.CharacterFrame(actor.Sprite, actor.State, actor.Frame)
	if img == nil {
		return
	}

	x := actor.Position.X
	y := actor.Position.Y
	if actor.Jumping {
		y = actor.Position.Z
	}
	// Wide frames are centred on the regular sprite.
	if actor.State.IsWide() {
		x -= float64(cfg.Character.Width)
		y -= float64(cfg.Character.Height)
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x-float64(cam.X), y-float64(cam.Y))
	screen.DrawImage(img, drawOp)
}

func drawPopups(screen *ebiten.Image, cam *components.CameraData, actor *components.ActorData) {
	if len(actor.Popups) == 0 {
		return
	}
	face := fonts.Dialogue.Get()
	cx := actor.Position.X + float64(cfg.Character.Width)/2 - float64(cam.X)
	top := actor.Position.Y - float64(cam.Y)

	for i := range actor.Popups {
		p := &actor.Popups[i]
		if p.Alpha <= 0 {
			continue
		}
		bounds := text.BoundString(face, p.Text) //nolint:staticcheck // TODO: migrate to text/v2

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bounds.Dx())/2, 0)
		op.GeoM.Scale(p.Scale, p.Scale)
		op.GeoM.Rotate(p.Rotation * math.Pi / 180)
		op.GeoM.Translate(cx, top-float64(p.Rise()))
		op.ColorScale.ScaleWithColor(cfg.Combat.PopupColor)
		op.ColorScale.ScaleAlpha(float32(p.Alpha) / 255)
		text.DrawWithOptions(screen, p.Text, face, op) //nolint:staticcheck // TODO: migrate to text/v2
	}
}
