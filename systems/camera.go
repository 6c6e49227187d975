package systems

import (
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the view on the player and keeps it inside the map.
func UpdateCamera(e *ecs.ECS) {
	camera := GetOrCreateCamera(e)

	playerEntry, ok := PlayerEntry(e)
	if !ok {
		return
	}
	cx, cy := components.Actor.Get(playerEntry).Center()

	camera.X = int(cx) - camera.W/2
	camera.Y = int(cy) - camera.H/2
	clampCamera(camera, cfg.Map.PixelWidth(), cfg.Map.PixelHeight())
}

// clampCamera keeps the camera rectangle within a mapW x mapH map. A map
// smaller than the camera pins it to the origin.
func clampCamera(camera *components.CameraData, mapW, mapH int) {
	camera.X = min(max(camera.X, 0), max(mapW-camera.W, 0))
	camera.Y = min(max(camera.Y, 0), max(mapH-camera.H, 0))
}

// GetOrCreateCamera returns the singleton camera, sized to the screen.
func GetOrCreateCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = factory.CreateCamera(e)
	}
	return components.Camera.Get(entry)
}
