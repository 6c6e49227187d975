package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// CameraData is the visible window onto the map, in map pixels.
type CameraData struct {
	X, Y int
	W, H int
}

// Rect returns the camera as a rectangle.
func (c *CameraData) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)
}

var Camera = donburi.NewComponentType[CameraData]()
