package components

import "github.com/yohamta/donburi"

// OverlayData tracks the full-screen overlays that suspend play
// (singleton component).
type OverlayData struct {
	MenuVisible    bool
	ProfileVisible bool
}

// Paused reports whether an overlay is blocking gameplay.
func (o *OverlayData) Paused() bool {
	return o.MenuVisible || o.ProfileVisible
}

var Overlay = donburi.NewComponentType[OverlayData]()
