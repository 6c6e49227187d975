package components

import (
	"io/fs"

	"github.com/yohamta/donburi"
)

// LevelData tracks which level is loaded and where levels come from
// (singleton component).
type LevelData struct {
	Source fs.FS
	Index  int
	// Pending is a level change requested mid-frame (+1 next, -1 previous),
	// applied once the actor loop has finished.
	Pending int
}

var Level = donburi.NewComponentType[LevelData]()
