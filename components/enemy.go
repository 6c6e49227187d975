package components

import "github.com/yohamta/donburi"

// EnemyData is the chase state of an aggressive actor.
type EnemyData struct {
	Path        []Cell
	Waypoint    int    // index into Path of the cell being walked to
	SinceReplan uint32 // ms since Path was computed
	Chasing     bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
