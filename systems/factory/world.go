package factory

import (
	"io/fs"

	"github.com/automoto/jasmine/archetypes"
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock installs the world's time source. Every timer created
// afterwards reads from src.
func CreateClock(ecs *ecs.ECS, src clock.Source) *donburi.Entry {
	entry := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(entry, components.ClockData{
		Source:  src,
		Physics: clock.NewTimer(src),
	})
	return entry
}

// CreateGrid allocates an empty map of the configured size.
func CreateGrid(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Grid.Spawn(ecs)
	components.Grid.SetValue(entry, components.NewGridData(cfg.Map.Rows, cfg.Map.Cols))
	return entry
}

// CreateLevel records where level documents are read from.
func CreateLevel(ecs *ecs.ECS, source fs.FS) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Source: source})
	return entry
}
