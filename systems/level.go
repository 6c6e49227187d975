package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/leveldata"
	"github.com/automoto/jasmine/systems/factory"
	"github.com/automoto/jasmine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrNoLevelSource is returned when levels are loaded before a source is set.
var ErrNoLevelSource = errors.New("no level source")

type decodedLayer struct {
	layer components.TileLayer
	ids   [][]int
}

// LoadLevel replaces the map with the given level and respawns its actors.
// The document is decoded in full first, so a failing load leaves the current
// level in place.
func LoadLevel(e *ecs.ECS, level int) error {
	lvl := GetOrCreateLevel(e)
	if lvl.Source == nil {
		return fmt.Errorf("load level %d: %w", level, ErrNoLevelSource)
	}

	doc, err := leveldata.Load(lvl.Source, level)
	if err != nil {
		return fmt.Errorf("load level %d: %w", level, err)
	}

	grid := GetOrCreateGrid(e)

	var layers []decodedLayer
	for i := range doc.Layers {
		l := &doc.Layers[i]
		if l.Kind != leveldata.DataLayer {
			continue
		}
		ids, err := l.Grid(grid.Rows, grid.Cols)
		if err != nil {
			return fmt.Errorf("load level %d: %w", level, err)
		}
		layers = append(layers, decodedLayer{layer: tileLayerFor(l.Name), ids: ids})
	}

	if notice, ok := cfg.EnterLevelNotice(level); ok {
		PlayNotice(e, notice)
	}

	for _, d := range layers {
		for r, row := range d.ids {
			for c, id := range row {
				grid.At(r, c).SetLayer(d.layer, id)
			}
		}
	}

	for i := range doc.Layers {
		if doc.Layers[i].Kind == leveldata.ObjectLayer {
			spawnObjects(e, doc.Layers[i].Objects)
		}
	}

	grid.Level = level
	lvl.Index = level
	StartTransition(e)
	return nil
}

func tileLayerFor(name string) components.TileLayer {
	switch name {
	case "bg_1":
		return components.LayerBackground1
	case "fg":
		return components.LayerForeground
	default:
		return components.LayerBackground2
	}
}

// spawnObjects clears every actor but the player and places the layer's
// objects. Each sprite is centred one character height above its object's
// point.
func spawnObjects(e *ecs.ECS, objects []leveldata.Object) {
	var stale []*donburi.Entry
	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(tags.Player) {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		DestroyActor(e, entry)
	}

	src := ClockSource(e)
	for _, o := range objects {
		sprite := cfg.ParseSprite(o.Type)

		var entry *donburi.Entry
		switch o.Name {
		case "Enemy":
			entry = factory.CreateEnemy(e, 0, 0, sprite, src)
		case "NPC":
			entry = factory.CreateNPC(e, 0, 0, sprite, src)
		case "Player":
			player, ok := PlayerEntry(e)
			if !ok {
				player = factory.CreatePlayer(e, 0, 0, sprite, src)
			}
			components.Actor.Get(player).Sprite = sprite
			entry = player
		default:
			continue
		}
		placeObject(entry, o.X, o.Y-cfg.Character.Height)
	}
}

// placeObject centres the actor's sprite on (x, y) and moves its box along.
func placeObject(entry *donburi.Entry, x, y int) {
	actor := components.Actor.Get(entry)
	actor.SetPosition(x, y)
	if entry.HasComponent(components.Object) {
		components.Object.Get(entry).Follow(actor)
	}
}

// GoToNextLevel loads the level after the current one.
func GoToNextLevel(e *ecs.ECS) {
	changeLevel(e, 1)
}

// GoToPrevLevel loads the level before the current one.
func GoToPrevLevel(e *ecs.ECS) {
	changeLevel(e, -1)
}

func changeLevel(e *ecs.ECS, delta int) {
	lvl := GetOrCreateLevel(e)
	if err := LoadLevel(e, lvl.Index+delta); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// RequestLevelChange schedules a move delta levels away once the current
// actor pass is over.
func RequestLevelChange(e *ecs.ECS, delta int) {
	GetOrCreateLevel(e).Pending = delta
}

// ApplyPendingLevel performs a level change requested this frame.
func ApplyPendingLevel(e *ecs.ECS) {
	lvl := GetOrCreateLevel(e)
	if lvl.Pending == 0 {
		return
	}
	delta := lvl.Pending
	lvl.Pending = 0
	changeLevel(e, delta)
}

// GetOrCreateLevel returns the singleton level tracker.
func GetOrCreateLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		entry = factory.CreateLevel(e, nil)
	}
	return components.Level.Get(entry)
}

// GetOrCreateGrid returns the tile grid, allocating an empty one if needed.
func GetOrCreateGrid(e *ecs.ECS) *components.GridData {
	entry, ok := components.Grid.First(e.World)
	if !ok {
		entry = factory.CreateGrid(e)
	}
	return components.Grid.Get(entry)
}
