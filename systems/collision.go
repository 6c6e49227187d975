package systems

import (
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CheckCollision refreshes the actor's look-ahead cell and resolves what is
// on its foreground layer. The player picks up gold and walks through doors;
// anything else in the way pushes the actor back out of the cell.
func CheckCollision(e *ecs.ECS, entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	ts := float64(cfg.Map.TileSize)
	ch := cfg.Character

	xOffset := ch.BoxRight
	if actor.Facing == cfg.DirLeft || actor.Facing == cfg.DirUp {
		xOffset = ch.BoxLeft
	}
	actor.Col = int((actor.Position.X + float64(xOffset)) / ts)
	actor.Row = int((actor.Position.Y + float64(ch.BoxBottom)) / ts)

	grid := GetGrid(e)
	if grid == nil {
		return
	}
	tile := grid.At(actor.Row, actor.Col)
	if tile == nil || !tile.HasForeground() {
		return
	}

	if actor.IsPlayer() {
		switch {
		case cfg.IsGoldBar(tile.Foreground):
			actor.Inventory.AddGold(1)
			tile.Foreground = leveldata.Empty
			PlaySFX(e, cfg.SoundCoins, 0)
			PlayExchange(e, cfg.ExchangeTutorial0)
			return
		case cfg.IsDoor(tile.Foreground):
			RequestLevelChange(e, 1)
			PlaySFX(e, cfg.SoundDoorOpen, 0)
		}
	}

	size := cfg.Map.TileSize
	switch actor.Facing {
	case cfg.DirLeft:
		actor.Position.X = float64((actor.Col+1)*size - (ch.BoxLeft + 1))
	case cfg.DirRight:
		actor.Position.X = float64(actor.Col*size - (ch.BoxRight + 1))
	case cfg.DirUp:
		actor.Position.Y = float64((actor.Row+1)*size - (ch.BoxTop + 1))
	case cfg.DirDown:
		actor.Position.Y = float64(actor.Row*size - ch.BoxBottom)
	}
}

// GetGrid returns the loaded tile grid, or nil before one exists.
func GetGrid(e *ecs.ECS) *components.GridData {
	entry, ok := components.Grid.First(e.World)
	if !ok {
		return nil
	}
	return components.Grid.Get(entry)
}

func spaceOf(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
