package systems

import (
	"testing"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
)

func TestCheckCollisionLookAhead(t *testing.T) {
	cases := []struct {
		name    string
		facing  cfg.Direction
		wantCol int
	}{
		{"down", cfg.DirDown, (100 + 48) / 32},
		{"right", cfg.DirRight, (100 + 48) / 32},
		{"left", cfg.DirLeft, (100 + 16) / 32},
		{"up", cfg.DirUp, (100 + 16) / 32},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, _ := newTestWorld(t)
			entry := spawnEnemy(t, e, 100, 100)
			actor := components.Actor.Get(entry)
			actor.Facing = c.facing

			CheckCollision(e, entry)

			if actor.Col != c.wantCol || actor.Row != (100+64)/32 {
				t.Errorf("expected cell (%d, %d), got (%d, %d)", c.wantCol, (100+64)/32, actor.Col, actor.Row)
			}
		})
	}
}

func TestCheckCollisionPushesBack(t *testing.T) {
	cases := []struct {
		name   string
		facing cfg.Direction
		x, y   float64
		wantX  float64
		wantY  float64
	}{
		// Look-ahead cell (1, 2) for a sprite at (0, 10) facing down or right.
		{"down", cfg.DirDown, 0, 10, 0, 2*32 - 64},
		{"right", cfg.DirRight, 0, 10, 1*32 - 49, 10},
		// Look-ahead cell (0, 2) facing left or up.
		{"left", cfg.DirLeft, 0, 10, 1*32 - 17, 10},
		{"up", cfg.DirUp, 0, 10, 0, 3*32 - 33},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, _ := newTestWorld(t)
			entry := spawnEnemy(t, e, c.x, c.y)
			actor := components.Actor.Get(entry)
			actor.Facing = c.facing

			grid := GetGrid(e)
			grid.At(2, 0).Foreground = 100
			grid.At(2, 1).Foreground = 100

			CheckCollision(e, entry)

			if actor.Position.X != c.wantX || actor.Position.Y != c.wantY {
				t.Errorf("expected (%v, %v), got (%v, %v)", c.wantX, c.wantY, actor.Position.X, actor.Position.Y)
			}
		})
	}
}

func TestCheckCollisionOpenTile(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := spawnEnemy(t, e, 0, 10)
	actor := components.Actor.Get(entry)
	GetGrid(e).At(2, 1).Background2 = 100

	CheckCollision(e, entry)

	if actor.Position.X != 0 || actor.Position.Y != 10 {
		t.Errorf("expected no push back over background tiles, got (%v, %v)", actor.Position.X, actor.Position.Y)
	}
}

func TestPlayerPicksUpGold(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := spawnPlayer(t, e, 0, 10)
	actor := components.Actor.Get(entry)
	grid := GetGrid(e)
	grid.At(2, 1).Foreground = 295

	CheckCollision(e, entry)

	if actor.Inventory.Gold != 1 {
		t.Errorf("expected 1 gold, got %d", actor.Inventory.Gold)
	}
	if grid.At(2, 1).HasForeground() {
		t.Error("expected the gold bar to be removed")
	}
	if actor.Position.Y != 10 {
		t.Errorf("expected no push back from gold, got y=%v", actor.Position.Y)
	}
	if !IsExchangePlaying(e) {
		t.Error("expected the gold exchange to start")
	}
	if sfx := GetOrCreateAudio(e).PendingSFX; len(sfx) == 0 || sfx[len(sfx)-1].Sound != cfg.SoundCoins {
		t.Errorf("expected the coin sound to be queued, got %+v", sfx)
	}

	CheckCollision(e, entry)
	if actor.Inventory.Gold != 1 {
		t.Errorf("expected the bar to be picked up once, got %d gold", actor.Inventory.Gold)
	}
}

func TestPlayerOpensDoor(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := spawnPlayer(t, e, 0, 10)
	actor := components.Actor.Get(entry)
	GetGrid(e).At(2, 1).Foreground = cfg.DoorTiles[0]

	CheckCollision(e, entry)

	if got := GetOrCreateLevel(e).Pending; got != 1 {
		t.Errorf("expected the next level to be requested, got pending %d", got)
	}
	if actor.Position.Y != 0 {
		t.Errorf("expected the player to be pushed back off the door, got y=%v", actor.Position.Y)
	}
}

func TestEnemyIgnoresGold(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := spawnEnemy(t, e, 0, 10)
	grid := GetGrid(e)
	grid.At(2, 1).Foreground = 295

	CheckCollision(e, entry)

	if grid.At(2, 1).Foreground != 295 {
		t.Error("expected enemies to leave gold where it is")
	}
	if components.Actor.Get(entry).Inventory.Gold != 0 {
		t.Error("expected enemies not to collect gold")
	}
}

func TestCheckCollisionOffMap(t *testing.T) {
	e, _ := newTestWorld(t)
	entry := spawnEnemy(t, e, float64(cfg.Map.PixelWidth()), float64(cfg.Map.PixelHeight()))
	actor := components.Actor.Get(entry)

	CheckCollision(e, entry)

	if actor.Position.X != float64(cfg.Map.PixelWidth()) {
		t.Errorf("expected no change off the map, got x=%v", actor.Position.X)
	}
	if grid := GetGrid(e); grid.At(actor.Row, actor.Col) != nil {
		t.Errorf("expected the look-ahead cell to be off the map")
	}
}
