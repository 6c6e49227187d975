package factory

import (
	"github.com/automoto/jasmine/archetypes"
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/automoto/jasmine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its sprite's top-left corner at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64, sprite cfg.SpriteID, src clock.Source) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	actor := components.NewActorData(components.KindPlayer, src)
	actor.Sprite = sprite
	actor.Position = components.Vec3{X: x, Y: y, Z: y}
	components.Actor.SetValue(player, actor)

	obj := newActorObject(x, y)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}

func newActorObject(x, y float64) *resolv.Object {
	obj := resolv.NewObject(x, y, float64(cfg.Character.Width), float64(cfg.Character.Height))
	obj.AddTags(tags.ResolvActor)
	return obj
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(entry).Add(obj)
	}
}
