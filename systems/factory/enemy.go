package factory

import (
	"github.com/automoto/jasmine/archetypes"
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a hostile actor drawn with sprite at (x, y).
func CreateEnemy(ecs *ecs.ECS, x, y float64, sprite cfg.SpriteID, src clock.Source) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	actor := components.NewActorData(components.KindEnemy, src)
	actor.Sprite = sprite
	actor.Position = components.Vec3{X: x, Y: y, Z: y}
	components.Actor.SetValue(enemy, actor)
	components.Enemy.SetValue(enemy, components.EnemyData{})

	obj := newActorObject(x, y)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return enemy
}

// CreateNPC spawns a friendly actor. NPCs never attack and are never chased.
func CreateNPC(ecs *ecs.ECS, x, y float64, sprite cfg.SpriteID, src clock.Source) *donburi.Entry {
	npc := archetypes.NPC.Spawn(ecs)

	actor := components.NewActorData(components.KindNPC, src)
	actor.Sprite = sprite
	actor.Position = components.Vec3{X: x, Y: y, Z: y}
	components.Actor.SetValue(npc, actor)

	obj := newActorObject(x, y)
	obj.Data = npc
	components.Object.SetValue(npc, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return npc
}
