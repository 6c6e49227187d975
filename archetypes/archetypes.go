package archetypes

import (
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Actor,
		tags.Player,
		components.Actor,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Actor,
		tags.Enemy,
		components.Actor,
		components.Enemy,
		components.Object,
	)
	NPC = newArchetype(
		tags.Actor,
		tags.NPC,
		components.Actor,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Grid = newArchetype(
		components.Grid,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
