package systems

import (
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActors runs collision and the per-tick update of every actor, then
// applies any level change a door requested along the way.
func UpdateActors(e *ecs.ECS) {
	if IsPaused(e) {
		return
	}
	ticks := FrameTicks(e)

	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		CheckCollision(e, entry)

		actor := components.Actor.Get(entry)
		actor.Advance(ticks, func() { swing(e, entry) })
		actor.UpdatePopups()

		if entry.HasComponent(components.Object) {
			components.Object.Get(entry).Follow(actor)
		}
		for _, s := range actor.DrainSounds() {
			PlaySFX(e, s, 0)
		}
	})

	ApplyPendingLevel(e)
}

// swing lands one blow of an ongoing attack. A target that has gone away or
// died ends the attack instead.
func swing(e *ecs.ECS, entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	target, ok := resolveTarget(e, actor)
	if !ok {
		StopAttacking(e, entry)
		return
	}

	other := components.Actor.Get(target)
	if other.Dead() {
		StopAttacking(e, entry)
		return
	}

	actor.FaceTowards(other.Position.X, other.Position.Y)
	PlaySFX(e, cfg.SoundKnifeSlice, 0)

	if actor.AttackPower > 0 {
		Damage(e, target, rng.Intn(actor.AttackPower))
	}
}

// resolveTarget follows the actor's weak target reference.
func resolveTarget(e *ecs.ECS, actor *components.ActorData) (*donburi.Entry, bool) {
	if actor.Target == donburi.Null || !e.World.Valid(actor.Target) {
		return nil, false
	}
	entry := e.World.Entry(actor.Target)
	if !entry.HasComponent(components.Actor) {
		return nil, false
	}
	return entry, true
}

// DestroyActor removes an actor and its collision box from the world.
func DestroyActor(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		if space := spaceOf(e); space != nil {
			space.Remove(components.Object.Get(entry).Object)
		}
	}
	e.World.Remove(entry.Entity())
}
