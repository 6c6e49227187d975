package systems

import (
	"image"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// Attack locks onto target and starts swinging. It does nothing while
// already attacking or when the target is dead.
func Attack(e *ecs.ECS, entry, target *donburi.Entry) {
	actor := components.Actor.Get(entry)
	if actor.Attacking {
		return
	}
	if components.Actor.Get(target).Dead() {
		return
	}

	actor.Target = target.Entity()
	PlaySFX(e, cfg.SoundKnifeSlice, 0)

	actor.Attacking = true
	actor.Velocity.X = 0
	actor.Velocity.Y = 0
	actor.StartAnimation()
	actor.SetAction(cfg.ActionWideSlash)
}

// StopAttacking ends the actor's attack.
func StopAttacking(_ *ecs.ECS, entry *donburi.Entry) {
	components.Actor.Get(entry).StopAttacking()
}

// AutoAttack attacks the nearest living actor inside the long-range box, or
// shows the "no enemies" notice.
func AutoAttack(e *ecs.ECS, entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	if actor.Attacking {
		return
	}

	reach := attackRange(actor)
	for _, other := range actorsInRange(e, entry, reach) {
		if components.Actor.Get(other).Bounds().Overlaps(reach) {
			Attack(e, entry, other)
			return
		}
	}

	PlayNotice(e, cfg.NoticeNoEnemiesNearby)
}

// attackRange is the box of tiles within long range of the actor's cell.
func attackRange(actor *components.ActorData) image.Rectangle {
	ts := cfg.Map.TileSize
	r := actor.LongRange
	return image.Rect(
		(actor.Col-r)*ts,
		(actor.Row-r)*ts,
		(actor.Col+r+1)*ts,
		(actor.Row+r+1)*ts,
	)
}

// actorsInRange returns the living actors other than entry whose collision
// boxes touch reach, nearest first.
func actorsInRange(e *ecs.ECS, entry *donburi.Entry, reach image.Rectangle) []*donburi.Entry {
	space := spaceOf(e)
	if space == nil {
		return nil
	}

	probe := resolv.NewObject(
		float64(reach.Min.X), float64(reach.Min.Y),
		float64(reach.Dx()), float64(reach.Dy()),
		tags.ResolvProbe,
	)
	space.Add(probe)
	defer space.Remove(probe)

	var found []*donburi.Entry
	if collision := probe.Check(0, 0, tags.ResolvActor); collision != nil {
		for _, obj := range collision.Objects {
			other, ok := obj.Data.(*donburi.Entry)
			if !ok || other.Entity() == entry.Entity() || !e.World.Valid(other.Entity()) {
				continue
			}
			if components.Actor.Get(other).Dead() {
				continue
			}
			found = append(found, other)
		}
	}

	self := components.Actor.Get(entry)
	sort.SliceStable(found, func(i, j int) bool {
		return distance(self, components.Actor.Get(found[i])) < distance(self, components.Actor.Get(found[j]))
	})
	return found
}

func distance(a, b *components.ActorData) float64 {
	return math.Hypot(b.Position.X-a.Position.X, b.Position.Y-a.Position.Y)
}

// Damage takes amount of health from the actor and shows it as a popup.
// Dead actors take no damage; an actor brought to zero falls.
func Damage(_ *ecs.ECS, entry *donburi.Entry, amount int) {
	actor := components.Actor.Get(entry)
	if actor.Dead() {
		return
	}

	actor.SetHealth(actor.Health - amount)
	if actor.Dead() {
		actor.Fall()
	}

	rotation := 0.0
	if cfg.Combat.PopupMaxRotation > 0 {
		rotation = float64(rng.Intn(cfg.Combat.PopupMaxRotation))
	}
	actor.AddPopup(amount, rotation)
}

// IsNear reports whether other stands within the actor's short range, in
// cells, on both axes.
func IsNear(actor, other *components.ActorData) bool {
	r := actor.ShortRange
	return other.Col > actor.Col-r && other.Col < actor.Col+r &&
		other.Row > actor.Row-r && other.Row < actor.Row+r
}
