package systems

import (
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the enemy AI: attack a player in short range, chase one
// in long range, otherwise stand still.
func UpdateEnemies(e *ecs.ECS) {
	if IsPaused(e) || !cfg.Enemy.Aggressive {
		return
	}
	playerEntry, ok := PlayerEntry(e)
	if !ok {
		return
	}
	player := components.Actor.Get(playerEntry)
	ticks := FrameTicks(e)
	grid := GetGrid(e)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		enemy := components.Enemy.Get(entry)

		if actor.Dead() || player.Dead() {
			stopChasing(actor, enemy)
			return
		}
		if actor.Attacking {
			return
		}

		switch {
		case IsNear(actor, player):
			stopChasing(actor, enemy)
			Attack(e, entry, playerEntry)
		case inLongRange(actor, player):
			chase(grid, actor, enemy, player, ticks)
		default:
			stopChasing(actor, enemy)
		}
	})
}

func inLongRange(actor, other *components.ActorData) bool {
	return absInt(other.Col-actor.Col) <= actor.LongRange &&
		absInt(other.Row-actor.Row) <= actor.LongRange
}

// chase walks the enemy along a path to the player's cell, planning a new
// path when the old one runs out or grows stale.
func chase(grid *components.GridData, actor *components.ActorData, enemy *components.EnemyData, player *components.ActorData, ticks uint32) {
	enemy.SinceReplan += ticks
	stale := enemy.SinceReplan >= cfg.Enemy.ReplanInterval

	if !enemy.Chasing || stale || enemy.Waypoint >= len(enemy.Path) {
		from := components.CellAt(actor.Center())
		to := components.CellAt(player.Center())
		path, ok := FindPath(grid, from, to)
		if !ok {
			stopChasing(actor, enemy)
			return
		}
		enemy.Path = path
		enemy.Waypoint = 1
		enemy.SinceReplan = 0
		enemy.Chasing = true
		if enemy.Waypoint < len(enemy.Path) {
			walkToCell(actor, enemy.Path[enemy.Waypoint])
		}
		return
	}

	if !actor.WalkingToDestination {
		enemy.Waypoint++
		if enemy.Waypoint < len(enemy.Path) {
			walkToCell(actor, enemy.Path[enemy.Waypoint])
		}
	}
}

func walkToCell(actor *components.ActorData, c components.Cell) {
	p := c.Center()
	actor.WalkToPosition(p.X, p.Y)
}

func stopChasing(actor *components.ActorData, enemy *components.EnemyData) {
	if !enemy.Chasing {
		return
	}
	enemy.Chasing = false
	enemy.Path = nil
	enemy.Waypoint = 0
	actor.WalkingToDestination = false
	actor.StopWalking()
}
