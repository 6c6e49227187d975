package systems

import (
	"log"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var moveActions = [...]cfg.ActionID{
	cfg.ActionMoveUp,
	cfg.ActionMoveDown,
	cfg.ActionMoveLeft,
	cfg.ActionMoveRight,
}

// UpdatePlayerControl turns this frame's input into player commands.
// Presses start walking; releases fire everything else.
func UpdatePlayerControl(e *ecs.ECS) {
	if IsPaused(e) {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	player := components.Actor.Get(playerEntry)

	if input.AnyKey || anyMoveJustPressed(input) {
		if IsExchangePlaying(e) {
			player.StopWalking()
		} else {
			walkHeldDirections(input, player)
		}
	}

	for i := 0; i < cfg.SkillSlots; i++ {
		if !GetAction(input, cfg.SkillAction(i)).JustReleased {
			continue
		}
		if err := UseSkill(e, playerEntry, i); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	if GetAction(input, cfg.ActionAutoAttack).JustReleased {
		AutoAttack(e, playerEntry)
	}
	if GetAction(input, cfg.ActionMute).JustReleased {
		ToggleMute(e)
	}
	if GetAction(input, cfg.ActionJump).JustReleased {
		player.Jump()
	}

	for _, id := range moveActions {
		if GetAction(input, id).JustReleased {
			d, _ := cfg.MoveDirection(id)
			player.StopWalkingInDirection(d)
		}
	}

	if input.Clicked {
		cam := GetOrCreateCamera(e)
		player.WalkToPosition(input.ClickPos.X+cam.X, input.ClickPos.Y+cam.Y)
	}
}

func anyMoveJustPressed(input *components.InputData) bool {
	for _, id := range moveActions {
		if GetAction(input, id).JustPressed {
			return true
		}
	}
	return false
}

// walkHeldDirections walks along each axis whose key is held. Down wins over
// up and right over left.
func walkHeldDirections(input *components.InputData, player *components.ActorData) {
	switch {
	case input.Current[cfg.ActionMoveDown]:
		player.WalkInDirection(cfg.DirDown)
	case input.Current[cfg.ActionMoveUp]:
		player.WalkInDirection(cfg.DirUp)
	}
	switch {
	case input.Current[cfg.ActionMoveRight]:
		player.WalkInDirection(cfg.DirRight)
	case input.Current[cfg.ActionMoveLeft]:
		player.WalkInDirection(cfg.DirLeft)
	}
}

// PlayerEntry returns the player, if one has been spawned.
func PlayerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}
