package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ErrInvalidSkillIndex is returned by UseSkill for a slot the actor does not have.
var ErrInvalidSkillIndex = errors.New("invalid skill index")

// UseSkill casts the skill in the given slot. Cooling down skills, empty
// potions and casts that find no target are ignored; a lack of mana shows a
// notice. Only an out-of-range slot is an error.
func UseSkill(e *ecs.ECS, entry *donburi.Entry, index int) error {
	actor := components.Actor.Get(entry)
	if index < 0 || index >= len(actor.Skills) {
		return fmt.Errorf("use skill %d of %d: %w", index, len(actor.Skills), ErrInvalidSkillIndex)
	}
	if actor.Dead() {
		return nil
	}

	skill := &actor.Skills[index]
	if skill.IsCoolingDown() {
		return nil
	}
	if skill.Type.IsPotion() && skill.Count <= 0 {
		return nil
	}
	if skill.ManaRequired > actor.Mana {
		PlayNotice(e, cfg.NoticeNotEnoughMana)
		return nil
	}

	if skill.Behavior == cfg.Offensive && !actor.Attacking {
		AutoAttack(e, entry)
		if !actor.Attacking {
			return nil
		}
	}

	switch {
	case skill.Type == cfg.FireMagic253:
		castFireBall(e, entry)
	case skill.Behavior == cfg.Offensive:
		castMagicCircle(e, entry)
	default:
		drinkPotion(actor, skill)
	}

	actor.SetMana(actor.Mana - skill.ManaRequired)
	skill.Elapsed = 0
	return nil
}

func castFireBall(e *ecs.ECS, entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	target, ok := resolveTarget(e, actor)
	if !ok {
		return
	}

	actor.SetAction(cfg.ActionOpenArms)
	PlayNotice(e, cfg.NoticeFireBallAttack)

	targetEntity := target.Entity()
	AddProjectileEffect(e, cfg.EffectGas, spriteCenter(actor), spriteCenter(components.Actor.Get(target)), func() {
		if e.World.Valid(targetEntity) {
			Damage(e, e.World.Entry(targetEntity), cfg.Combat.ProjectileDamage)
		}
	})
	actor.StartAnimation()
}

func castMagicCircle(e *ecs.ECS, entry *donburi.Entry) {
	actor := components.Actor.Get(entry)
	target, ok := resolveTarget(e, actor)
	if !ok {
		return
	}

	actor.SetAction(cfg.ActionOpenArms)

	targetEntity := target.Entity()
	power := actor.AttackPower
	AddTimedEffect(e, cfg.EffectMagicCircle, spriteCenter(components.Actor.Get(target)), cfg.Combat.SpellDuration, func() {
		if e.World.Valid(targetEntity) {
			Damage(e, e.World.Entry(targetEntity), power)
		}
	})
	actor.StartAnimation()
}

func drinkPotion(actor *components.ActorData, skill *components.Skill) {
	restore := cfg.Combat.PotionRestore
	switch skill.Type {
	case cfg.Potion147:
		actor.SetHealth(min(actor.Health+restore, actor.MaxHealth))
	case cfg.Potion150:
		actor.SetMana(min(actor.Mana+restore, actor.MaxMana))
	case cfg.Potion158:
		actor.SetStamina(min(actor.Stamina+restore, actor.MaxStamina))
	default:
		return
	}
	skill.Count--
}

// spriteCenter is where effects aimed at an actor start or land. It sits
// half a sprite right of and below the top-left corner.
func spriteCenter(a *components.ActorData) math.Vec2 {
	return math.Vec2{
		X: a.Position.X + float64(cfg.Character.Width/2),
		Y: a.Position.Y + float64(cfg.Character.Height/2),
	}
}
