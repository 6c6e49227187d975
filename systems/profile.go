package systems

import (
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/yohamta/donburi/ecs"
)

// SkillCount is one skill slot as shown on the profile overlay.
type SkillCount struct {
	Type  cfg.SkillType
	Count int
}

// Profile is a snapshot of the player's progress.
type Profile struct {
	Level               int
	Gold                int
	Health, MaxHealth   int
	Mana, MaxMana       int
	Stamina, MaxStamina int
	Skills              []SkillCount
}

// PlayerProfile snapshots the player for the profile overlay. ok is false
// before a player exists.
func PlayerProfile(e *ecs.ECS) (Profile, bool) {
	entry, ok := PlayerEntry(e)
	if !ok {
		return Profile{}, false
	}
	a := components.Actor.Get(entry)
	p := Profile{
		Level:      GetOrCreateLevel(e).Index,
		Gold:       a.Inventory.Gold,
		Health:     a.Health,
		MaxHealth:  a.MaxHealth,
		Mana:       a.Mana,
		MaxMana:    a.MaxMana,
		Stamina:    a.Stamina,
		MaxStamina: a.MaxStamina,
	}
	for _, s := range a.Skills {
		p.Skills = append(p.Skills, SkillCount{Type: s.Type, Count: s.Count})
	}
	return p, true
}
