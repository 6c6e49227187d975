package config

// SkillType identifies a skill. The value doubles as its icon index.
type SkillType int

const (
	Potion147    SkillType = 147 // health
	Potion150    SkillType = 150 // mana
	Potion158    SkillType = 158 // stamina
	FireMagic251 SkillType = 251
	FireMagic252 SkillType = 252
	FireMagic253 SkillType = 253 // fire ball projectile
	FireMagic254 SkillType = 254
	FireMagic255 SkillType = 255
	FireMagic256 SkillType = 256
	FireMagic257 SkillType = 257
	FireMagic258 SkillType = 258
)

// SkillBehavior says who a skill acts upon.
type SkillBehavior int

const (
	Offensive SkillBehavior = iota
	Defensive
)

// SkillDef is the static description of a skill type.
type SkillDef struct {
	Behavior     SkillBehavior
	ManaRequired int
	Cooldown     uint32 // ms
}

// SkillTableConfig holds the per-behavior skill values.
type SkillTableConfig struct {
	OffensiveMana     int
	OffensiveCooldown uint32
	PotionCooldown    uint32
	StarterCount      int
	Starter           []SkillType
}

var Skills SkillTableConfig

func init() {
	Skills = SkillTableConfig{
		OffensiveMana:     100,
		OffensiveCooldown: 1000,
		PotionCooldown:    500,
		StarterCount:      1,
		Starter: []SkillType{
			FireMagic251, FireMagic252, FireMagic253, FireMagic254, FireMagic255,
			FireMagic256, FireMagic257, Potion147, Potion150, Potion158,
		},
	}
}

// IsPotion reports whether t is one of the restoring potions.
func (t SkillType) IsPotion() bool {
	return t == Potion147 || t == Potion150 || t == Potion158
}

// DefFor returns the definition of skill type t.
func DefFor(t SkillType) SkillDef {
	if t.IsPotion() {
		return SkillDef{Behavior: Defensive, Cooldown: Skills.PotionCooldown}
	}
	return SkillDef{
		Behavior:     Offensive,
		ManaRequired: Skills.OffensiveMana,
		Cooldown:     Skills.OffensiveCooldown,
	}
}
