package components

import cfg "github.com/automoto/jasmine/config"

// Skill is one slot on an actor's skill bar.
type Skill struct {
	Type         cfg.SkillType
	Count        int
	Behavior     cfg.SkillBehavior
	ManaRequired int
	Cooldown     uint32 // ms
	Elapsed      uint32 // ms since last use, capped at Cooldown
}

// NewSkill returns a ready-to-use skill of type t.
func NewSkill(t cfg.SkillType, count int) Skill {
	def := cfg.DefFor(t)
	return Skill{
		Type:         t,
		Count:        count,
		Behavior:     def.Behavior,
		ManaRequired: def.ManaRequired,
		Cooldown:     def.Cooldown,
		Elapsed:      def.Cooldown,
	}
}

func (s *Skill) IsCoolingDown() bool {
	return s.Elapsed < s.Cooldown
}

// Advance adds ticks ms to the cooldown clock.
func (s *Skill) Advance(ticks uint32) {
	if s.Elapsed < s.Cooldown {
		s.Elapsed = min(s.Elapsed+ticks, s.Cooldown)
	}
}

// Inventory is what an actor carries.
type Inventory struct {
	Gold int
}

func (i *Inventory) AddGold(n int) {
	i.Gold += n
}

func (i *Inventory) RemoveGold(n int) {
	i.Gold -= n
}
