package components

import (
	"image"
	"math"

	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/yohamta/donburi"
)

// ActorKind separates the player from NPCs and enemies.
type ActorKind int

const (
	KindPlayer ActorKind = iota
	KindNPC
	KindEnemy
)

func (k ActorKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindNPC:
		return "npc"
	case KindEnemy:
		return "enemy"
	}
	return "unknown"
}

// Vec3 is a position or velocity. Z is the drawn height of a jumping actor:
// it equals Y while grounded.
type Vec3 struct {
	X, Y, Z float64
}

// ActorData is a character on the map. The player, NPCs and enemies all
// share it.
type ActorData struct {
	Kind   ActorKind
	Sprite cfg.SpriteID

	Position     Vec3
	Velocity     Vec3
	Acceleration Vec3

	Health, MaxHealth, HealthBars    int
	Mana, MaxMana, ManaBars          int
	Stamina, MaxStamina, StaminaBars int

	Speed    float64
	MaxSpeed float64

	Moving cfg.Direction // bitmask of held walk directions
	Facing cfg.Direction
	State  cfg.StateID
	Frame  int

	AnimationRate int // frames per second
	Timer         clock.Timer

	Attacking bool
	Jumping   bool
	Target    donburi.Entity // weak; re-resolve with world.Valid

	Destination          image.Point
	WalkingToDestination bool

	// Look-ahead cell, refreshed by collision checks.
	Col, Row int

	LongRange   int
	ShortRange  int
	AttackPower int

	Skills    []Skill
	Inventory Inventory
	Popups    []DamagePopup

	// Sounds the actor has triggered since the last frame.
	Sounds []cfg.SoundID
}

var Actor = donburi.NewComponentType[ActorData]()

// NewActorData returns an actor with the default stats, animated by src.
func NewActorData(kind ActorKind, src clock.Source) ActorData {
	a := ActorData{
		Kind:          kind,
		Sprite:        cfg.SpritePlayer,
		Health:        cfg.Actor.Health,
		MaxHealth:     cfg.Actor.Health,
		HealthBars:    cfg.Actor.BarCount,
		Mana:          cfg.Actor.Mana,
		MaxMana:       cfg.Actor.Mana,
		ManaBars:      cfg.Actor.BarCount,
		Stamina:       cfg.Actor.Stamina,
		MaxStamina:    cfg.Actor.Stamina,
		StaminaBars:   cfg.Actor.BarCount,
		Speed:         cfg.Actor.Speed,
		MaxSpeed:      cfg.Actor.MaxSpeed,
		Facing:        cfg.DirDown,
		State:         cfg.WalkDown,
		AnimationRate: cfg.Actor.AnimationRate,
		Timer:         clock.NewTimer(src),
		Target:        donburi.Null,
		LongRange:     cfg.Actor.LongRange,
		ShortRange:    cfg.Actor.ShortRange,
		AttackPower:   cfg.Actor.AttackPower,
	}
	for _, t := range cfg.Skills.Starter {
		a.Skills = append(a.Skills, NewSkill(t, cfg.Skills.StarterCount))
	}
	return a
}

// IsPlayer reports whether the actor is the player.
func (a *ActorData) IsPlayer() bool {
	return a.Kind == KindPlayer
}

// Dead reports whether the actor has no health left.
func (a *ActorData) Dead() bool {
	return a.Health <= 0
}

// IsMoving reports whether every bit of d is set in the movement mask.
func (a *ActorData) IsMoving(d cfg.Direction) bool {
	return a.Moving&d == d
}

// Bounds is the sprite rectangle in map pixels.
func (a *ActorData) Bounds() image.Rectangle {
	x, y := int(a.Position.X), int(a.Position.Y)
	return image.Rect(x, y, x+cfg.Character.Width, y+cfg.Character.Height)
}

// Center is the midpoint of the sprite in map pixels.
func (a *ActorData) Center() (float64, float64) {
	return a.Position.X + float64(cfg.Character.Width)/2, a.Position.Y + float64(cfg.Character.Height)/2
}

func (a *ActorData) StartAnimation() {
	if !a.Timer.Started() {
		a.Timer.Start()
	}
}

func (a *ActorData) StopAnimation() {
	a.Timer.Stop()
}

// SetAction switches to the state for action in the current facing.
func (a *ActorData) SetAction(action cfg.Action) {
	a.State = cfg.StateFor(action, a.Facing)
}

// FaceTowards turns towards a point, preferring the vertical axis.
func (a *ActorData) FaceTowards(x, y float64) {
	switch {
	case y > a.Position.Y:
		a.Facing = cfg.DirDown
	case y < a.Position.Y:
		a.Facing = cfg.DirUp
	case x > a.Position.X:
		a.Facing = cfg.DirRight
	case x < a.Position.X:
		a.Facing = cfg.DirLeft
	}
}

// SetPosition centres the sprite on (x, y).
func (a *ActorData) SetPosition(x, y int) {
	a.Position.X = float64(x - cfg.Character.Width/2)
	a.Position.Y = float64(y - cfg.Character.Height/2)
	a.Position.Z = a.Position.Y
}

// WalkToPosition starts steering the sprite centre towards (x, y).
func (a *ActorData) WalkToPosition(x, y int) {
	a.Destination = image.Pt(x-cfg.Character.Width/2, y-cfg.Character.Height/2)
	a.WalkingToDestination = true
}

func bars(value, limit int) int {
	if limit <= 0 {
		return 0
	}
	n := int(math.Round(float64(value) / float64(limit) * float64(cfg.Actor.BarCount)))
	return min(max(n, 0), cfg.Actor.BarCount)
}

func (a *ActorData) SetHealth(health int) {
	a.Health = health
	a.HealthBars = bars(a.Health, a.MaxHealth)
}

func (a *ActorData) SetMana(mana int) {
	a.Mana = mana
	a.ManaBars = bars(a.Mana, a.MaxMana)
}

func (a *ActorData) SetStamina(stamina int) {
	a.Stamina = stamina
	a.StaminaBars = bars(a.Stamina, a.MaxStamina)
}

// StopAttacking ends an attack and drops the target.
func (a *ActorData) StopAttacking() {
	a.Attacking = false
	a.Target = donburi.Null
	a.Frame = 0
	a.Velocity.X = 0
	a.Velocity.Y = 0
	a.StopAnimation()
}

// WalkInDirection adds d to the movement mask. Walking against the current
// horizontal direction stops that first; vertical walking only changes the
// state when no horizontal walk is held.
func (a *ActorData) WalkInDirection(d cfg.Direction) {
	walk := cfg.StateFor(cfg.ActionWalk, d)
	switch d {
	case cfg.DirLeft, cfg.DirRight:
		if a.IsMoving(d.Opposite()) {
			a.stopMovingHorizontally()
		}
		if a.State != walk {
			a.State, a.Facing = walk, d
		}
		if a.IsMoving(d) {
			return
		}
		a.Moving |= d
		if d == cfg.DirLeft {
			a.Velocity.X = -a.Speed
		} else {
			a.Velocity.X = a.Speed
		}
	case cfg.DirUp, cfg.DirDown:
		if a.State != walk && !a.IsMoving(cfg.DirLeft) && !a.IsMoving(cfg.DirRight) {
			a.State, a.Facing = walk, d
		}
		if a.IsMoving(d) {
			return
		}
		a.Moving |= d
		if d == cfg.DirUp {
			a.Velocity.Y = -a.Speed
		} else {
			a.Velocity.Y = a.Speed
		}
	default:
		return
	}

	a.Sounds = append(a.Sounds, cfg.SoundFootstep)
	a.StartAnimation()
}

// StopWalkingInDirection releases the axis d belongs to.
func (a *ActorData) StopWalkingInDirection(d cfg.Direction) {
	if d == cfg.DirUp || d == cfg.DirDown {
		a.stopMovingVertically()
	} else {
		a.stopMovingHorizontally()
	}
}

// StopWalking releases both axes.
func (a *ActorData) StopWalking() {
	a.stopMovingHorizontally()
	a.stopMovingVertically()
}

func (a *ActorData) stopMovingHorizontally() {
	if a.Attacking {
		a.StopAttacking()
	} else {
		a.Velocity.X = 0
		a.Frame = 0
	}

	if a.Velocity.Y == 0 {
		a.StopAnimation()
	}

	if a.IsMoving(cfg.DirLeft) {
		a.Moving &^= cfg.DirLeft
	} else if a.IsMoving(cfg.DirRight) {
		a.Moving &^= cfg.DirRight
	}

	if a.IsMoving(cfg.DirUp) {
		a.State, a.Facing = cfg.WalkUp, cfg.DirUp
	} else if a.IsMoving(cfg.DirDown) {
		a.State, a.Facing = cfg.WalkDown, cfg.DirDown
	}
}

func (a *ActorData) stopMovingVertically() {
	if a.Attacking {
		a.StopAttacking()
	} else {
		a.Velocity.Z = 0
		a.Velocity.Y = 0
		a.Frame = 0
	}

	if a.Velocity.X == 0 {
		a.StopAnimation()
	}

	if a.IsMoving(cfg.DirUp) {
		a.Moving &^= cfg.DirUp
	} else if a.IsMoving(cfg.DirDown) {
		a.Moving &^= cfg.DirDown
	}

	if a.IsMoving(cfg.DirRight) {
		a.State, a.Facing = cfg.WalkRight, cfg.DirRight
	} else if a.IsMoving(cfg.DirLeft) {
		a.State, a.Facing = cfg.WalkLeft, cfg.DirLeft
	}
}

// Fall plays the death animation once.
func (a *ActorData) Fall() {
	if a.State == cfg.Fall {
		return
	}
	a.State = cfg.Fall
	a.StartAnimation()
}

// Jump launches the actor. It is refused mid-jump and while walking
// vertically.
func (a *ActorData) Jump() {
	if a.Jumping || a.Velocity.Y != 0 {
		return
	}

	a.Velocity.Z -= math.Sqrt(2 * cfg.Character.Gravity * cfg.Character.JumpHeight)
	a.Acceleration.Z = -a.Velocity.Z

	a.Jumping = true
	a.AnimationRate = cfg.Actor.JumpAnimationRate
	a.StartAnimation()

	for _, d := range []cfg.Direction{cfg.DirRight, cfg.DirLeft, cfg.DirUp, cfg.DirDown} {
		if a.IsMoving(d) {
			a.State = cfg.StateFor(cfg.ActionWalk, d)
			a.Facing = d
			break
		}
	}
}

func (a *ActorData) finishJump() {
	a.Jumping = false
	a.Position.Z = a.Position.Y
	a.Velocity.Z = 0
	a.Frame = 0
	if a.Velocity.X == 0 && a.Velocity.Y == 0 {
		a.StopAnimation()
	}
	a.AnimationRate = cfg.Actor.AnimationRate
}

// Advance moves the actor forward by ticks milliseconds of frame time.
// onSwing runs each time an attacking actor completes a swing interval.
func (a *ActorData) Advance(ticks uint32, onSwing func()) {
	for i := range a.Skills {
		a.Skills[i].Advance(ticks)
	}

	if a.Timer.Started() {
		elapsed := a.Timer.Ticks()

		// Dead now.
		if a.State == cfg.Fall && a.Frame == cfg.FallTerminalFrame {
			a.StopAnimation()
			return
		}

		if n := cfg.FrameCount(a.State); n > 0 {
			a.Frame = int(elapsed) * a.AnimationRate / 1000 % n
		}

		step := a.Speed * float64(elapsed) / 1000
		if a.Velocity.X > 0 {
			a.Velocity.X += step
		} else if a.Velocity.X < 0 {
			a.Velocity.X -= step
		}
		if a.Velocity.Y > 0 {
			a.Velocity.Y += step
		} else if a.Velocity.Y < 0 {
			a.Velocity.Y -= step
		}

		if elapsed >= cfg.Actor.AttackInterval {
			if a.Attacking && onSwing != nil {
				onSwing()
			}
			a.Timer.Start()
		}
	}

	if a.WalkingToDestination {
		px, py := int(a.Position.X), int(a.Position.Y)
		dx, dy := a.Destination.X, a.Destination.Y

		if dx < px {
			a.WalkInDirection(cfg.DirLeft)
		} else if dx > px {
			a.WalkInDirection(cfg.DirRight)
		}
		if dy < py {
			a.WalkInDirection(cfg.DirUp)
		} else if dy > py {
			a.WalkInDirection(cfg.DirDown)
		}

		a.Velocity.X = float64(dx-px) * a.Speed
		a.Velocity.Y = float64(dy-py) * a.Speed

		if px == dx && py == dy {
			a.WalkingToDestination = false
			a.StopWalking()
			a.Facing = cfg.DirUp
			a.Velocity.X = 0
			a.Velocity.Y = 0
			return
		}
	}

	if a.Velocity.X == 0 && a.Velocity.Y == 0 && a.Velocity.Z == 0 {
		return
	}

	dt := float64(ticks) / 1000
	a.Velocity.X = clampFloat(a.Velocity.X, -a.MaxSpeed, a.MaxSpeed)
	a.Velocity.Y = clampFloat(a.Velocity.Y, -a.MaxSpeed, a.MaxSpeed)

	maxX := float64(cfg.Map.PixelWidth() - cfg.Character.Width)
	maxY := float64(cfg.Map.PixelHeight() - cfg.Character.Height)

	a.Position.X = clampFloat(a.Position.X+a.Velocity.X*dt, 0, maxX)
	a.Position.Y = clampFloat(a.Position.Y+a.Velocity.Y*dt, 0, maxY)

	if a.Jumping {
		a.Position.Z = clampFloat(a.Position.Z+a.Velocity.Z*dt, 0, maxY)
		if a.Position.Z >= a.Position.Y {
			a.finishJump()
		} else {
			a.Velocity.Z += a.Acceleration.Z * dt
		}
	} else {
		a.Position.Z = a.Position.Y
	}
}

// DrainSounds returns and clears the queued sounds.
func (a *ActorData) DrainSounds() []cfg.SoundID {
	s := a.Sounds
	a.Sounds = nil
	return s
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
