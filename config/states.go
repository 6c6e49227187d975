package config

// StateID is an animation state: an action crossed with a facing direction.
// The value is also the clip row in a character sprite sheet.
type StateID int

const (
	OpenArmsUp StateID = iota
	OpenArmsLeft
	OpenArmsDown
	OpenArmsRight
	SpearAttackUp
	SpearAttackLeft
	SpearAttackDown
	SpearAttackRight
	WalkUp
	WalkLeft
	WalkDown
	WalkRight
	SlashAttackUp
	SlashAttackLeft
	SlashAttackDown
	SlashAttackRight
	ArrowAttackUp
	ArrowAttackLeft
	ArrowAttackDown
	ArrowAttackRight
	Fall
	WideSlashUp
	WideSlashDown
	WideSlashLeft
	WideSlashRight
	StateCount
)

// FallTerminalFrame is the frame at which a falling actor stays down.
const FallTerminalFrame = 5

var stateNames = [StateCount]string{
	"open_arms_up", "open_arms_left", "open_arms_down", "open_arms_right",
	"spear_up", "spear_left", "spear_down", "spear_right",
	"walk_up", "walk_left", "walk_down", "walk_right",
	"slash_up", "slash_left", "slash_down", "slash_right",
	"arrow_up", "arrow_left", "arrow_down", "arrow_right",
	"fall",
	"wide_slash_up", "wide_slash_down", "wide_slash_left", "wide_slash_right",
}

func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "unknown"
	}
	return stateNames[s]
}

// IsWide reports whether the state uses the oversized wide-slash frames.
func (s StateID) IsWide() bool {
	return s >= WideSlashUp && s <= WideSlashRight
}

// Direction is a bitmask so horizontal and vertical movement can combine.
type Direction int

const (
	DirLeft  Direction = 1 << 0
	DirRight Direction = 1 << 1
	DirUp    Direction = 1 << 2
	DirDown  Direction = 1 << 3
)

// Opposite returns the direction on the same axis pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	}
	return 0
}

// Horizontal reports whether d is left or right.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Action is what an actor is doing, independent of where it faces.
type Action int

const (
	ActionOpenArms Action = iota
	ActionSpearAttack
	ActionWalk
	ActionSlash
	ActionArrow
	ActionFall
	ActionWideSlash
)

// facingStates lists the state for each facing direction: up, left, down, right.
var facingStates = map[Action][4]StateID{
	ActionOpenArms:    {OpenArmsUp, OpenArmsLeft, OpenArmsDown, OpenArmsRight},
	ActionSpearAttack: {SpearAttackUp, SpearAttackLeft, SpearAttackDown, SpearAttackRight},
	ActionWalk:        {WalkUp, WalkLeft, WalkDown, WalkRight},
	ActionSlash:       {SlashAttackUp, SlashAttackLeft, SlashAttackDown, SlashAttackRight},
	ActionArrow:       {ArrowAttackUp, ArrowAttackLeft, ArrowAttackDown, ArrowAttackRight},
	ActionWideSlash:   {WideSlashUp, WideSlashLeft, WideSlashDown, WideSlashRight},
}

// StateFor returns the animation state for an action performed while facing d.
// Fall has no direction.
func StateFor(a Action, facing Direction) StateID {
	if a == ActionFall {
		return Fall
	}
	row, ok := facingStates[a]
	if !ok {
		return WalkDown
	}
	switch facing {
	case DirUp:
		return row[0]
	case DirLeft:
		return row[1]
	case DirRight:
		return row[3]
	default:
		return row[2]
	}
}
