package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionAutoAttack
	ActionMenu
	ActionProfile
	ActionMute
	ActionSkill0
	ActionSkill1
	ActionSkill2
	ActionSkill3
	ActionSkill4
	ActionSkill5
	ActionSkill6
	ActionSkill7
	ActionSkill8
	ActionSkill9
	ActionCount // Must be last - used for array sizing
)

// SkillSlots is the number of skill hotkeys.
const SkillSlots = int(ActionSkill9-ActionSkill0) + 1

// SkillAction returns the hotkey action of skill slot i.
func SkillAction(i int) ActionID {
	return ActionSkill0 + ActionID(i)
}

// MoveDirection maps a movement action to the direction it walks in.
func MoveDirection(a ActionID) (Direction, bool) {
	switch a {
	case ActionMoveLeft:
		return DirLeft, true
	case ActionMoveRight:
		return DirRight, true
	case ActionMoveUp:
		return DirUp, true
	case ActionMoveDown:
		return DirDown, true
	}
	return 0, false
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionAutoAttack: {
				Keys: []ebiten.Key{ebiten.KeyF},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionMenu: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionProfile: {
				Keys: []ebiten.Key{ebiten.KeyI},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionMute:   {Keys: []ebiten.Key{ebiten.KeyM}},
			ActionSkill0: {Keys: []ebiten.Key{ebiten.Key1}},
			ActionSkill1: {Keys: []ebiten.Key{ebiten.Key2}},
			ActionSkill2: {Keys: []ebiten.Key{ebiten.Key3}},
			ActionSkill3: {Keys: []ebiten.Key{ebiten.Key4}},
			ActionSkill4: {Keys: []ebiten.Key{ebiten.Key5}},
			ActionSkill5: {Keys: []ebiten.Key{ebiten.Key6}},
			ActionSkill6: {Keys: []ebiten.Key{ebiten.Key7}},
			ActionSkill7: {Keys: []ebiten.Key{ebiten.Key8}},
			ActionSkill8: {Keys: []ebiten.Key{ebiten.Key9}},
			ActionSkill9: {Keys: []ebiten.Key{ebiten.Key0}},
		},
	}
}
