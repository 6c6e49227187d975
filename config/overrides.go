package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tunables is the subset of configuration a YAML override file may change.
// Keys left out of the file keep their current values.
type Tunables struct {
	Game      Config          `yaml:"game"`
	Character CharacterConfig `yaml:"character"`
	Actor     ActorConfig     `yaml:"actor"`
	Combat    CombatConfig    `yaml:"combat"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Emitter   EmitterConfig   `yaml:"emitter"`
	Dialogue  DialogueConfig  `yaml:"dialogue"`
	Debug     DebugConfig     `yaml:"debug"`
}

// CurrentTunables snapshots the live configuration.
func CurrentTunables() Tunables {
	return Tunables{
		Game:      *C,
		Character: Character,
		Actor:     Actor,
		Combat:    Combat,
		Enemy:     Enemy,
		Emitter:   Emitter,
		Dialogue:  Dialogue,
		Debug:     Debug,
	}
}

// ParseOverrides decodes a YAML document on top of base.
func ParseOverrides(data []byte, base Tunables) (Tunables, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal overrides: %w", err)
	}
	if err := t.validate(); err != nil {
		return base, err
	}
	return t, nil
}

// validate rejects values the game divides by or paces itself with.
func (t Tunables) validate() error {
	positive := []struct {
		key string
		v   int
	}{
		{"game.width", t.Game.Width},
		{"game.height", t.Game.Height},
		{"game.frame_rate", t.Game.FrameRate},
		{"game.slow_fps", t.Game.SlowFPS},
		{"game.fast_fps", t.Game.FastFPS},
		{"character.width", t.Character.Width},
		{"character.height", t.Character.Height},
		{"character.wide_scale", t.Character.WideScale},
		{"actor.bar_count", t.Actor.BarCount},
		{"combat.popup_fade", t.Combat.PopupFade},
		{"combat.popup_rise", t.Combat.PopupRise},
		{"emitter.frame_rate", t.Emitter.FrameRate},
		{"emitter.sprite_size", t.Emitter.SpriteSize},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", p.key, p.v)
		}
	}
	if t.Character.Gravity < 0 || t.Character.JumpHeight < 0 {
		return fmt.Errorf("config: gravity and jump_height must not be negative")
	}
	return nil
}

// Apply installs t as the live configuration and rebuilds the clip tables.
// It must run before the first frame is drawn.
func (t Tunables) Apply() {
	t.install()
	buildClips(Character.Width, Character.Height, Character.WideScale)
	buildEffectClips(Emitter.SpriteSize)
}

// ApplyLive installs t into a running game. Screen and sprite geometry and
// the bar count keep their current values.
func (t Tunables) ApplyLive() {
	t.Game.Width, t.Game.Height = C.Width, C.Height
	t.Character.Width, t.Character.Height = Character.Width, Character.Height
	t.Character.BoxLeft, t.Character.BoxRight = Character.BoxLeft, Character.BoxRight
	t.Character.BoxTop, t.Character.BoxBottom = Character.BoxTop, Character.BoxBottom
	t.Character.WideScale = Character.WideScale
	t.Actor.BarCount = Actor.BarCount
	t.Emitter.SpriteSize = Emitter.SpriteSize
	t.install()
}

func (t Tunables) install() {
	game := t.Game
	C = &game
	Character = t.Character
	Actor = t.Actor
	Combat = t.Combat
	Enemy = t.Enemy
	Emitter = t.Emitter
	Dialogue = t.Dialogue
	Debug = t.Debug
}

// LoadOverrides reads a YAML override file and applies it. On error the
// live configuration is left untouched.
func LoadOverrides(path string) error {
	t, err := readOverrides(path)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}

// ReloadOverrides re-reads an override file mid-session with ApplyLive.
func ReloadOverrides(path string) error {
	t, err := readOverrides(path)
	if err != nil {
		return err
	}
	t.ApplyLive()
	return nil
}

func readOverrides(path string) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseOverrides(data, CurrentTunables())
	if err != nil {
		return Tunables{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}
