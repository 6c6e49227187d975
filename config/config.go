package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every renderer is registered on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Title        string `yaml:"title"`
	Version      string `yaml:"version"`
	Width        int    `yaml:"width"` // logical screen size
	Height       int    `yaml:"height"`
	WindowScale  int    `yaml:"window_scale"`
	FrameRate    int    `yaml:"frame_rate"`
	SlowFPS      int    `yaml:"slow_fps"`
	FastFPS      int    `yaml:"fast_fps"`
	AssetsFolder string `yaml:"assets_folder"` // optional on-disk override for embedded assets
}

// MapConfig describes the fixed tile grid every level is loaded into.
type MapConfig struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	TileSize  int `yaml:"tile_size"`
	SheetCols int `yaml:"sheet_cols"` // tiles per row in the landscape sprite sheet
	SheetRows int `yaml:"sheet_rows"`
}

// PixelWidth is the width of the whole map in pixels.
func (m MapConfig) PixelWidth() int { return m.Cols * m.TileSize }

// PixelHeight is the height of the whole map in pixels.
func (m MapConfig) PixelHeight() int { return m.Rows * m.TileSize }

// CharacterConfig holds sprite geometry shared by every actor.
type CharacterConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Bounding box offsets from the sprite's top-left corner.
	BoxLeft   int `yaml:"box_left"`
	BoxRight  int `yaml:"box_right"`
	BoxTop    int `yaml:"box_top"`
	BoxBottom int `yaml:"box_bottom"`

	WideScale  int     `yaml:"wide_scale"` // wide-slash frames are this many sprites wide and tall
	Gravity    float64 `yaml:"gravity"`
	JumpHeight float64 `yaml:"jump_height"`
}

// ActorConfig holds the starting stats and tunables of a new actor.
type ActorConfig struct {
	Health   int `yaml:"health"`
	Mana     int `yaml:"mana"`
	Stamina  int `yaml:"stamina"`
	BarCount int `yaml:"bar_count"`

	Speed    float64 `yaml:"speed"`
	MaxSpeed float64 `yaml:"max_speed"`

	AnimationRate     int `yaml:"animation_rate"` // frames per second
	JumpAnimationRate int `yaml:"jump_animation_rate"`

	LongRange   int `yaml:"long_range"`  // tiles
	ShortRange  int `yaml:"short_range"` // tiles
	AttackPower int `yaml:"attack_power"`

	AttackInterval uint32 `yaml:"attack_interval"` // ms between swings
}

// CombatConfig holds damage popup and skill effect values.
type CombatConfig struct {
	PopupFade        int        `yaml:"popup_fade"` // alpha lost per frame
	PopupRise        int        `yaml:"popup_rise"` // alpha units per pixel of upward drift
	PopupMinScale    float64    `yaml:"popup_min_scale"`
	PopupMaxScale    float64    `yaml:"popup_max_scale"`
	PopupMaxRotation int        `yaml:"popup_max_rotation"` // degrees, exclusive
	PopupColor       color.RGBA `yaml:"popup_color"`

	ProjectileDamage int    `yaml:"projectile_damage"`
	SpellDuration    uint32 `yaml:"spell_duration"` // ms a timed spell effect lingers before it hits
	PotionRestore    int    `yaml:"potion_restore"`
}

// EnemyConfig holds the enemy AI tunables.
type EnemyConfig struct {
	Aggressive     bool   `yaml:"aggressive"`
	ReplanInterval uint32 `yaml:"replan_interval"` // ms between path re-plans while chasing
}

// EmitterConfig holds particle sequencer values.
type EmitterConfig struct {
	ProjectileSpeed float64    `yaml:"projectile_speed"`
	FrameRate       int        `yaml:"frame_rate"` // frames per second
	SpriteSize      int        `yaml:"sprite_size"`
	MarkerColor     color.RGBA `yaml:"marker_color"`
}

// DialogueConfig holds dialogue overlay values.
type DialogueConfig struct {
	LineDuration   uint32     `yaml:"line_duration"` // ms each line stays on screen
	BoxHeight      int        `yaml:"box_height"`
	BoxColor       color.RGBA `yaml:"box_color"`
	TextColor      color.RGBA `yaml:"text_color"`
	NarratorColor  color.RGBA `yaml:"narrator_color"`
	TextBaseline   int        `yaml:"text_baseline"` // distance from the bottom of the screen
	PortraitWidth  int        `yaml:"portrait_width"`
	PortraitHeight int        `yaml:"portrait_height"`
}

// MinimapConfig describes the minimap inset in the top-right corner.
// X offsets are measured from the right edge of the screen.
type MinimapConfig struct {
	Scale       int
	DotSize     int
	OriginRight int // screen x of the camera origin is W-OriginRight
	OriginY     int
	ClipLeft    int // dots are kept strictly inside (W-ClipLeft, W-ClipRight)
	ClipRight   int
	ClipTop     int // and strictly inside (ClipTop, ClipBottom)
	ClipBottom  int
	PlayerColor color.RGBA
	OtherColor  color.RGBA
	FrameColor  color.RGBA
}

// TransitionConfig controls the fade shown when a level starts.
type TransitionConfig struct {
	Duration float32 // seconds
}

// HUDConfig places the resource bars and skill slots.
type HUDConfig struct {
	BarX        int
	BarY        []int // health, mana, stamina
	BarWidth    int
	BarHeight   int
	BarSpacing  int
	SlotSize    int
	SlotSpacing int
	SlotBottom  int
	BarColors   []color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool `yaml:"skip_menu"`
	ShowRanges bool `yaml:"show_ranges"`
}

// Global configuration instances
var C *Config
var Map MapConfig
var Character CharacterConfig
var Actor ActorConfig
var Combat CombatConfig
var Enemy EnemyConfig
var Emitter EmitterConfig
var Dialogue DialogueConfig
var Minimap MinimapConfig
var Transition TransitionConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 128}
	DialogueBox  = color.RGBA{R: 0, G: 0, B: 0, A: 225}
)

func init() {
	C = &Config{
		Title:       "Jasmine",
		Version:     "0.0.1",
		Width:       480,
		Height:      270,
		WindowScale: 3,
		FrameRate:   30,
		SlowFPS:     15,
		FastFPS:     60,
	}

	Map = MapConfig{
		Rows:      100,
		Cols:      100,
		TileSize:  32,
		SheetCols: 48,
		SheetRows: 91,
	}

	Character = CharacterConfig{
		Width:     64,
		Height:    64,
		BoxLeft:   16,
		BoxRight:  64 - 16,
		BoxTop:    64 / 2,
		BoxBottom: 64,
		WideScale: 3,
		Gravity:   9.81,
	}
	Character.JumpHeight = float64(Character.Height * 10)
	buildClips(Character.Width, Character.Height, Character.WideScale)

	Actor = ActorConfig{
		Health:            1000,
		Mana:              1000,
		Stamina:           1000,
		BarCount:          14,
		Speed:             12,
		MaxSpeed:          244,
		AnimationRate:     16,
		JumpAnimationRate: 60,
		LongRange:         10,
		ShortRange:        3,
		AttackPower:       100,
		AttackInterval:    1000,
	}

	Combat = CombatConfig{
		PopupFade:        15,
		PopupRise:        10,
		PopupMinScale:    1.0,
		PopupMaxScale:    2.0,
		PopupMaxRotation: 20,
		PopupColor:       White,
		ProjectileDamage: 100000000,
		SpellDuration:    1000,
		PotionRestore:    250,
	}

	Enemy = EnemyConfig{
		Aggressive:     true,
		ReplanInterval: 1000,
	}

	Emitter = EmitterConfig{
		ProjectileSpeed: 2.0,
		FrameRate:       60,
		SpriteSize:      64,
		MarkerColor:     color.RGBA{R: 255, G: 0, B: 0, A: 50},
	}
	buildEffectClips(Emitter.SpriteSize)

	Dialogue = DialogueConfig{
		LineDuration:   5000,
		BoxHeight:      72,
		BoxColor:       DialogueBox,
		TextColor:      White,
		NarratorColor:  Yellow,
		TextBaseline:   30,
		PortraitWidth:  56,
		PortraitHeight: 72,
	}

	Minimap = MinimapConfig{
		Scale:       20,
		DotSize:     2,
		OriginRight: 90,
		OriginY:     70,
		ClipLeft:    110,
		ClipRight:   50,
		ClipTop:     40,
		ClipBottom:  100,
		PlayerColor: Green,
		OtherColor:  Red,
		FrameColor:  color.RGBA{R: 20, G: 20, B: 30, A: 200},
	}

	Transition = TransitionConfig{
		Duration: 1.0,
	}

	HUD = HUDConfig{
		BarX:        24,
		BarY:        []int{8, 18, 28},
		BarWidth:    7,
		BarHeight:   8,
		BarSpacing:  9,
		SlotSize:    24,
		SlotSpacing: 4,
		SlotBottom:  6,
		BarColors: []color.RGBA{
			{R: 200, G: 40, B: 40, A: 255},
			{R: 40, G: 90, B: 220, A: 255},
			{R: 60, G: 180, B: 60, A: 255},
		},
	}
}
