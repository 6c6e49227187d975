package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Level       int  `json:"level"`
	MuteAudio   bool `json:"muteAudio"`
	MenuVisible bool `json:"menuVisible"`
}

// DefaultSettings is what a first run starts with.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		Level:       cfg.Settings.Level,
		MuteAudio:   cfg.Settings.MuteAudio,
		MenuVisible: cfg.Settings.MenuVisible,
	}
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. Anything missing or unreadable
// yields the defaults.
func LoadSettings() SavedSettings {
	if gdataManager == nil {
		return DefaultSettings()
	}

	data, err := gdataManager.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return DefaultSettings()
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) SavedSettings {
	settings := DefaultSettings()
	if len(data) == 0 {
		// No saved settings yet
		return settings
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return DefaultSettings()
	}
	return settings
}

// SaveSettings saves settings to disk
func SaveSettings(s SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the settings worth keeping from a running world.
func CurrentSettings(e *ecs.ECS) SavedSettings {
	s := DefaultSettings()
	if entry, ok := components.Level.First(e.World); ok {
		s.Level = components.Level.Get(entry).Index
	}
	if entry, ok := components.Audio.First(e.World); ok {
		s.MuteAudio = components.Audio.Get(entry).Muted
	}
	if entry, ok := components.Overlay.First(e.World); ok {
		s.MenuVisible = components.Overlay.Get(entry).MenuVisible
	}
	return s
}

// ApplySavedSettings pushes loaded settings into the world. The level itself
// is loaded by the caller.
func ApplySavedSettings(e *ecs.ECS, saved SavedSettings) {
	GetOrCreateAudio(e).Muted = saved.MuteAudio
	overlay := GetOrCreateOverlay(e)
	overlay.MenuVisible = saved.MenuVisible
	if overlay.MenuVisible {
		PauseDialogue(e)
	}
}
