package config

// SettingsConfig names the persisted settings store and its defaults.
type SettingsConfig struct {
	AppName     string
	ItemKey     string
	Level       int
	MuteAudio   bool
	MenuVisible bool
}

// Settings is the global persisted-settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:     "jasmine",
		ItemKey:     "settings",
		Level:       0,
		MuteAudio:   true,
		MenuVisible: true,
	}
}
