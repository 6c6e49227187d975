package systems

import (
	"testing"

	cfg "github.com/automoto/jasmine/config"
)

func TestDecodeSettings(t *testing.T) {
	defaults := DefaultSettings()
	cases := []struct {
		name string
		data string
		want SavedSettings
	}{
		{"empty", "", defaults},
		{"partial", `{"level": 2}`, SavedSettings{Level: 2, MuteAudio: defaults.MuteAudio, MenuVisible: defaults.MenuVisible}},
		{"full", `{"level": 1, "muteAudio": false, "menuVisible": false}`, SavedSettings{Level: 1}},
		{"garbage", `{"level": `, defaults},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := decodeSettings([]byte(c.data)); got != c.want {
				t.Errorf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	got := DefaultSettings()
	if got.Level != 0 || !got.MuteAudio || !got.MenuVisible {
		t.Errorf("expected level 0, muted, menu shown; got %+v", got)
	}
	if got.Level != cfg.Settings.Level {
		t.Errorf("expected the configured start level %d, got %d", cfg.Settings.Level, got.Level)
	}
}

func TestSettingsRoundTripThroughWorld(t *testing.T) {
	e, _ := newTestWorld(t)
	PlayExchange(e, cfg.ExchangeTutorial0)

	ApplySavedSettings(e, SavedSettings{Level: 1, MuteAudio: false, MenuVisible: true})

	if GetOrCreateAudio(e).Muted {
		t.Error("expected audio to be unmuted")
	}
	if !GetOrCreateOverlay(e).MenuVisible || !GetOrCreateDialogue(e).Timer.Paused() {
		t.Error("expected the menu up with dialogue paused")
	}

	GetOrCreateLevel(e).Index = 1
	got := CurrentSettings(e)
	want := SavedSettings{Level: 1, MuteAudio: false, MenuVisible: true}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
