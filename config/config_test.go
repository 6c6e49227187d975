package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseOverrides(t *testing.T) {
	base := CurrentTunables()

	got, err := ParseOverrides([]byte("actor:\n  speed: 20\nenemy:\n  aggressive: false\n"), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Actor.Speed != 20 || got.Enemy.Aggressive {
		t.Errorf("expected the overrides applied, got speed %v aggressive %v", got.Actor.Speed, got.Enemy.Aggressive)
	}
	if got.Actor.Health != base.Actor.Health || got.Game.FrameRate != base.Game.FrameRate {
		t.Error("expected keys left out to keep their values")
	}
	if base.Actor.Speed == 20 {
		t.Error("expected the base to be left alone")
	}
}

func TestParseOverridesRejects(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not_yaml", "actor: [speed"},
		{"zero_frame_rate", "game:\n  frame_rate: 0\n"},
		{"zero_slow_fps", "game:\n  slow_fps: 0\n"},
		{"zero_width", "game:\n  width: 0\n"},
		{"no_bars", "actor:\n  bar_count: -1\n"},
		{"zero_popup_rise", "combat:\n  popup_rise: 0\n"},
		{"zero_popup_fade", "combat:\n  popup_fade: 0\n"},
		{"zero_effect_rate", "emitter:\n  frame_rate: 0\n"},
		{"zero_sprite_size", "emitter:\n  sprite_size: 0\n"},
		{"zero_character_height", "character:\n  height: 0\n"},
		{"negative_gravity", "character:\n  gravity: -1\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			base := CurrentTunables()
			got, err := ParseOverrides([]byte(c.data), base)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got != base {
				t.Error("expected the base back on error")
			}
		})
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	before := Actor
	if err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if Actor != before {
		t.Error("expected the live configuration untouched")
	}
}

func TestLoadOverridesApplies(t *testing.T) {
	saved := CurrentTunables()
	t.Cleanup(saved.Apply)

	path := filepath.Join(t.TempDir(), "jasmine.yaml")
	if err := os.WriteFile(path, []byte("combat:\n  popup_fade: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadOverrides(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Combat.PopupFade != 5 {
		t.Errorf("expected popup fade 5, got %d", Combat.PopupFade)
	}
	if C.Title != saved.Game.Title {
		t.Errorf("expected the title kept, got %q", C.Title)
	}
}

func TestReloadOverridesKeepsGeometry(t *testing.T) {
	saved := CurrentTunables()
	t.Cleanup(saved.Apply)
	clip := Clips[WalkDown][1]

	path := filepath.Join(t.TempDir(), "jasmine.yaml")
	doc := "game:\n  width: 640\ncharacter:\n  width: 32\n  gravity: 20\nactor:\n  bar_count: 20\n  speed: 30\nemitter:\n  sprite_size: 16\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ReloadOverrides(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Actor.Speed != 30 || Character.Gravity != 20 {
		t.Errorf("expected the tunables applied, got speed %v gravity %v", Actor.Speed, Character.Gravity)
	}
	if C.Width != saved.Game.Width || Character.Width != saved.Character.Width ||
		Actor.BarCount != saved.Actor.BarCount || Emitter.SpriteSize != saved.Emitter.SpriteSize {
		t.Errorf("expected geometry and bar count kept, got width %d char %d bars %d sprite %d",
			C.Width, Character.Width, Actor.BarCount, Emitter.SpriteSize)
	}
	if Clips[WalkDown][1] != clip {
		t.Errorf("expected the clip tables untouched, got %v", Clips[WalkDown][1])
	}
}

func TestReloadOverridesRejectsZeroRise(t *testing.T) {
	saved := CurrentTunables()
	t.Cleanup(saved.Apply)

	path := filepath.Join(t.TempDir(), "jasmine.yaml")
	if err := os.WriteFile(path, []byte("combat:\n  popup_rise: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ReloadOverrides(path); err == nil {
		t.Fatal("expected an error")
	}
	if Combat.PopupRise != saved.Combat.PopupRise {
		t.Errorf("expected popup rise kept at %d, got %d", saved.Combat.PopupRise, Combat.PopupRise)
	}
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jasmine.yaml")
	if err := os.WriteFile(path, []byte("actor:\n  speed: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	// Other files in the directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("actor:\n  speed: 14\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "jasmine.yaml" {
			t.Errorf("expected an event for jasmine.yaml, got %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change event")
	}

	if err := w.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("expected a second close to be a no-op, got %v", err)
	}
}

func TestEnterLevelNotice(t *testing.T) {
	cases := []struct {
		level  int
		want   Notice
		wantOK bool
	}{
		{0, NoticeEnterLevel0, true},
		{3, NoticeEnterLevel3, true},
		{5, NoticeEnterLevel5, true},
		{6, NoNotice, false},
		{-1, NoNotice, false},
	}
	for _, c := range cases {
		got, ok := EnterLevelNotice(c.level)
		if got != c.want || ok != c.wantOK {
			t.Errorf("level %d: expected %v %v, got %v %v", c.level, c.want, c.wantOK, got, ok)
		}
	}
	if NoNotice.Text() != "" {
		t.Error("expected no text for NoNotice")
	}
}

func TestTiles(t *testing.T) {
	cases := []struct {
		id         int
		gold, door bool
	}{
		{295, true, false},
		{439, true, false},
		{3004, false, true},
		{3035, false, true},
		{100, false, false},
		{-1, false, false},
	}
	for _, c := range cases {
		if IsGoldBar(c.id) != c.gold || IsDoor(c.id) != c.door {
			t.Errorf("tile %d: expected gold=%v door=%v", c.id, c.gold, c.door)
		}
	}
}

func TestStateFor(t *testing.T) {
	cases := []struct {
		action Action
		facing Direction
		want   StateID
	}{
		{ActionWalk, DirUp, WalkUp},
		{ActionWalk, DirLeft, WalkLeft},
		{ActionWalk, DirDown, WalkDown},
		{ActionWalk, DirRight, WalkRight},
		{ActionWideSlash, DirDown, WideSlashDown},
		{ActionOpenArms, DirLeft, OpenArmsLeft},
		{ActionFall, DirRight, Fall},
	}
	for _, c := range cases {
		if got := StateFor(c.action, c.facing); got != c.want {
			t.Errorf("action %d facing %d: expected %v, got %v", c.action, c.facing, c.want, got)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	for d, want := range map[Direction]Direction{DirLeft: DirRight, DirRight: DirLeft, DirUp: DirDown, DirDown: DirUp} {
		if got := d.Opposite(); got != want {
			t.Errorf("expected %d opposite %d, got %d", d, want, got)
		}
	}
	if !DirLeft.Horizontal() || DirUp.Horizontal() {
		t.Error("expected only left and right to be horizontal")
	}
}

func TestParseSprite(t *testing.T) {
	cases := map[string]SpriteID{
		"0":   SpritePlayer,
		"1":   SpriteBoarMan,
		"2":   SpriteBoarManGuardian,
		"3":   SpriteBoarManBoss,
		"4":   SpritePlayer,
		"-1":  SpritePlayer,
		"":    SpritePlayer,
		"boar": SpritePlayer,
	}
	for in, want := range cases {
		if got := ParseSprite(in); got != want {
			t.Errorf("%q: expected %d, got %d", in, want, got)
		}
	}
}

func TestDefFor(t *testing.T) {
	potion := DefFor(Potion147)
	if potion.Behavior != Defensive || potion.ManaRequired != 0 || potion.Cooldown != 500 {
		t.Errorf("expected a free defensive potion with 500 ms cooldown, got %+v", potion)
	}
	fire := DefFor(FireMagic253)
	if fire.Behavior != Offensive || fire.ManaRequired != 100 || fire.Cooldown != 1000 {
		t.Errorf("expected an offensive spell costing 100 mana, got %+v", fire)
	}
}
