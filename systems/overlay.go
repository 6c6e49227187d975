package systems

import (
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOverlays opens and closes the menu and profile overlays.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdateOverlays(e *ecs.ECS) {
	overlay := GetOrCreateOverlay(e)
	input := getOrCreateInput(e)

	if overlay.MenuVisible {
		PauseDialogue(e)
		if input.Clicked {
			overlay.MenuVisible = false
			input.Clicked = false // the closing click does not walk
			ResumeDialogue(e)
		}
		return
	}

	if overlay.ProfileVisible {
		if input.Clicked || anyJustReleased(input) {
			overlay.ProfileVisible = false
			input.Clicked = false
		}
		return
	}

	if GetAction(input, cfg.ActionMenu).JustReleased {
		overlay.MenuVisible = true
		PauseDialogue(e)
		PlaySFX(e, cfg.SoundBookOpen, 0)
	}
	if GetAction(input, cfg.ActionProfile).JustReleased {
		overlay.ProfileVisible = true
		PlaySFX(e, cfg.SoundBookOpen, 0)
	}
}

func anyJustReleased(input *components.InputData) bool {
	for id := cfg.ActionID(0); id < cfg.ActionCount; id++ {
		if GetAction(input, id).JustReleased {
			return true
		}
	}
	return false
}

// IsPaused reports whether an overlay is suspending play.
func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		return false
	}
	return components.Overlay.Get(entry).Paused()
}

// DrawMenu renders the title screen while the menu is up.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	overlay := GetOrCreateOverlay(e)
	if !overlay.MenuVisible {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Black, false)

	titleFont := fonts.Title.Get()
	title := cfg.C.Title
	bounds := text.BoundString(titleFont, title) //nolint:staticcheck // TODO: migrate to text/v2
	x := (int(width) - bounds.Dx()) / 2
	y := int(height)/2 - 10
	text.Draw(screen, title, titleFont, x, y, cfg.White) //nolint:staticcheck // TODO: migrate to text/v2

	hintFont := fonts.Small.Get()
	hint := "Click anywhere to play"
	bounds = text.BoundString(hintFont, hint) //nolint:staticcheck // TODO: migrate to text/v2
	x = (int(width) - bounds.Dx()) / 2
	text.Draw(screen, hint, hintFont, x, y+24, cfg.Gray) //nolint:staticcheck // TODO: migrate to text/v2
}

// DrawProfileBackdrop dims the world behind the profile panel.
func DrawProfileBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	overlay := GetOrCreateOverlay(e)
	if !overlay.ProfileVisible {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)
}

// GetOrCreateOverlay returns the singleton overlay state.
func GetOrCreateOverlay(e *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Overlay))
	}
	return components.Overlay.Get(entry)
}
