package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/jasmine/assets"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/automoto/jasmine/systems"
	"github.com/automoto/jasmine/systems/factory"
	"github.com/automoto/jasmine/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is the game itself: the map, its actors and the overlays
// drawn over them.
type WorldScene struct {
	ecs       *ecs.ECS
	saved     systems.SavedSettings
	profileUI *ui.ProfileUI
	once      sync.Once
}

// NewWorldScene creates the scene. saved decides the starting level and
// which overlays are up.
func NewWorldScene(saved systems.SavedSettings) *WorldScene {
	return &WorldScene{saved: saved}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreateOverlay(ws.ecs).ProfileVisible {
		if p, ok := systems.PlayerProfile(ws.ecs); ok {
			ws.profileUI.Refresh(p)
		}
		ws.profileUI.Update()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if systems.GetOrCreateOverlay(ws.ecs).ProfileVisible {
		ws.profileUI.UI.Draw(screen)
	}
}

// Settings returns what should be persisted about the running game.
func (ws *WorldScene) Settings() systems.SavedSettings {
	if ws.ecs == nil {
		return ws.saved
	}
	return systems.CurrentSettings(ws.ecs)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Frame time and input come first; every later system reads them.
	ecs.AddSystem(systems.UpdateFrameTime)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateOverlays)

	// Gameplay systems skip themselves while an overlay is up.
	ecs.AddSystem(systems.UpdatePlayerControl)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateActors)
	ecs.AddSystem(systems.UpdateEmitter)

	ecs.AddSystem(systems.UpdateDialogue)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateTransition)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawTiles)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawParticles)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDialogue)
	ecs.AddRenderer(cfg.Default, systems.DrawMinimap)
	ecs.AddRenderer(cfg.Default, systems.DrawTransition)
	ecs.AddRenderer(cfg.Default, systems.DrawProfileBackdrop)
	ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	ws.ecs = ecs

	factory.CreateClock(ecs, clock.Real)
	factory.CreateSpace(ecs, cfg.Map.PixelWidth(), cfg.Map.PixelHeight(), cfg.Map.TileSize, cfg.Map.TileSize)
	factory.CreateCamera(ecs)
	factory.CreateGrid(ecs)
	factory.CreateLevel(ecs, assets.Levels())

	saved := ws.saved
	if cfg.Debug.SkipMenu {
		saved.MenuVisible = false
	}
	systems.ApplySavedSettings(ecs, saved)

	if err := systems.LoadLevel(ecs, saved.Level); err != nil {
		if saved.Level == 0 {
			log.Fatalf("Failed to load first level: %v", err)
		}
		log.Printf("Warning: %v, starting from level 0", err)
		if err := systems.LoadLevel(ecs, 0); err != nil {
			log.Fatalf("Failed to load first level: %v", err)
		}
	}

	systems.PlayMusic(ecs, cfg.TrackDarkBlue)

	ws.profileUI = ui.NewProfileUI()
}
