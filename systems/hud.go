package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/jasmine/assets"
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the player's resource bars in the top-left corner and the
// skill bar along the bottom edge.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := PlayerEntry(e)
	if !ok {
		return
	}
	player := components.Actor.Get(playerEntry)

	drawBars(screen, player)
	drawSkillBar(screen, player)
}

func drawBars(screen *ebiten.Image, player *components.ActorData) {
	h := cfg.HUD
	filled := []int{player.HealthBars, player.ManaBars, player.StaminaBars}

	for i, n := range filled {
		if i >= len(h.BarY) || i >= len(h.BarColors) {
			break
		}
		y := float32(h.BarY[i])
		for j := 0; j < cfg.Actor.BarCount; j++ {
			x := float32(h.BarX + j*h.BarSpacing)
			c := h.BarColors[i]
			if j >= n {
				c = color.RGBA{R: 40, G: 40, B: 40, A: 255}
			}
			vector.FillRect(screen, x, y, float32(h.BarWidth), float32(h.BarHeight), c, false)
		}
	}
}

// drawSkillBar draws one slot per skill. Skills the player cannot afford are
// dimmed and cooling down ones are shaded from the top.
func drawSkillBar(screen *ebiten.Image, player *components.ActorData) {
	h := cfg.HUD
	n := len(player.Skills)
	if n == 0 {
		return
	}
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	total := n*h.SlotSize + (n-1)*h.SlotSpacing
	x0 := (width - total) / 2
	y := height - h.SlotBottom - h.SlotSize

	for i := range player.Skills {
		skill := &player.Skills[i]
		x := x0 + i*(h.SlotSize+h.SlotSpacing)

		if icon := assets.Icon(skill.Type); icon != nil {
			hudDrawOp.GeoM.Reset()
			hudDrawOp.ColorScale.Reset()
			iw := icon.Bounds().Dx()
			if iw > 0 {
				s := float64(h.SlotSize) / float64(iw)
				hudDrawOp.GeoM.Scale(s, s)
			}
			hudDrawOp.GeoM.Translate(float64(x), float64(y))
			if skill.ManaRequired > player.Mana {
				hudDrawOp.ColorScale.ScaleAlpha(100.0 / 255)
			}
			screen.DrawImage(icon, hudDrawOp)
		}

		if skill.IsCoolingDown() && skill.Cooldown > 0 {
			left := float32(skill.Cooldown-skill.Elapsed) / float32(skill.Cooldown)
			vector.FillRect(screen, float32(x), float32(y), float32(h.SlotSize), float32(h.SlotSize)*left, cfg.BlackOverlay, false)
		}

		if skill.Type.IsPotion() {
			label := fmt.Sprintf("%d", skill.Count)
			text.Draw(screen, label, fonts.Small.Get(), x+2, y+h.SlotSize-2, cfg.White) //nolint:staticcheck // TODO: migrate to text/v2
		}
	}
}
