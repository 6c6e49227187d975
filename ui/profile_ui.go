package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ProfileUI is the player profile panel shown over the paused game.
type ProfileUI struct {
	UI *ebitenui.UI

	levelLabel   *widget.Label
	goldLabel    *widget.Label
	healthLabel  *widget.Label
	manaLabel    *widget.Label
	staminaLabel *widget.Label
	skillsLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewProfileUI builds the panel. Call Refresh before drawing it.
func NewProfileUI() *ProfileUI {
	pui := &ProfileUI{}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *ProfileUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
	pui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   9,
	}
}

func (pui *ProfileUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 25, 20, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(220, 0),
		),
	)

	title := widget.NewLabel(
		widget.LabelOpts.Text("PROFILE", &pui.titleFace, &widget.LabelColor{
			Idle: cfg.Gold,
		}),
	)
	panel.AddChild(title)

	pui.levelLabel = pui.newStatLabel(panel)
	pui.goldLabel = pui.newStatLabel(panel)
	pui.healthLabel = pui.newStatLabel(panel)
	pui.manaLabel = pui.newStatLabel(panel)
	pui.staminaLabel = pui.newStatLabel(panel)

	pui.skillsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(pui.skillsLabel)

	hint := widget.NewLabel(
		widget.LabelOpts.Text("Press any key to close", &pui.smallFace, &widget.LabelColor{
			Idle: cfg.Gray,
		}),
	)
	panel.AddChild(hint)

	rootContainer.AddChild(panel)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *ProfileUI) newStatLabel(parent *widget.Container) *widget.Label {
	label := widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	parent.AddChild(label)
	return label
}

// Refresh copies a profile snapshot into the labels.
func (pui *ProfileUI) Refresh(p systems.Profile) {
	pui.levelLabel.Label = fmt.Sprintf("Level:   %d", p.Level)
	pui.goldLabel.Label = fmt.Sprintf("Gold:    %d", p.Gold)
	pui.healthLabel.Label = fmt.Sprintf("Health:  %d / %d", p.Health, p.MaxHealth)
	pui.manaLabel.Label = fmt.Sprintf("Mana:    %d / %d", p.Mana, p.MaxMana)
	pui.staminaLabel.Label = fmt.Sprintf("Stamina: %d / %d", p.Stamina, p.MaxStamina)
	pui.skillsLabel.Label = SkillSummary(p.Skills)
}

// SkillSummary lists the skills as "type x count" pairs, a few per line.
func SkillSummary(skills []systems.SkillCount) string {
	var b strings.Builder
	for i, s := range skills {
		switch {
		case i == 0:
		case i%4 == 0:
			b.WriteString("\n")
		default:
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "#%d x%d", int(s.Type), s.Count)
	}
	return b.String()
}

func (pui *ProfileUI) Update() {
	pui.UI.Update()
}
