package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/automoto/jasmine/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

const (
	characterSheet = "images/characters/character.png"
	landscapeSheet = "images/landscape.png"
	particleSheet  = "images/particles.png"
	portraitSheet  = "images/portraits.png"
	iconSheet      = "images/icons.png"

	iconSize    = 32
	iconColumns = 16
)

// Levels returns the file system level documents are read from. An
// assets folder set in the configuration replaces the embedded levels.
func Levels() fs.FS {
	if config.C != nil && config.C.AssetsFolder != "" {
		return os.DirFS(config.C.AssetsFolder)
	}
	sub, err := fs.Sub(assetFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to open embedded levels: %v", err))
	}
	return sub
}

// ImageLoader decodes embedded sheets and hands out cached frames of them.
type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	tinted     map[config.SpriteID]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
		tinted:     make(map[config.SpriteID]*ebiten.Image),
	}
}

var imageLoader = NewImageLoader()

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// frame returns a cached sub-image of sheet. A rectangle outside the sheet
// yields nil.
func (l *ImageLoader) frame(key string, sheet *ebiten.Image, r image.Rectangle) *ebiten.Image {
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	if !r.In(sheet.Bounds()) {
		return nil
	}
	img := sheet.SubImage(r).(*ebiten.Image)
	l.frameCache[key] = img
	return img
}

// characterSheetFor returns the character sheet coloured for sprite. The
// embedded sheet is greyscale; each sprite gets its own tinted copy.
func (l *ImageLoader) characterSheetFor(sprite config.SpriteID) *ebiten.Image {
	if img, ok := l.tinted[sprite]; ok {
		return img
	}
	base := l.MustLoadImage(characterSheet)
	img := ebiten.NewImage(base.Bounds().Dx(), base.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	if sprite >= 0 && sprite < config.SpriteCount {
		op.ColorScale.ScaleWithColor(config.SpriteTint[sprite])
	}
	img.DrawImage(base, op)
	l.tinted[sprite] = img
	return img
}

// CharacterFrame returns frame of the animation for state, drawn with the
// given sprite's colours.
func CharacterFrame(sprite config.SpriteID, state config.StateID, frame int) *ebiten.Image {
	if state < 0 || state >= config.StateCount {
		return nil
	}
	clips := config.Clips[state]
	if frame < 0 || frame >= len(clips) {
		return nil
	}
	key := fmt.Sprintf("character/%d/%s/%d", sprite, state, frame)
	return imageLoader.frame(key, imageLoader.characterSheetFor(sprite), clips[frame])
}

// Tile returns a landscape tile, or nil for an empty id.
func Tile(id int) *ebiten.Image {
	if id < 0 {
		return nil
	}
	ts := config.Map.TileSize
	col, row := id%config.Map.SheetCols, id/config.Map.SheetCols
	r := image.Rect(col*ts, row*ts, (col+1)*ts, (row+1)*ts)
	return imageLoader.frame(fmt.Sprintf("tile/%d", id), imageLoader.MustLoadImage(landscapeSheet), r)
}

// EffectFrame returns frame of a particle animation.
func EffectFrame(effect config.EffectID, frame int) *ebiten.Image {
	if effect < 0 || effect >= config.EffectCount {
		return nil
	}
	clips := config.EffectClips[effect]
	if frame < 0 || frame >= len(clips) {
		return nil
	}
	key := fmt.Sprintf("effect/%d/%d", effect, frame)
	return imageLoader.frame(key, imageLoader.MustLoadImage(particleSheet), clips[frame])
}

// Portrait returns a narrator's face with the given expression. The
// narrator-less notice voice has none.
func Portrait(narrator config.Narrator, expression config.Expression) *ebiten.Image {
	if narrator < 0 || narrator >= config.NarratorNone {
		return nil
	}
	w, h := config.Dialogue.PortraitWidth, config.Dialogue.PortraitHeight
	x, y := int(expression)*w, int(narrator)*h
	key := fmt.Sprintf("portrait/%d/%d", narrator, expression)
	return imageLoader.frame(key, imageLoader.MustLoadImage(portraitSheet), image.Rect(x, y, x+w, y+h))
}

// Icon returns the skill bar icon of a skill type.
func Icon(t config.SkillType) *ebiten.Image {
	i := int(t)
	if i < 0 {
		return nil
	}
	x, y := (i%iconColumns)*iconSize, (i/iconColumns)*iconSize
	key := fmt.Sprintf("icon/%d", i)
	return imageLoader.frame(key, imageLoader.MustLoadImage(iconSheet), image.Rect(x, y, x+iconSize, y+iconSize))
}
