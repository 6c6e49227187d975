package config

import "image"

// EffectID selects a particle animation.
type EffectID int

const (
	EffectGas EffectID = iota
	EffectMagicCircle
	EffectFireBall
	EffectCount
)

// effectLayout places each animation on the particle sheet: the first
// row, the frames per row and the total frame count.
var effectLayout = [EffectCount]struct{ row, columns, frames int }{
	EffectGas:         {row: 70, columns: 6, frames: 6 * 5},
	EffectMagicCircle: {row: 32, columns: 5, frames: 8 * 5},
	EffectFireBall:    {row: 32, columns: 5, frames: 8 * 5},
}

// EffectClips holds the particle sheet rectangles of every effect.
var EffectClips [EffectCount][]image.Rectangle

// EffectFrameCount returns the number of frames in an effect's animation.
func EffectFrameCount(e EffectID) int {
	if e < 0 || e >= EffectCount {
		return 1
	}
	return len(EffectClips[e])
}

func buildEffectClips(size int) {
	for e := EffectID(0); e < EffectCount; e++ {
		l := effectLayout[e]
		frames := make([]image.Rectangle, l.frames)
		for i := range frames {
			x := (i % l.columns) * size
			y := (l.row + i/l.columns) * size
			frames[i] = image.Rect(x, y, x+size, y+size)
		}
		EffectClips[e] = frames
	}
}

// EffectSheetSize returns the pixel size of a particle sheet laid out like
// EffectClips.
func EffectSheetSize() (int, int) {
	var maxX, maxY int
	for _, frames := range EffectClips {
		for _, r := range frames {
			maxX = max(maxX, r.Max.X)
			maxY = max(maxY, r.Max.Y)
		}
	}
	return maxX, maxY
}
