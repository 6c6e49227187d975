package config

import "image"

// Clips holds the sprite sheet rectangles for every animation state, indexed
// by StateID. Rebuilt whenever the character geometry changes.
var Clips [StateCount][]image.Rectangle

var stateFrames = [StateCount]int{
	7, 7, 7, 7,     // open arms
	8, 8, 8, 8,     // spear
	9, 9, 9, 9,     // walk
	6, 6, 6, 6,     // slash
	13, 13, 13, 13, // arrow
	6,              // fall
	6, 6, 6, 6,     // wide slash
}

// FrameCount returns the number of frames in a state's animation.
func FrameCount(s StateID) int {
	if s < 0 || s >= StateCount {
		return 1
	}
	return len(Clips[s])
}

func buildClips(w, h, wideScale int) {
	for s := StateID(0); s < StateCount; s++ {
		frames := make([]image.Rectangle, stateFrames[s])
		if s.IsWide() {
			ww, wh := w*wideScale, h*wideScale
			y := h*int(WideSlashUp) + int(s-WideSlashUp)*wh
			for i := range frames {
				frames[i] = image.Rect(i*ww, y, (i+1)*ww, y+wh)
			}
		} else {
			y := h * int(s)
			for i := range frames {
				frames[i] = image.Rect(i*w, y, (i+1)*w, y+h)
			}
		}
		Clips[s] = frames
	}
}

// SheetSize returns the pixel size of a character sprite sheet laid out like
// Clips.
func SheetSize() (int, int) {
	var maxX, maxY int
	for _, frames := range Clips {
		for _, r := range frames {
			maxX = max(maxX, r.Max.X)
			maxY = max(maxY, r.Max.Y)
		}
	}
	return maxX, maxY
}
