package config

import (
	"image/color"
	"strconv"
)

// SpriteID selects a character sprite sheet.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpriteBoarMan
	SpriteBoarManGuardian
	SpriteBoarManBoss
	SpriteCount
)

// SpriteTint is the base colour of each placeholder character sheet.
var SpriteTint = [SpriteCount]color.RGBA{
	SpritePlayer:          {R: 70, G: 130, B: 220, A: 255},
	SpriteBoarMan:         {R: 150, G: 100, B: 60, A: 255},
	SpriteBoarManGuardian: {R: 110, G: 110, B: 130, A: 255},
	SpriteBoarManBoss:     {R: 170, G: 40, B: 40, A: 255},
}

// ParseSprite reads a sprite id from a level object's type field.
// Unknown values fall back to the player sheet, like an unset sprite.
func ParseSprite(s string) SpriteID {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= int(SpriteCount) {
		return SpritePlayer
	}
	return SpriteID(n)
}
