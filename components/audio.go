package components

import (
	cfg "github.com/automoto/jasmine/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// SFXRequest is a queued sound effect. Loops is the number of extra plays.
type SFXRequest struct {
	Sound cfg.SoundID
	Loops int
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context      *audio.Context
	MusicPlayer  *audio.Player
	MusicVolume  float64 // 0.0 - 1.0
	SFXVolume    float64 // 0.0 - 1.0
	CurrentTrack cfg.TrackID
	Muted        bool
	PendingSFX   []SFXRequest
}

var Audio = donburi.NewComponentType[AudioData]()
