package systems

import (
	"log"
	"sync"

	"github.com/automoto/jasmine/assets"
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all worlds
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: Could not preload %s: %v", path, err)
		}
	}
}

// UpdateAudio plays every queued sound effect. Requests made while muted are
// dropped.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	pending := audioData.PendingSFX
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if audioData.Muted || len(pending) == 0 {
		return
	}

	initGlobalAudio()
	audioData.Context = globalAudioContext
	for _, req := range pending {
		playSFX(audioData, req)
	}
}

func playSFX(audioData *components.AudioData, req components.SFXRequest) {
	if audioData.SFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[req.Sound]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path, req.Loops)
	if err != nil {
		log.Printf("Warning: Could not play %s: %v", path, err)
		return
	}

	volume := audioData.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[req.Sound]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect, played loops extra times.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID, loops int) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, components.SFXRequest{Sound: sound, Loops: loops})
}

// PlayMusic starts the looping background track. Starting the track already
// playing is a no-op.
func PlayMusic(e *ecs.ECS, track cfg.TrackID) {
	audioData := GetOrCreateAudio(e)
	if audioData.MusicPlayer != nil && audioData.CurrentTrack == track {
		return
	}

	path, ok := cfg.Sound.Tracks[track]
	if !ok {
		return
	}

	initGlobalAudio()
	audioData.Context = globalAudioContext

	if audioData.MusicPlayer != nil {
		_ = audioData.MusicPlayer.Close()
		audioData.MusicPlayer = nil
	}

	player, err := globalAudioLoader.LoadMusic(path)
	if err != nil {
		log.Printf("Warning: Could not load music %s: %v", path, err)
		return
	}

	player.SetVolume(audioData.MusicVolume)
	if !audioData.Muted {
		player.Play()
	}

	audioData.MusicPlayer = player
	audioData.CurrentTrack = track
}

// ToggleMute flips the mute flag, pausing or resuming the music with it.
func ToggleMute(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	audioData.Muted = !audioData.Muted

	if audioData.MusicPlayer == nil {
		return
	}
	if audioData.Muted {
		audioData.MusicPlayer.Pause()
	} else {
		audioData.MusicPlayer.Play()
	}
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed.
// The audio device is only opened once something is actually played.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			MusicVolume: cfg.Audio.DefaultMusicVol,
			SFXVolume:   cfg.Audio.DefaultSFXVol,
			PendingSFX:  make([]components.SFXRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
