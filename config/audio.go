package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFootstep
	SoundKnifeSlice
	SoundCoins
	SoundDoorOpen
	// UI sounds
	SoundBookOpen
	SoundMetalClick
)

// TrackID represents a background music track
type TrackID int

const (
	TrackDarkBlue TrackID = iota
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Tracks            map[TrackID]string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		Tracks: map[TrackID]string{
			TrackDarkBlue: "audio/music/dark_blue.wav",
		},
		SFXPaths: map[SoundID]string{
			SoundFootstep:   "audio/sfx/footstep02.wav",
			SoundKnifeSlice: "audio/sfx/knife_slice2.wav",
			SoundCoins:      "audio/sfx/handle_coins.wav",
			SoundDoorOpen:   "audio/sfx/door_open_1.wav",
			SoundBookOpen:   "audio/sfx/book_open.wav",
			SoundMetalClick: "audio/sfx/metal_click.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundFootstep: 0.6,
		},
	}
}
