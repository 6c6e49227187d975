package components

import (
	"image/color"

	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SequenceKind says how a particle sequence ends.
type SequenceKind int

const (
	// SequenceTimed ends once its duration has elapsed.
	SequenceTimed SequenceKind = iota
	// SequenceProjectile ends when its particle reaches the destination.
	SequenceProjectile
)

type Particle struct {
	Effect   cfg.EffectID
	Frame    int
	Color    *color.RGBA // optional tint
	Alpha    uint8
	Scale    float64
	Position math.Vec2
	Velocity math.Vec2
	Speed    float64
}

type ParticleSequence struct {
	Kind        SequenceKind
	Particles   []Particle
	Destination math.Vec2
	Duration    uint32 // ms, timed sequences only
	Timer       clock.Timer
	OnComplete  func()
}

// EmitterData holds the running particle sequences (singleton component).
type EmitterData struct {
	Sequences []*ParticleSequence
}

var Emitter = donburi.NewComponentType[EmitterData]()
