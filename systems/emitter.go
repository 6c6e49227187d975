package systems

import (
	"github.com/automoto/jasmine/assets"
	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	"github.com/automoto/jasmine/shared/clock"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// AddProjectileEffect launches a particle from origin towards destination.
// onComplete runs once it arrives.
func AddProjectileEffect(e *ecs.ECS, effect cfg.EffectID, origin, destination math.Vec2, onComplete func()) {
	seq := &components.ParticleSequence{
		Kind:        components.SequenceProjectile,
		Destination: destination,
		OnComplete:  onComplete,
		Timer:       clock.NewTimer(ClockSource(e)),
		Particles: []components.Particle{{
			Effect:   effect,
			Position: origin,
			Speed:    cfg.Emitter.ProjectileSpeed,
			Alpha:    255,
			Scale:    1,
		}},
	}
	seq.Timer.Start()

	emitter := GetOrCreateEmitter(e)
	emitter.Sequences = append(emitter.Sequences, seq)
}

// AddTimedEffect plays an effect at origin for duration ms, then runs
// onComplete.
func AddTimedEffect(e *ecs.ECS, effect cfg.EffectID, origin math.Vec2, duration uint32, onComplete func()) {
	seq := &components.ParticleSequence{
		Kind:        components.SequenceTimed,
		Destination: origin,
		Duration:    duration,
		OnComplete:  onComplete,
		Timer:       clock.NewTimer(ClockSource(e)),
		Particles: []components.Particle{{
			Effect:   effect,
			Position: origin,
			Alpha:    255,
			Scale:    1,
		}},
	}
	seq.Timer.Start()

	emitter := GetOrCreateEmitter(e)
	emitter.Sequences = append(emitter.Sequences, seq)
}

// UpdateEmitter moves and animates every particle and retires finished
// sequences. Completion callbacks run after the active list is rebuilt, so
// they are free to add new effects.
func UpdateEmitter(e *ecs.ECS) {
	if IsPaused(e) {
		return
	}
	stepEmitter(GetOrCreateEmitter(e), FrameTicks(e))
}

func stepEmitter(emitter *components.EmitterData, ticks uint32) {
	dt := float64(ticks) / 1000

	var done []*components.ParticleSequence
	active := emitter.Sequences[:0]

	for _, seq := range emitter.Sequences {
		complete := true
		elapsed := seq.Timer.Ticks()

		for i := range seq.Particles {
			p := &seq.Particles[i]

			if seq.Kind == components.SequenceProjectile {
				px, py := int(p.Position.X), int(p.Position.Y)
				dx, dy := int(seq.Destination.X), int(seq.Destination.Y)

				if px != dx || py != dy {
					complete = false
				}

				if p.Speed*dt >= 1 {
					// One step would carry it past the destination.
					p.Velocity = math.Vec2{}
					p.Position = seq.Destination
				} else {
					p.Velocity = math.Vec2{
						X: float64(dx-px) * p.Speed,
						Y: float64(dy-py) * p.Speed,
					}
					p.Position.X += p.Velocity.X * dt
					p.Position.Y += p.Velocity.Y * dt
				}
			}

			p.Frame = int(elapsed) * cfg.Emitter.FrameRate / 1000 % cfg.EffectFrameCount(p.Effect)
		}

		if seq.Kind == components.SequenceTimed && elapsed < seq.Duration {
			complete = false
		}

		if complete {
			done = append(done, seq)
		} else {
			active = append(active, seq)
		}
	}

	// Drop references held past the new end of the slice.
	for i := len(active); i < len(emitter.Sequences); i++ {
		emitter.Sequences[i] = nil
	}
	emitter.Sequences = active

	for _, seq := range done {
		if seq.OnComplete != nil {
			seq.OnComplete()
		}
	}
}

// DrawParticles renders every particle centred on its position, plus a
// translucent marker on each sequence's destination tile.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	emitter := GetOrCreateEmitter(e)
	cam := GetOrCreateCamera(e)
	size := float64(cfg.Emitter.SpriteSize)
	ts := float32(cfg.Map.TileSize)

	for _, seq := range emitter.Sequences {
		for _, p := range seq.Particles {
			frame := assets.EffectFrame(p.Effect, p.Frame)
			if frame == nil {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(p.Scale, p.Scale)
			op.GeoM.Translate(
				p.Position.X-size/2-float64(cam.X),
				p.Position.Y-size/2-float64(cam.Y),
			)
			if p.Color != nil {
				op.ColorScale.ScaleWithColor(*p.Color)
			}
			op.ColorScale.ScaleAlpha(float32(p.Alpha) / 255)
			screen.DrawImage(frame, op)
		}

		x := float32(seq.Destination.X) - float32(cam.X) - ts/2
		y := float32(seq.Destination.Y) - float32(cam.Y)
		vector.FillRect(screen, x, y, ts, ts, cfg.Emitter.MarkerColor, false)
	}
}

// GetOrCreateEmitter returns the singleton particle sequencer.
func GetOrCreateEmitter(e *ecs.ECS) *components.EmitterData {
	entry, ok := components.Emitter.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Emitter))
	}
	return components.Emitter.Get(entry)
}
