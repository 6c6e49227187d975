package systems

import (
	"math"
	"testing"

	"github.com/automoto/jasmine/components"
	cfg "github.com/automoto/jasmine/config"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestTimedEffect(t *testing.T) {
	e, src := newTestWorld(t)
	var calls int
	AddTimedEffect(e, cfg.EffectMagicCircle, dmath.Vec2{X: 100, Y: 100}, 1000, func() { calls++ })
	emitter := GetOrCreateEmitter(e)
	if emitter.Sequences[0].Kind != components.SequenceTimed {
		t.Fatalf("expected a timed sequence, got kind %d", emitter.Sequences[0].Kind)
	}

	src.AdvanceMillis(500)
	stepEmitter(emitter, 500)
	if calls != 0 || len(emitter.Sequences) != 1 {
		t.Fatalf("expected the effect to still run at 500 ms, got calls=%d sequences=%d", calls, len(emitter.Sequences))
	}

	src.AdvanceMillis(500)
	stepEmitter(emitter, 500)
	if calls != 1 {
		t.Errorf("expected one completion, got %d", calls)
	}
	if len(emitter.Sequences) != 0 {
		t.Errorf("expected no sequences left, got %d", len(emitter.Sequences))
	}

	stepEmitter(emitter, 500)
	if calls != 1 {
		t.Errorf("expected completion to run once, got %d", calls)
	}
}

func TestEffectFrame(t *testing.T) {
	cases := []struct {
		name    string
		effect  cfg.EffectID
		elapsed int
		want    int
	}{
		{"start", cfg.EffectGas, 0, 0},
		{"100ms", cfg.EffectGas, 100, 6},
		{"wraps", cfg.EffectGas, 600, 36 % 30},
		{"circle", cfg.EffectMagicCircle, 250, 15},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, src := newTestWorld(t)
			AddTimedEffect(e, c.effect, dmath.Vec2{}, 10000, nil)
			emitter := GetOrCreateEmitter(e)

			src.AdvanceMillis(c.elapsed)
			stepEmitter(emitter, 16)

			if got := emitter.Sequences[0].Particles[0].Frame; got != c.want {
				t.Errorf("expected frame %d, got %d", c.want, got)
			}
		})
	}
}

func TestProjectileMovesTowardsDestination(t *testing.T) {
	e, _ := newTestWorld(t)
	AddProjectileEffect(e, cfg.EffectGas, dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{X: 100, Y: 50}, nil)
	emitter := GetOrCreateEmitter(e)

	stepEmitter(emitter, 100)

	p := emitter.Sequences[0].Particles[0]
	// velocity = distance * speed, over 0.1 s
	if math.Abs(p.Position.X-20) > 1e-9 || math.Abs(p.Position.Y-10) > 1e-9 {
		t.Errorf("expected (20, 10), got (%v, %v)", p.Position.X, p.Position.Y)
	}
	if p.Velocity.X != 200 || p.Velocity.Y != 100 {
		t.Errorf("expected velocity (200, 100), got (%v, %v)", p.Velocity.X, p.Velocity.Y)
	}
}

func TestProjectileCompletes(t *testing.T) {
	e, _ := newTestWorld(t)
	var calls int
	AddProjectileEffect(e, cfg.EffectGas, dmath.Vec2{X: 10, Y: 10}, dmath.Vec2{X: 12, Y: 10}, func() { calls++ })
	emitter := GetOrCreateEmitter(e)

	for i := 0; i < 200 && len(emitter.Sequences) > 0; i++ {
		stepEmitter(emitter, 33)
	}

	if calls != 1 {
		t.Errorf("expected one completion, got %d", calls)
	}
	if len(emitter.Sequences) != 0 {
		t.Errorf("expected the projectile to retire, got %d sequences", len(emitter.Sequences))
	}
}

func TestCompletionMayAddEffects(t *testing.T) {
	e, src := newTestWorld(t)
	var chained bool
	AddTimedEffect(e, cfg.EffectGas, dmath.Vec2{}, 100, func() {
		AddTimedEffect(e, cfg.EffectFireBall, dmath.Vec2{X: 5, Y: 5}, 100, func() { chained = true })
	})
	emitter := GetOrCreateEmitter(e)

	src.AdvanceMillis(100)
	stepEmitter(emitter, 100)

	if len(emitter.Sequences) != 1 {
		t.Fatalf("expected the chained effect to be queued, got %d sequences", len(emitter.Sequences))
	}
	if emitter.Sequences[0].Particles[0].Effect != cfg.EffectFireBall {
		t.Errorf("expected the chained fire ball, got effect %d", emitter.Sequences[0].Particles[0].Effect)
	}

	src.AdvanceMillis(100)
	stepEmitter(emitter, 100)
	if !chained {
		t.Error("expected the chained effect to complete")
	}
}

func TestUpdateEmitterPaused(t *testing.T) {
	e, src := newTestWorld(t)
	var calls int
	AddTimedEffect(e, cfg.EffectGas, dmath.Vec2{}, 100, func() { calls++ })
	GetOrCreateOverlay(e).ProfileVisible = true

	src.AdvanceMillis(500)
	UpdateFrameTime(e)
	UpdateEmitter(e)

	if calls != 0 {
		t.Error("expected effects to hold while paused")
	}
	if n := len(GetOrCreateEmitter(e).Sequences); n != 1 {
		t.Errorf("expected the effect to be kept, got %d", n)
	}
}
