package factory

import (
	"math"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticles bursts count particles from x, y. Scatter comes from the
// match's effects RNG so gameplay randomness is untouched.
func SpawnParticles(ecs *ecs.ECS, x, y float64, color string, count int, kind cfg.ParticleKind) {
	m := components.Match.Get(components.Match.MustFirst(ecs.World))
	rng := m.FX
	for i := 0; i < count; i++ {
		angle := rng.Float64() * math.Pi * 2
		speed := 2 + rng.Float64()*6
		life := 20 + rng.Intn(16)

		e := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(e, components.ParticleData{
			X:       x,
			Y:       y,
			SpeedX:  math.Cos(angle) * speed,
			SpeedY:  math.Sin(angle)*speed - 2,
			Life:    life,
			MaxLife: cfg.Effects.ParticleMaxLife,
			Size:    2 + rng.Float64()*4,
			Color:   color,
			Kind:    kind,
			Alpha:   1,
			Fade:    gween.New(1, 0, float32(life), ease.Linear),
		})
	}
}

// SpawnHitEffect creates an impact flash that grows over its lifetime.
func SpawnHitEffect(ecs *ecs.ECS, x, y float64, kind cfg.HitKind, scale float64) {
	frames := cfg.Effects.HitEffectFrames
	e := archetypes.HitEffect.Spawn(ecs)
	components.HitEffect.SetValue(e, components.HitEffectData{
		X:         x,
		Y:         y,
		MaxFrames: frames,
		Kind:      kind,
		BaseScale: scale,
		Scale:     float32(scale),
		Grow:      gween.New(float32(scale), float32(scale*cfg.Effects.HitEffectGrowth), float32(frames), ease.OutQuad),
	})
}

// ClearEffects removes every particle, hit effect and projectile.
func ClearEffects(ecs *ecs.ECS) {
	var projectiles []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectiles = append(projectiles, e)
	})
	for _, p := range projectiles {
		DestroyProjectile(ecs, p)
	}

	var rest []*donburi.Entry
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		rest = append(rest, e)
	})
	components.HitEffect.Each(ecs.World, func(e *donburi.Entry) {
		rest = append(rest, e)
	})
	for _, e := range rest {
		ecs.World.Remove(e.Entity())
	}
}
