package systems

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func countParticles(tm *testMatch) int {
	n := 0
	components.Particle.Each(tm.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

func TestParticlesFadeAndExpire(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	factory.SpawnParticles(tm.ecs, 100, 100, "#ff0000", 6, cfg.ParticleSpark)
	require.Equal(t, 6, countParticles(tm))

	UpdateEffects(tm.ecs)
	components.Particle.Each(tm.ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		assert.Less(t, p.Alpha, float32(1))
		assert.Greater(t, p.Alpha, float32(0))
	})

	for i := 0; i < cfg.Effects.ParticleMaxLife; i++ {
		UpdateEffects(tm.ecs)
	}
	assert.Zero(t, countParticles(tm))
}

func TestHitEffectGrows(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	factory.SpawnHitEffect(tm.ecs, 10, 10, cfg.HitHeavy, 1)

	entry, ok := components.HitEffect.First(tm.ecs.World)
	require.True(t, ok)
	h := components.HitEffect.Get(entry)

	UpdateEffects(tm.ecs)
	assert.Greater(t, h.Scale, float32(1))
	assert.LessOrEqual(t, h.Scale, float32(cfg.Effects.HitEffectGrowth))

	for i := 1; i < cfg.Effects.HitEffectFrames; i++ {
		UpdateEffects(tm.ecs)
	}
	_, ok = components.HitEffect.First(tm.ecs.World)
	assert.False(t, ok)
}

func TestScreenTimersDecay(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	tm.match.ScreenShake = 2
	tm.match.SlowMotion = 1
	tm.match.ComboDisplay = components.ComboDisplay{Count: 3, Timer: 2}

	UpdateEffects(tm.ecs)
	assert.Equal(t, 1, tm.match.ScreenShake)
	assert.Zero(t, tm.match.SlowMotion)
	assert.Equal(t, 1, tm.match.ComboDisplay.Timer)

	UpdateEffects(tm.ecs)
	UpdateEffects(tm.ecs)
	assert.Zero(t, tm.match.ScreenShake)
	assert.Zero(t, tm.match.ComboDisplay.Timer)
}
