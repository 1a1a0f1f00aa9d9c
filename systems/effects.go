package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects ages particles and hit effects and winds down the screen
// timers. Runs on every tick, including slow-motion skips and outside the
// fighting phase.
func UpdateEffects(ecs *ecs.ECS) {
	updateParticles(ecs)
	updateHitEffects(ecs)

	m := matchData(ecs)
	if m.ScreenShake > 0 {
		m.ScreenShake--
	}
	if m.SlowMotion > 0 {
		m.SlowMotion--
	}
	if m.ComboDisplay.Timer > 0 {
		m.ComboDisplay.Timer--
	}
}

func updateParticles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.X += p.SpeedX
		p.Y += p.SpeedY
		p.SpeedY += cfg.Effects.ParticleGravity
		p.SpeedX *= cfg.Effects.ParticleDrag
		p.Life--
		if p.Fade != nil {
			p.Alpha, _ = p.Fade.Update(1)
		}
		if p.Life <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}

func updateHitEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.HitEffect.Each(ecs.World, func(e *donburi.Entry) {
		h := components.HitEffect.Get(e)
		h.Frame++
		if h.Grow != nil {
			h.Scale, _ = h.Grow.Update(1)
		}
		if h.Frame >= h.MaxFrames {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		ecs.World.Remove(e.Entity())
	}
}
