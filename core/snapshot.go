package core

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/arena"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/yohamta/donburi"
)

// FighterView is a read-only copy of one fighter for renderers.
type FighterView struct {
	Side        cfg.Side
	Character   *roster.Character
	X, Y        float64
	Facing      int
	OnGround    bool
	HP          int
	MaxHP       int
	Energy      float64
	Action      cfg.ActionID
	ActionFrame int
	ActionTotal int
	ComboCount  int
	Symbols     []roster.Symbol
	Invincible  bool
	AnimPhase   float64

	Hurtbox   gamemath.Rect
	Hitbox    gamemath.Rect
	HitActive bool
}

type ProjectileView struct {
	Owner  cfg.Side
	X, Y   float64
	Radius float64
	Color  string
}

type ParticleView struct {
	X, Y  float64
	Size  float64
	Color string
	Kind  cfg.ParticleKind
	Alpha float32
}

type HitEffectView struct {
	X, Y  float64
	Kind  cfg.HitKind
	Scale float32
	Frame int
}

// Snapshot is the full renderable state after a tick. It shares no mutable
// memory with the engine.
type Snapshot struct {
	Phase       cfg.Phase
	Frame       int
	PhaseFrame  int
	Timer       int
	Round       int
	Wins        [2]int
	RoundsToWin int
	Arena       arena.Arena

	Fighters    [2]FighterView
	Projectiles []ProjectileView
	Particles   []ParticleView
	HitEffects  []HitEffectView

	ScreenShake  int
	SlowMotion   int
	LastHitType  string
	ComboDisplay components.ComboDisplay
}

// Seconds is the round timer in whole seconds, rounded up.
func (s Snapshot) Seconds() int {
	tps := cfg.Match.TicksPerSecond
	return (s.Timer + tps - 1) / tps
}

// Snapshot copies the current state for rendering.
func (en *Engine) Snapshot() Snapshot {
	m := components.Match.Get(en.match)
	s := Snapshot{
		Phase:        m.Phase,
		Frame:        m.Frame,
		PhaseFrame:   m.PhaseFrame,
		Timer:        m.Timer,
		Round:        m.Round,
		Wins:         m.Wins,
		RoundsToWin:  m.RoundsToWin,
		Arena:        *m.Arena,
		ScreenShake:  m.ScreenShake,
		SlowMotion:   m.SlowMotion,
		LastHitType:  m.LastHitType,
		ComboDisplay: m.ComboDisplay,
	}
	for side, entry := range en.fighters {
		s.Fighters[side] = viewFighter(components.Fighter.Get(entry))
	}

	world := en.ecs.World
	components.Projectile.Each(world, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		s.Projectiles = append(s.Projectiles, ProjectileView{Owner: p.Owner, X: p.X, Y: p.Y, Radius: p.Radius, Color: p.Color})
	})
	components.Particle.Each(world, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		s.Particles = append(s.Particles, ParticleView{X: p.X, Y: p.Y, Size: p.Size, Color: p.Color, Kind: p.Kind, Alpha: p.Alpha})
	})
	components.HitEffect.Each(world, func(e *donburi.Entry) {
		h := components.HitEffect.Get(e)
		s.HitEffects = append(s.HitEffects, HitEffectView{X: h.X, Y: h.Y, Kind: h.Kind, Scale: h.Scale, Frame: h.Frame})
	})
	return s
}

func viewFighter(f *components.FighterData) FighterView {
	frame, total := components.Progress(f.Action)
	v := FighterView{
		Side:        f.Side,
		Character:   f.Character,
		X:           f.X,
		Y:           f.Y,
		Facing:      f.Facing,
		OnGround:    f.OnGround,
		HP:          f.HP,
		MaxHP:       f.Character.Stats.MaxHP,
		Energy:      f.Energy,
		Action:      f.Action.ID(),
		ActionFrame: frame,
		ActionTotal: total,
		ComboCount:  f.ComboCount,
		Symbols:     append([]roster.Symbol(nil), f.Symbols...),
		Invincible:  f.Invincible > 0,
		AnimPhase:   f.AnimPhase,
		Hurtbox:     factory.HurtboxRect(f),
	}
	v.Hitbox, v.HitActive = systems.AttackHitbox(f)
	return v
}
