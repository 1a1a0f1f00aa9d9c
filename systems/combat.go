package systems

import (
	"math"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves melee hits, player 1 attacking first. A KO from the
// first pass leaves the defeated side unable to hit back in the second.
func UpdateCombat(ecs *ecs.ECS) {
	m := matchData(ecs)
	space := components.Space.Get(components.Space.MustFirst(ecs.World))
	entries := fighterEntries(ecs, m)
	resolveMelee(ecs, m, space, entries[cfg.P1], entries[cfg.P2])
	resolveMelee(ecs, m, space, entries[cfg.P2], entries[cfg.P1])
}

func resolveMelee(ecs *ecs.ECS, m *components.MatchData, space *resolv.Space, attackerEntry, defenderEntry *donburi.Entry) {
	att := components.Fighter.Get(attackerEntry)
	def := components.Fighter.Get(defenderEntry)
	if att.IsDead() || def.IsDead() || def.Invincible > 0 {
		return
	}
	if !IsNewHit(att) {
		return
	}
	box, ok := AttackHitbox(att)
	if !ok || !strikes(space, box, defenderEntry) {
		return
	}

	hc, _ := AttackProfile(att)
	applyHit(ecs, m, att, def, strike{
		Kind:      hc.Kind,
		Damage:    BaseDamage(att, hc.BaseDamage),
		HitStun:   hc.HitStun,
		Knockback: hc.Knockback,
		Dir:       att.Facing,
		X:         (att.X + def.X) / 2,
		Y:         def.Y - 50,
		Color:     att.Character.Color,
	})
}

// strike is one registered hit before the defender's guard and defense
// are applied.
type strike struct {
	Kind       cfg.HitKind
	Damage     int
	HitStun    int
	Knockback  float64
	Dir        int
	X, Y       float64 // impact point
	Color      string
	Projectile bool
}

// BaseDamage scales a move's damage by the attacker's attack stat and by how
// many hits the current combo string has already landed.
func BaseDamage(att *components.FighterData, base int) int {
	c := cfg.Combat
	atk := float64(att.Character.Stats.Attack) / c.AttackStatRef
	decay := math.Max(c.ComboDecayFloor, 1-float64(att.ComboCount)*c.ComboDecayStep)
	return gamemath.RoundInt(float64(base) * atk * decay)
}

// FinalDamage applies guard and the defender's defense stat.
func FinalDamage(damage int, blocked bool, defense int) int {
	c := cfg.Combat
	if blocked {
		damage = gamemath.RoundInt(float64(damage) * (1 - c.BlockDamageReduction))
	}
	return gamemath.RoundInt(float64(damage) * (1 - float64(defense)/100*c.DefenseScale))
}

func applyHit(ecs *ecs.ECS, m *components.MatchData, att, def *components.FighterData, s strike) {
	fx := cfg.Effects
	blocked := def.IsBlocking()
	knockback := s.Knockback

	if blocked {
		def.Action = components.ActionBlock{Stun: cfg.Combat.BlockStun}
		knockback *= cfg.Combat.BlockKnockbackScale
		factory.SpawnHitEffect(ecs, s.X, s.Y, cfg.HitBlock, 0.8)
		factory.SpawnParticles(ecs, def.X, def.Y-50, "#ffffff", fx.BlockParticles, cfg.ParticleBlock)
		m.ScreenShake = fx.ShakeBlock
	} else {
		scale, particles, shake := 1.0, fx.HitParticles, fx.ShakeLight
		switch {
		case s.Projectile:
			particles, shake = fx.ProjectileParticles, fx.ShakeProjectile
		case s.Kind == cfg.HitHeavy:
			shake = fx.ShakeHeavy
		case s.Kind == cfg.HitUltimate:
			scale, particles, shake = 2, fx.UltimateParticles, fx.ShakeUltimate
		}

		if s.Kind == cfg.HitUltimate {
			def.Action = components.ActionKnockdown{Duration: cfg.Combat.KnockdownDuration}
			m.SlowMotion = fx.SlowMotionUltimateHit
		} else {
			def.Action = components.ActionHitStun{Remaining: s.HitStun}
		}
		factory.SpawnHitEffect(ecs, s.X, s.Y, s.Kind, scale)
		factory.SpawnParticles(ecs, s.X, s.Y, s.Color, particles, cfg.ParticleHit)
		m.ScreenShake = shake

		att.ComboCount++
		att.ComboTimer = cfg.Combat.ComboHitDecay
		if att.ComboCount > 1 {
			m.ComboDisplay = components.ComboDisplay{
				Count: att.ComboCount,
				Timer: fx.ComboDisplayFrames,
				Side:  att.Side,
			}
		}
	}

	final := FinalDamage(s.Damage, blocked, def.Character.Stats.Defense)
	def.TakeDamage(final)
	def.SpeedX = float64(s.Dir) * knockback

	c := cfg.Combat
	att.AddEnergy(c.EnergyPerHit + float64(final)*c.EnergyPerDamage)
	def.AddEnergy(float64(final) * c.EnergyPerDamage * c.DefenderEnergyScale)

	m.Emit(messages.HitEvent{
		Attacker:   att.Side,
		Defender:   def.Side,
		Kind:       s.Kind,
		Damage:     final,
		Blocked:    blocked,
		Projectile: s.Projectile,
		ComboCount: att.ComboCount,
	})

	if !blocked && !s.Projectile {
		checkCombos(ecs, m, att, def)
	}

	if def.HP <= 0 {
		knockOut(ecs, m, def)
	}
}

// MatchCombo returns the first sequence, in list order, that the tail of
// the symbol buffer completes.
func MatchCombo(buf []roster.Symbol, combos []roster.ComboSequence) (roster.ComboSequence, bool) {
	for _, seq := range combos {
		n := len(seq.Inputs)
		if n == 0 || len(buf) < n {
			continue
		}
		tail := buf[len(buf)-n:]
		match := true
		for i, s := range seq.Inputs {
			if tail[i] != s {
				match = false
				break
			}
		}
		if match {
			return seq, true
		}
	}
	return roster.ComboSequence{}, false
}

func checkCombos(ecs *ecs.ECS, m *components.MatchData, att, def *components.FighterData) {
	seq, ok := MatchCombo(att.Symbols, att.Character.Combos)
	if !ok {
		return
	}
	c := cfg.Combat
	bonus := gamemath.RoundInt(float64(seq.Damage) * c.ComboBonusScale)
	def.TakeDamage(bonus)
	att.AddEnergy(c.ComboEnergyBonus)
	att.Symbols = nil

	factory.SpawnParticles(ecs, def.X, def.Y-40, att.Character.AccentColor, cfg.Effects.ComboParticles, cfg.ParticleSpark)
	m.ScreenShake = cfg.Effects.ShakeCombo
	m.LastHitType = seq.Name
	m.Emit(messages.ComboEvent{Attacker: att.Side, Name: seq.Name, Bonus: bonus})
}

func knockOut(ecs *ecs.ECS, m *components.MatchData, f *components.FighterData) {
	f.Action = components.ActionDead{}
	m.ScreenShake = cfg.Effects.ShakeDeath
	m.SlowMotion = cfg.Effects.SlowMotionDeath
	factory.SpawnParticles(ecs, f.X, f.Y-40, f.Character.Color, cfg.Effects.DeathParticles, cfg.ParticleHit)
	m.Emit(messages.KOEvent{Victim: f.Side, Frame: m.Frame})
}
