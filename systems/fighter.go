package systems

import (
	"math"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters runs each side's input through its action state machine,
// player 1 first. Bot-driven sides generate their input right before they
// act, so a bot on side 2 sees side 1's reaction from this same tick.
func UpdateFighters(e *ecs.ECS) {
	m := matchData(e)
	entries := fighterEntries(e, m)
	for side, entry := range entries {
		f := components.Fighter.Get(entry)
		opp := components.Fighter.Get(entries[1-side])
		in := components.Input.Get(entry)

		if entry.HasComponent(components.Bot) {
			*in = GenerateBotInput(components.Bot.Get(entry), f, opp, m.TickPhase, m.Arena.Width)
		}
		ProcessInput(e, f, opp, *in)
	}
}

// ProcessInput advances one fighter by one tick of input. Everything that
// takes effect (stun countdowns, attack frames, new actions, velocity) is
// written to f.
func ProcessInput(e *ecs.ECS, f, opp *components.FighterData, in components.InputState) {
	if f.IsDead() {
		return
	}

	if f.DodgeCooldown > 0 {
		f.DodgeCooldown--
	}
	if f.Invincible > 0 {
		f.Invincible--
	}

	// Stun countdowns
	switch a := f.Action.(type) {
	case components.ActionHitStun:
		if a.Remaining > 0 {
			a.Remaining--
			f.Action = a
			if a.Remaining == 0 {
				f.Action = components.ActionIdle{}
			}
			return
		}
	case components.ActionBlock:
		if a.Stun > 0 {
			a.Stun--
			f.Action = a
			if a.Stun == 0 {
				f.Action = components.ActionIdle{}
			}
			return
		}
	}

	if f.Locked() {
		advanceLocked(f)
		return
	}

	if f.SymbolTimer > 0 {
		f.SymbolTimer--
		if f.SymbolTimer == 0 {
			f.Symbols = nil
		}
	}

	// Dodge
	if in.JustPressed(cfg.ButtonDodge) && f.DodgeCooldown == 0 && f.OnGround && !f.IsDodging() {
		f.DodgeCooldown = cfg.DodgeTuning.Cooldown
		f.Invincible = cfg.DodgeTuning.Duration
		f.Action = components.ActionDodge{}
		dir := -f.Facing
		if in.Down(cfg.ButtonLeft) {
			dir = -1
		} else if in.Down(cfg.ButtonRight) {
			dir = 1
		}
		f.SpeedX = float64(dir) * cfg.DodgeTuning.Speed
		return
	}
	if d, ok := f.Action.(components.ActionDodge); ok {
		d.Frame++
		f.Action = d
		if d.Frame >= cfg.DodgeTuning.Duration {
			f.Action = components.ActionIdle{}
		}
		return
	}

	if in.Down(cfg.ButtonBlock) && f.OnGround {
		f.Action = components.ActionBlock{}
		f.SpeedX = 0
		return
	}

	ult := f.Character.Ultimate
	if in.JustPressed(cfg.ButtonUltimate) && f.Energy >= ult.EnergyRequired {
		startUltimate(e, f)
		return
	}

	if in.JustPressed(cfg.ButtonSpecial) && f.OnGround {
		if startSpecial(e, f, opp, in.Down(cfg.ButtonDown)) {
			return
		}
	}

	if in.JustPressed(cfg.ButtonLight) {
		startAttack(f, cfg.LightAttack, cfg.Combat.Light.Duration(), cfg.Combat.LightLunge, roster.SymbolLight)
		return
	}
	if in.JustPressed(cfg.ButtonHeavy) {
		startAttack(f, cfg.HeavyAttack, cfg.Combat.Heavy.Duration(), cfg.Combat.HeavyLunge, roster.SymbolHeavy)
		return
	}

	move(e, f, in)
}

// advanceLocked steps a timed action and releases it to idle on completion.
func advanceLocked(f *components.FighterData) {
	switch a := f.Action.(type) {
	case components.ActionAttack:
		a.Frame++
		f.Action = a
		if a.Frame >= a.Duration {
			f.Action = components.ActionIdle{}
		}
	case components.ActionUltimate:
		a.Frame++
		f.Action = a
		if a.Frame >= a.Duration {
			f.Action = components.ActionIdle{}
		}
	case components.ActionKnockdown:
		a.Frame++
		f.Action = a
		if a.Frame >= a.Duration {
			f.Action = components.ActionIdle{}
		}
	}
}

func startAttack(f *components.FighterData, kind cfg.ActionID, duration int, lunge float64, sym roster.Symbol) {
	f.Action = components.ActionAttack{Kind: kind, Duration: duration}
	f.SpeedX = float64(f.Facing) * lunge
	f.PushSymbol(sym)
}

func startUltimate(e *ecs.ECS, f *components.FighterData) {
	m := matchData(e)
	ult := f.Character.Ultimate
	f.Action = components.ActionUltimate{Duration: ult.Duration}
	f.Energy = 0
	f.SpeedX = 0
	m.SlowMotion = cfg.Effects.SlowMotionUltimateStart
	m.ScreenShake = cfg.Effects.ShakeUltimateStart
	m.Emit(messages.UltimateEvent{Side: f.Side, Name: ult.Name})
}

// startSpecial tries the special in slot 0, or slot 1 when down is held.
// It reports false when the slot is missing or unaffordable.
func startSpecial(e *ecs.ECS, f, opp *components.FighterData, down bool) bool {
	idx := 0
	kind, sym := cfg.Special1, roster.SymbolSpecial1
	if down {
		idx = 1
		kind, sym = cfg.Special2, roster.SymbolSpecial2
	}
	sp, ok := f.Character.Special(idx)
	if !ok || f.Energy < sp.EnergyCost {
		return false
	}

	f.AddEnergy(-sp.EnergyCost)
	f.Action = components.ActionAttack{Kind: kind, Duration: sp.Duration()}
	f.SpeedX = 0
	f.PushSymbol(sym)

	switch sp.Type {
	case roster.MoveProjectile:
		damage := float64(sp.Damage) * float64(f.Character.Stats.Attack) / cfg.Combat.AttackStatRef
		factory.CreateProjectile(e, f, damage)
	case roster.MoveTeleport:
		teleportBehind(e, f, opp)
	}
	return true
}

func teleportBehind(e *ecs.ECS, f, opp *components.FighterData) {
	m := matchData(e)
	t := cfg.Teleport
	f.X = gamemath.Clamp(opp.X-float64(opp.Facing)*t.BehindDistance, t.EdgeMargin, m.Arena.Width-t.EdgeMargin)
	f.Invincible = t.Invincibility
	factory.SpawnParticles(e, f.X, f.Y-40, f.Character.AccentColor, cfg.Effects.TeleportParticles, cfg.ParticleEnergy)
}

// move handles jumping, walking and settling when no attack was started.
func move(e *ecs.ECS, f *components.FighterData, in components.InputState) {
	p := cfg.Physics

	if in.Down(cfg.ButtonUp) && f.OnGround {
		f.SpeedY = p.JumpForce
		f.OnGround = false
		f.Action = components.ActionJump{}
		factory.SpawnParticles(e, f.X, f.Y, "#888888", cfg.Effects.DustParticles, cfg.ParticleDust)
	}

	walk := p.WalkSpeedBase * float64(f.Character.Stats.Speed) / p.SpeedStatRef
	switch {
	case in.Down(cfg.ButtonLeft):
		f.SpeedX = -walk
		if f.OnGround {
			f.Action = components.ActionWalk{Back: f.Facing != cfg.FacingLeft}
		}
	case in.Down(cfg.ButtonRight):
		f.SpeedX = walk
		if f.OnGround {
			f.Action = components.ActionWalk{Back: f.Facing != cfg.FacingRight}
		}
	default:
		f.SpeedX = gamemath.ApplyFriction(f.SpeedX, p.WalkFriction)
		if f.OnGround && math.Abs(f.SpeedX) < p.StopThreshold {
			if in.Down(cfg.ButtonDown) {
				f.Action = components.ActionCrouch{}
			} else {
				f.Action = components.ActionIdle{}
			}
		}
	}
}
