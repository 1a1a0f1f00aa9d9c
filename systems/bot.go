package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/roster"
)

// GenerateBotInput produces one tick of input for a bot-driven fighter. It
// reads only public fighter state and the arena width, and draws all
// randomness from the bot's own source.
func GenerateBotInput(bot *components.BotData, self, opp *components.FighterData, phase cfg.Phase, arenaWidth float64) components.InputState {
	var in components.InputState
	if self.IsDead() || phase != cfg.PhaseFighting {
		return in
	}

	t := cfg.AITuning
	dist := math.Abs(self.X - opp.X)
	r := classifyRange(dist)

	bot.DecisionTimer--
	if bot.DecisionTimer <= 0 {
		decide(bot, self, opp, r)
	}

	executePlan(bot, self, opp, r, dist, &in)

	// Wall awareness
	if self.X < t.WallMargin && in.Down(cfg.ButtonLeft) {
		in.Held[cfg.ButtonLeft] = false
		in.Hold(cfg.ButtonRight)
	}
	if self.X > arenaWidth-t.WallMargin && in.Down(cfg.ButtonRight) {
		in.Held[cfg.ButtonRight] = false
		in.Hold(cfg.ButtonLeft)
	}
	return in
}

type botRange int

const (
	rangeClose botRange = iota
	rangeMid
	rangeFar
)

func classifyRange(dist float64) botRange {
	switch {
	case dist < cfg.AITuning.CloseRange:
		return rangeClose
	case dist < cfg.AITuning.FarRange:
		return rangeMid
	}
	return rangeFar
}

// planWeights returns the weight table the planner samples from. Randomized
// reactions draw from rng.
func planWeights(c cfg.AIConfig, rng *rand.Rand, self, opp *components.FighterData, r botRange) [components.PlanCount]float64 {
	t := cfg.AITuning
	var w [components.PlanCount]float64
	w[components.PlanIdle] = 0.1

	hasEnergy := self.Energy >= t.SpecialEnergy
	switch r {
	case rangeFar:
		w[components.PlanApproach] = 0.5 * c.Movement
		if hasEnergy {
			w[components.PlanSpecial] = 0.3 * c.SpecialUsage
		}
		w[components.PlanIdle] = 0.2
	case rangeMid:
		w[components.PlanApproach] = 0.3 * c.Aggression
		w[components.PlanAttack] = 0.2 * c.Aggression
		if hasEnergy {
			w[components.PlanSpecial] = 0.4 * c.SpecialUsage
		}
		w[components.PlanRetreat] = 0.1 * (1 - c.Aggression)
	case rangeClose:
		w[components.PlanAttack] = 0.5 * c.Aggression
		w[components.PlanCombo] = 0.3 * c.ComboAbility
		w[components.PlanDefend] = 0.2 * c.Defense
		w[components.PlanRetreat] = 0.15 * (1 - c.Aggression)
	}

	// React to the opponent
	if opp.Action.ID().IsAttack() && r == rangeClose {
		if rng.Float64() < c.Defense {
			w[components.PlanDefend] = 0.7
			w[components.PlanAttack] = 0.1
		}
		if rng.Float64() < c.Reaction*0.5 {
			w[components.PlanRetreat] = 0.3
		}
	}
	approaching := math.Abs(opp.SpeedX) > t.ApproachSpeed &&
		((opp.X < self.X && opp.SpeedX > 0) || (opp.X > self.X && opp.SpeedX < 0))
	if approaching && rng.Float64() < c.Defense*0.5 {
		w[components.PlanDefend] = 0.4
	}

	lowHealth := self.HPRatio() < t.LowHealth
	if lowHealth {
		w[components.PlanRetreat] += 0.2
		w[components.PlanDefend] += 0.2
	}
	if opp.HPRatio() < t.FinishHealth {
		w[components.PlanApproach] += 0.3
		w[components.PlanAttack] += 0.3
		w[components.PlanCombo] += 0.2
	}

	if self.Energy >= cfg.Combat.MaxEnergy {
		w[components.PlanUltimate] = 0.4 * c.UltimateUsage
		if lowHealth {
			w[components.PlanUltimate] = 0.6 * c.UltimateUsage
		}
	}
	return w
}

// pickPlan samples a plan from the weight table in plan order.
func pickPlan(rng *rand.Rand, w [components.PlanCount]float64) components.Plan {
	var total float64
	for _, v := range w {
		total += v
	}
	roll := rng.Float64() * total
	for p, v := range w {
		roll -= v
		if roll <= 0 {
			return components.Plan(p)
		}
	}
	return components.PlanIdle
}

func decide(bot *components.BotData, self, opp *components.FighterData, r botRange) {
	t := cfg.AITuning
	c := bot.Config
	rng := bot.Rand

	bot.DecisionTimer = int(float64(t.DecisionBase) + (1-c.Reaction)*float64(t.DecisionSpread) + rng.Float64()*float64(t.DecisionJitter))
	bot.Plan = pickPlan(rng, planWeights(c, rng, self, opp, r))

	if bot.Plan == components.PlanCombo {
		bot.Sequence = nil
		bot.Cursor = 0
		combos := self.Character.Combos
		if rng.Float64() < c.ComboAbility && len(combos) > 0 {
			seq := combos[rng.Intn(len(combos))]
			bot.Sequence = append([]roster.Symbol(nil), seq.Inputs...)
		}
	}
}

func executePlan(bot *components.BotData, self, opp *components.FighterData, r botRange, dist float64, in *components.InputState) {
	t := cfg.AITuning
	c := bot.Config
	rng := bot.Rand

	switch bot.Plan {
	case components.PlanApproach:
		moveToward(self, opp, in)
		if rng.Float64() < 0.02*c.Movement && self.OnGround {
			in.Hold(cfg.ButtonUp)
		}
		if dist < t.ApproachAttackRange && rng.Float64() < c.Aggression*0.3 {
			in.Press(cfg.ButtonLight)
		}

	case components.PlanRetreat:
		moveAway(self, opp, in)
		if r == rangeClose && rng.Float64() < c.Defense*0.15 && self.DodgeCooldown == 0 {
			in.Press(cfg.ButtonDodge)
		}

	case components.PlanAttack:
		if dist > t.AttackHoldRange {
			moveToward(self, opp, in)
		}
		if r == rangeClose {
			if rng.Float64() < 0.4 {
				in.Press(cfg.ButtonLight)
			} else if rng.Float64() < 0.3 {
				in.Press(cfg.ButtonHeavy)
			}
		}

	case components.PlanDefend:
		if rng.Float64() < c.Reaction*0.08 && self.DodgeCooldown == 0 {
			in.Press(cfg.ButtonDodge)
		} else {
			in.Hold(cfg.ButtonBlock)
		}

	case components.PlanSpecial:
		if self.Energy < t.SpecialEnergy {
			break
		}
		switch {
		case self.Character.HasSpecialType(roster.MoveProjectile) && r == rangeMid:
			in.Press(cfg.ButtonSpecial)
		case r == rangeClose:
			in.Press(cfg.ButtonSpecial)
			if rng.Float64() < 0.4 {
				in.Hold(cfg.ButtonDown)
			}
		default:
			moveToward(self, opp, in)
		}

	case components.PlanCombo:
		if bot.Cursor >= len(bot.Sequence) {
			bot.Plan = components.PlanAttack
			break
		}
		if dist > t.AttackHoldRange {
			moveToward(self, opp, in)
			break
		}
		// Wait until the previous link finishes so the press is not dropped.
		if self.Locked() || self.IsDodging() {
			break
		}
		pressSymbol(bot.Sequence[bot.Cursor], in)
		bot.Cursor++

	case components.PlanUltimate:
		if self.Energy < cfg.Combat.MaxEnergy {
			bot.Plan = components.PlanAttack
			break
		}
		if r == rangeClose {
			in.Press(cfg.ButtonUltimate)
		} else {
			moveToward(self, opp, in)
		}

	default:
		if rng.Float64() < 0.05 {
			if rng.Float64() < 0.5 {
				in.Hold(cfg.ButtonLeft)
			} else {
				in.Hold(cfg.ButtonRight)
			}
		}
	}
}

func pressSymbol(s roster.Symbol, in *components.InputState) {
	switch s {
	case roster.SymbolLight:
		in.Press(cfg.ButtonLight)
	case roster.SymbolHeavy:
		in.Press(cfg.ButtonHeavy)
	case roster.SymbolSpecial1:
		in.Press(cfg.ButtonSpecial)
	case roster.SymbolSpecial2:
		in.Press(cfg.ButtonSpecial)
		in.Hold(cfg.ButtonDown)
	}
}

func moveToward(self, opp *components.FighterData, in *components.InputState) {
	if opp.X > self.X {
		in.Hold(cfg.ButtonRight)
	} else {
		in.Hold(cfg.ButtonLeft)
	}
}

func moveAway(self, opp *components.FighterData, in *components.InputState) {
	if opp.X > self.X {
		in.Hold(cfg.ButtonLeft)
	} else {
		in.Hold(cfg.ButtonRight)
	}
}
