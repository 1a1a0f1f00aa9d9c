package config

import "math"

// AIConfig is the behavior profile of an AI-controlled fighter. Every field
// is in [0, 1].
type AIConfig struct {
	Aggression    float64 // how often to attack
	Defense       float64 // how often to block or dodge
	Reaction      float64 // shortens the decision interval
	SpecialUsage  float64
	ComboAbility  float64
	UltimateUsage float64
	Movement      float64
}

// AITuningData holds the planner's fixed thresholds
type AITuningData struct {
	// Difficulty interpolation: value = Base + d*Scale
	Base  AIConfig
	Scale AIConfig
	// Added on top for bosses, then clamped to 1
	BossBonus AIConfig

	CloseRange          float64 // below this distance is close
	FarRange            float64 // at or beyond this distance is far
	ApproachAttackRange float64 // approach plan jabs inside this range
	AttackHoldRange     float64 // attack and combo plans stop walking inside this range
	WallMargin          float64 // directional input toward a wall inside this margin is flipped

	DecisionBase   int // ticks
	DecisionSpread int // ticks removed at reaction 1
	DecisionJitter int // random ticks added

	LowHealth     float64 // own HP ratio that triggers defensive play
	FinishHealth  float64 // opponent HP ratio that triggers aggression
	SpecialEnergy float64 // energy needed before the planner considers specials
	ApproachSpeed float64 // opponent |vx| that counts as approaching
}

// AITuning is the global AI planner tuning.
var AITuning AITuningData

func init() {
	AITuning = AITuningData{
		Base: AIConfig{
			Aggression:    0.2,
			Defense:       0.15,
			Reaction:      0.1,
			SpecialUsage:  0.1,
			ComboAbility:  0.05,
			UltimateUsage: 0.3,
			Movement:      0.3,
		},
		Scale: AIConfig{
			Aggression:    0.6,
			Defense:       0.6,
			Reaction:      0.7,
			SpecialUsage:  0.5,
			ComboAbility:  0.7,
			UltimateUsage: 0.5,
			Movement:      0.5,
		},
		BossBonus: AIConfig{
			Aggression:    0.15,
			Defense:       0.15,
			Reaction:      0.2,
			SpecialUsage:  0.2,
			ComboAbility:  0.15,
			UltimateUsage: 0.1,
		},

		CloseRange:          80,
		FarRange:            250,
		ApproachAttackRange: 90,
		AttackHoldRange:     70,
		WallMargin:          60,

		DecisionBase:   8,
		DecisionSpread: 20,
		DecisionJitter: 10,

		LowHealth:     0.3,
		FinishHealth:  0.2,
		SpecialEnergy: 20,
		ApproachSpeed: 2,
	}
}

// DeriveAIConfig maps a difficulty scalar to a behavior profile. Bosses get
// a flat bonus on most axes.
func DeriveAIConfig(difficulty float64, boss bool) AIConfig {
	d := math.Max(0, math.Min(1, difficulty))
	b, s := AITuning.Base, AITuning.Scale
	c := AIConfig{
		Aggression:    b.Aggression + d*s.Aggression,
		Defense:       b.Defense + d*s.Defense,
		Reaction:      b.Reaction + d*s.Reaction,
		SpecialUsage:  b.SpecialUsage + d*s.SpecialUsage,
		ComboAbility:  b.ComboAbility + d*s.ComboAbility,
		UltimateUsage: b.UltimateUsage + d*s.UltimateUsage,
		Movement:      b.Movement + d*s.Movement,
	}
	if boss {
		bb := AITuning.BossBonus
		c.Aggression = math.Min(1, c.Aggression+bb.Aggression)
		c.Defense = math.Min(1, c.Defense+bb.Defense)
		c.Reaction = math.Min(1, c.Reaction+bb.Reaction)
		c.SpecialUsage = math.Min(1, c.SpecialUsage+bb.SpecialUsage)
		c.ComboAbility = math.Min(1, c.ComboAbility+bb.ComboAbility)
		c.UltimateUsage = math.Min(1, c.UltimateUsage+bb.UltimateUsage)
		c.Movement = math.Min(1, c.Movement+bb.Movement)
	}
	return c
}
