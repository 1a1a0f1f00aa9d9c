package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveAIConfigInterpolates(t *testing.T) {
	easy := DeriveAIConfig(0, false)
	assert.InDelta(t, 0.2, easy.Aggression, 1e-9)
	assert.InDelta(t, 0.1, easy.Reaction, 1e-9)

	hard := DeriveAIConfig(1, false)
	assert.InDelta(t, 0.8, hard.Aggression, 1e-9)
	assert.InDelta(t, 0.8, hard.Reaction, 1e-9)
	assert.InDelta(t, 0.8, hard.Movement, 1e-9)
}

func TestDeriveAIConfigClampsDifficulty(t *testing.T) {
	assert.Equal(t, DeriveAIConfig(1, false), DeriveAIConfig(3, false))
	assert.Equal(t, DeriveAIConfig(0, false), DeriveAIConfig(-1, false))
}

func TestDeriveAIConfigBossBonus(t *testing.T) {
	c := DeriveAIConfig(1, true)
	assert.InDelta(t, 0.95, c.Aggression, 1e-9)
	assert.InDelta(t, 1.0, c.Reaction, 1e-9, "0.8+0.2 caps at 1")
	assert.InDelta(t, 0.9, c.UltimateUsage, 1e-9)
	for _, v := range []float64{c.Aggression, c.Defense, c.Reaction, c.SpecialUsage, c.ComboAbility, c.UltimateUsage, c.Movement} {
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestFrameDataDuration(t *testing.T) {
	assert.Equal(t, 13, Combat.Light.Duration())
	assert.Equal(t, 25, Combat.Heavy.Duration())
	assert.Equal(t, 99*60, Match.RoundTicks())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "hit_stun", HitStun.String())
	assert.Equal(t, "round_end", PhaseRoundEnd.String())
	assert.Equal(t, "player2", P1.Opponent().String())
	assert.Equal(t, "ultimate", HitUltimate.String())
	assert.True(t, Special2.IsAttack())
	assert.False(t, Block.IsAttack())
	assert.True(t, ButtonDodge.HasEdge())
	assert.False(t, ButtonBlock.HasEdge())
}

func TestDodgeActionAndTuning(t *testing.T) {
	assert.Equal(t, "dodge", Dodge.String())
	assert.Equal(t, 12.0, DodgeTuning.Speed)
	assert.Equal(t, 12, DodgeTuning.Duration)
	assert.Equal(t, 30, DodgeTuning.Cooldown)
}
