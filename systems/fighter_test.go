package systems

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStunLocksOutInput(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	tm.place(300, 600)
	f, opp := tm.fighter(cfg.P1), tm.fighter(cfg.P2)

	mash := press(cfg.ButtonLight, cfg.ButtonHeavy, cfg.ButtonDodge, cfg.ButtonUltimate)
	mash.Hold(cfg.ButtonRight)
	f.Energy = 100

	f.Action = components.ActionHitStun{Remaining: 5}
	for i := 4; i > 0; i-- {
		ProcessInput(tm.ecs, f, opp, mash)
		require.Equal(t, components.ActionHitStun{Remaining: i}, f.Action)
		assert.Zero(t, f.SpeedX)
		assert.Empty(t, f.Symbols)
	}
	ProcessInput(tm.ecs, f, opp, mash)
	assert.Equal(t, components.ActionIdle{}, f.Action)
	assert.Equal(t, 100.0, f.Energy)

	f.Action = components.ActionBlock{Stun: 3}
	for i := 2; i > 0; i-- {
		ProcessInput(tm.ecs, f, opp, mash)
		require.Equal(t, components.ActionBlock{Stun: i}, f.Action)
	}
	ProcessInput(tm.ecs, f, opp, mash)
	assert.Equal(t, components.ActionIdle{}, f.Action)
}

func TestAttackRunsToCompletion(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	tm.place(300, 600)
	f, opp := tm.fighter(cfg.P1), tm.fighter(cfg.P2)

	ProcessInput(tm.ecs, f, opp, press(cfg.ButtonLight))
	require.Equal(t, components.ActionAttack{Kind: cfg.LightAttack, Duration: 13}, f.Action)
	assert.Equal(t, cfg.Combat.LightLunge, f.SpeedX)
	assert.Equal(t, []roster.Symbol{roster.SymbolLight}, f.Symbols)

	// Heavy presses during the attack are dropped.
	for i := 1; i < 13; i++ {
		ProcessInput(tm.ecs, f, opp, press(cfg.ButtonHeavy))
		require.Equal(t, cfg.LightAttack, f.Action.ID())
	}
	ProcessInput(tm.ecs, f, opp, press(cfg.ButtonHeavy))
	assert.Equal(t, components.ActionIdle{}, f.Action)
	assert.Len(t, f.Symbols, 1)
}

func TestSymbolBufferTimesOut(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	f, opp := tm.fighter(cfg.P1), tm.fighter(cfg.P2)
	f.Symbols = []roster.Symbol{roster.SymbolHeavy}
	f.SymbolTimer = 2

	ProcessInput(tm.ecs, f, opp, neutral())
	assert.Len(t, f.Symbols, 1)
	ProcessInput(tm.ecs, f, opp, neutral())
	assert.Empty(t, f.Symbols)
}

func TestDodge(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	tm.place(300, 600)
	f, opp := tm.fighter(cfg.P1), tm.fighter(cfg.P2)

	ProcessInput(tm.ecs, f, opp, press(cfg.ButtonDodge))
	require.True(t, f.IsDodging())
	assert.Equal(t, -cfg.DodgeTuning.Speed, f.SpeedX, "no direction held dodges away")
	assert.Equal(t, cfg.DodgeTuning.Duration, f.Invincible)
	assert.Equal(t, cfg.DodgeTuning.Cooldown, f.DodgeCooldown)

	for i := 1; i < cfg.DodgeTuning.Duration; i++ {
		ProcessInput(tm.ecs, f, opp, neutral())
		require.True(t, f.IsDodging())
	}
	ProcessInput(tm.ecs, f, opp, neutral())
	assert.Equal(t, components.ActionIdle{}, f.Action)
	assert.Zero(t, f.Invincible)

	// Still cooling down
	ProcessInput(tm.ecs, f, opp, press(cfg.ButtonDodge))
	assert.False(t, f.IsDodging())

	f.DodgeCooldown = 0
	in := press(cfg.ButtonDodge)
	in.Hold(cfg.ButtonRight)
	ProcessInput(tm.ecs, f, opp, in)
	assert.Equal(t, cfg.DodgeTuning.Speed, f.SpeedX)
}

func TestBlockNeedsGround(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	f, opp := tm.fighter(cfg.P1), tm.fighter(cfg.P2)
	f.SpeedX = 3

	ProcessInput(tm.ecs, f, opp, hold(cfg.ButtonBlock))
	assert.Equal(t, components.ActionBlock{}, f.Action)
	assert.Zero(t, f.SpeedX)

	f.Action = components.ActionJump{}
	f.OnGround = false
	ProcessInput(tm.ecs, f, opp, hold(cfg.ButtonBlock))
	assert.False(t, f.IsBlocking())
}

func TestSpecialSlots(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	f, opp := tm.fighter(cfg.P1), tm.fighter(cfg.P2)

	// Not enough energy
	f.Energy = 10
	ProcessInput(tm.ecs, f, opp, press(cfg.ButtonSpecial))
	assert.Equal(t, components.ActionIdle{}, f.Action)
	assert.Equal(t, 10.0, f.Energy)

	// The dummy has no second slot; down falls through to a crouch.
	f.Energy = 50
	in := press(cfg.ButtonSpecial)
	in.Hold(cfg.ButtonDown)
	ProcessInput(tm.ecs, f, opp, in)
	assert.Equal(t, components.ActionCrouch{}, f.Action)
	assert.Equal(t, 50.0, f.Energy)

	ProcessInput(tm.ecs, f, opp, press(cfg.ButtonSpecial))
	assert.Equal(t, components.ActionAttack{Kind: cfg.Special1, Duration: 20}, f.Action)
	assert.Equal(t, 30.0, f.Energy)
	assert.Equal(t, []roster.Symbol{roster.SymbolSpecial1}, f.Symbols)
}

func TestWalkDirections(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	tm.place(300, 600)
	f, opp := tm.fighter(cfg.P1), tm.fighter(cfg.P2)

	ProcessInput(tm.ecs, f, opp, hold(cfg.ButtonRight))
	assert.Equal(t, components.ActionWalk{Back: false}, f.Action)
	assert.Equal(t, cfg.Physics.WalkSpeedBase, f.SpeedX)
	assert.Equal(t, cfg.WalkForward, f.Action.ID())

	ProcessInput(tm.ecs, f, opp, hold(cfg.ButtonLeft))
	assert.Equal(t, cfg.WalkBack, f.Action.ID())
	assert.Equal(t, -cfg.Physics.WalkSpeedBase, f.SpeedX)

	// Released: speed decays until the fighter settles.
	for i := 0; i < 10; i++ {
		ProcessInput(tm.ecs, f, opp, neutral())
	}
	assert.Equal(t, components.ActionIdle{}, f.Action)
}

func TestJumpAndLand(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	tm.place(300, 600)

	tm.tick(hold(cfg.ButtonUp), neutral())
	f := tm.fighter(cfg.P1)
	require.Equal(t, components.ActionJump{}, f.Action)
	assert.False(t, f.OnGround)
	assert.Less(t, f.Y, tm.match.Arena.GroundY)

	tm.idle(60)
	assert.True(t, f.OnGround)
	assert.Equal(t, tm.match.Arena.GroundY, f.Y)
	assert.Equal(t, cfg.Idle, f.Action.ID())
}

func TestDeadFighterIgnoresInput(t *testing.T) {
	tm := newTestMatch(t, dummy(), dummy())
	f, opp := tm.fighter(cfg.P1), tm.fighter(cfg.P2)
	f.Action = components.ActionDead{}

	ProcessInput(tm.ecs, f, opp, press(cfg.ButtonLight))
	assert.True(t, f.IsDead())
	assert.Empty(t, f.Symbols)
}
