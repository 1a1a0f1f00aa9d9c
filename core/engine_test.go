package core

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newLocalEngine(t *testing.T) *Engine {
	t.Helper()
	en, err := NewEngine(Options{
		P1:     roster.Kaito,
		P2:     roster.Gorath,
		Mode:   cfg.ModeLocal,
		Logger: zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return en
}

// skipIntro ticks neutral input until the round starts.
func skipIntro(t *testing.T, en *Engine) {
	t.Helper()
	for i := 0; i <= cfg.Match.IntroDuration; i++ {
		en.Tick(components.InputState{}, components.InputState{})
		if en.Phase() == cfg.PhaseFighting {
			return
		}
	}
	t.Fatalf("still in %s after intro", en.Phase())
}

func (en *Engine) fighter(s cfg.Side) *components.FighterData {
	return components.Fighter.Get(en.fighters[s])
}

func (en *Engine) matchData() *components.MatchData {
	return components.Match.Get(en.match)
}

func TestNewEngineUnknownCharacter(t *testing.T) {
	_, err := NewEngine(Options{P1: roster.Kaito, P2: "nobody"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, roster.ErrUnknownCharacter))
	assert.Contains(t, err.Error(), "player 2")
}

func TestNewEngineDefaults(t *testing.T) {
	en, err := NewEngine(Options{P1: roster.Yuki, P2: roster.ShadowLord, Boss: true, Difficulty: 0.9})
	require.NoError(t, err)

	s := en.Snapshot()
	assert.Equal(t, cfg.PhaseIntro, s.Phase)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, cfg.Match.RoundsToWin, s.RoundsToWin)
	assert.Equal(t, "dojo", s.Arena.Name)
	assert.Equal(t, 99, s.Seconds())
	assert.Equal(t, s.Fighters[cfg.P1].MaxHP, s.Fighters[cfg.P1].HP)
	assert.Same(t, roster.MustGet(roster.ShadowLord), s.Fighters[cfg.P2].Character)

	assert.True(t, en.fighters[cfg.P2].HasComponent(components.Bot))
	assert.False(t, en.fighters[cfg.P1].HasComponent(components.Bot))
}

func TestIntroBlocksInput(t *testing.T) {
	en := newLocalEngine(t)
	var light components.InputState
	light.Press(cfg.ButtonLight)

	for i := 0; i < cfg.Match.IntroDuration; i++ {
		en.Tick(light, light)
		require.Equal(t, cfg.Idle, en.fighter(cfg.P1).Action.ID())
	}
	assert.Equal(t, cfg.PhaseFighting, en.Phase())
}

func TestBestOfThreeStopsAfterTwoWins(t *testing.T) {
	en := newLocalEngine(t)

	var events []messages.Event
	for round := 1; round <= 2; round++ {
		skipIntro(t, en)
		require.Equal(t, round, en.matchData().Round)
		en.fighter(cfg.P2).HP = 0
		for i := 0; i <= cfg.Match.RoundEndDuration; i++ {
			events = append(events, en.Tick(components.InputState{}, components.InputState{})...)
		}
	}

	require.True(t, en.Done())
	winner, ok := en.Winner()
	require.True(t, ok)
	assert.Equal(t, cfg.P1, winner)

	var roundEnds, matchEnds int
	for _, ev := range events {
		switch e := ev.(type) {
		case messages.RoundEndEvent:
			roundEnds++
		case messages.MatchEndEvent:
			matchEnds++
			assert.Equal(t, cfg.P1, e.Winner)
			assert.Equal(t, 2, e.Rounds)
		}
	}
	assert.Equal(t, 2, roundEnds)
	assert.Equal(t, 1, matchEnds)

	for i := 0; i < 1000; i++ {
		require.Empty(t, en.Tick(components.InputState{}, components.InputState{}))
	}
	assert.Equal(t, 2, en.matchData().Round)
}

func TestSlowMotionLatchesEdges(t *testing.T) {
	en := newLocalEngine(t)
	skipIntro(t, en)

	m := en.matchData()
	for m.Frame%cfg.Match.SlowMotionStride != 0 {
		en.Tick(components.InputState{}, components.InputState{})
	}
	m.SlowMotion = 30

	var light components.InputState
	light.Press(cfg.ButtonLight)
	en.Tick(light, components.InputState{})
	require.True(t, m.Skip)
	assert.Equal(t, cfg.Idle, en.fighter(cfg.P1).Action.ID())

	en.Tick(components.InputState{}, components.InputState{})
	require.True(t, m.Skip)
	assert.True(t, components.Input.Get(en.fighters[cfg.P1]).JustPressed(cfg.ButtonLight))

	en.Tick(components.InputState{}, components.InputState{})
	require.False(t, m.Skip)
	assert.Equal(t, cfg.LightAttack, en.fighter(cfg.P1).Action.ID())
	assert.False(t, components.Input.Get(en.fighters[cfg.P1]).JustPressed(cfg.ButtonLight))
}

func TestSnapshotIsACopy(t *testing.T) {
	en := newLocalEngine(t)
	skipIntro(t, en)

	var light components.InputState
	light.Press(cfg.ButtonLight)
	en.Tick(light, components.InputState{})

	s := en.Snapshot()
	require.Len(t, s.Fighters[cfg.P1].Symbols, 1)
	s.Fighters[cfg.P1].Symbols[0] = roster.SymbolHeavy
	s.Fighters[cfg.P1].HP = 1

	assert.Equal(t, roster.SymbolLight, en.fighter(cfg.P1).Symbols[0])
	assert.NotEqual(t, 1, en.fighter(cfg.P1).HP)
	assert.Equal(t, cfg.LightAttack, s.Fighters[cfg.P1].Action)
	assert.Equal(t, 13, s.Fighters[cfg.P1].ActionTotal)
}

func autopilot(seed int64) Options {
	p1 := cfg.DeriveAIConfig(0.7, false)
	return Options{
		P1:         roster.Akira,
		P2:         roster.Hana,
		Mode:       cfg.ModeSingle,
		Difficulty: 0.7,
		Seed:       seed,
		P1Bot:      &p1,
	}
}

func TestAutopilotMatchIsDeterministic(t *testing.T) {
	play := func() ([]messages.Event, Snapshot) {
		en, err := NewEngine(autopilot(99))
		require.NoError(t, err)
		var events []messages.Event
		for i := 0; i < 60000 && !en.Done(); i++ {
			events = append(events, en.Tick(components.InputState{}, components.InputState{})...)
		}
		require.True(t, en.Done(), "match should finish within the round timers")
		return events, en.Snapshot()
	}

	events1, snap1 := play()
	events2, snap2 := play()
	assert.Equal(t, events1, events2)
	assert.Equal(t, snap1.Fighters, snap2.Fighters)
	assert.Equal(t, snap1.Wins, snap2.Wins)
}

func TestAutopilotHonorsClamps(t *testing.T) {
	en, err := NewEngine(autopilot(5))
	require.NoError(t, err)

	for i := 0; i < 20000 && !en.Done(); i++ {
		en.Tick(components.InputState{}, components.InputState{})
		for _, f := range en.Snapshot().Fighters {
			require.GreaterOrEqual(t, f.HP, 0)
			require.LessOrEqual(t, f.HP, f.MaxHP)
			require.GreaterOrEqual(t, f.Energy, 0.0)
			require.LessOrEqual(t, f.Energy, cfg.Combat.MaxEnergy)
		}
	}
}
