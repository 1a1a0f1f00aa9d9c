package core

import (
	"context"
	"testing"
	"time"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameLoopStop(t *testing.T) {
	en := newLocalEngine(t)
	loop := NewGameLoop(en, 1000, nil, nil)

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	loop.Stop()
	loop.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestGameLoopCancel(t *testing.T) {
	en := newLocalEngine(t)
	loop := NewGameLoop(en, 1000, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not return after cancel")
	}
}

func TestGameLoopRunsToMatchEnd(t *testing.T) {
	en, err := NewEngine(Options{P1: roster.Kaito, P2: roster.Yuki, Mode: cfg.ModeLocal, RoundsToWin: 1})
	require.NoError(t, err)

	// Knock out player 2 as soon as the round starts.
	input := func() (p1, p2 components.InputState) {
		if en.Phase() == cfg.PhaseFighting {
			en.fighter(cfg.P2).HP = 0
		}
		return
	}
	var frames int
	var ended []messages.MatchEndEvent
	onFrame := func(s Snapshot, events []messages.Event) {
		frames++
		for _, ev := range events {
			if e, ok := ev.(messages.MatchEndEvent); ok {
				ended = append(ended, e)
			}
		}
	}

	loop := NewGameLoop(en, 2000, input, onFrame)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, loop.Run(ctx))
	require.Len(t, ended, 1)
	assert.Equal(t, cfg.P1, ended[0].Winner)
	assert.GreaterOrEqual(t, frames, cfg.Match.IntroDuration+cfg.Match.RoundEndDuration)
}
