package core

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/doomerang-duel/components"
	"github.com/automoto/doomerang-duel/shared/messages"
	"go.uber.org/zap"
)

// InputSource supplies both sides' input for the next tick.
type InputSource func() (p1, p2 components.InputState)

// FrameHandler receives the state after every tick.
type FrameHandler func(s Snapshot, events []messages.Event)

// GameLoop drives an engine at a fixed cadence until the match ends, the
// context is cancelled or Stop is called.
type GameLoop struct {
	engine   *Engine
	tickRate int
	input    InputSource
	onFrame  FrameHandler
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(engine *Engine, tickRate int, input InputSource, onFrame FrameHandler) *GameLoop {
	return &GameLoop{
		engine:   engine,
		tickRate: tickRate,
		input:    input,
		onFrame:  onFrame,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the match ends or the loop is stopped. It returns the
// context's error when cancelled.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.engine.logger.Info("game loop started", zap.Int("tick_rate", g.tickRate))

	for {
		select {
		case <-ctx.Done():
			g.engine.logger.Info("game loop cancelled")
			return ctx.Err()
		case <-g.stopChan:
			g.engine.logger.Info("game loop stopped")
			return nil
		case <-ticker.C:
			if g.tick() {
				return nil
			}
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// tick advances one frame and reports whether the match is over.
func (g *GameLoop) tick() bool {
	var p1, p2 components.InputState
	if g.input != nil {
		p1, p2 = g.input()
	}
	events := g.engine.Tick(p1, p2)
	if g.onFrame != nil {
		g.onFrame(g.engine.Snapshot(), events)
	}
	return g.engine.Done()
}
