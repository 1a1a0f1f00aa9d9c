// Package core is the round/match engine facade. It owns a donburi world,
// registers the simulation systems in tick order and exposes a one-call
// Tick for drivers.
package core

import (
	"fmt"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/arena"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Options configures one fight.
type Options struct {
	P1, P2 roster.ID
	Mode   cfg.Mode

	// Difficulty (0..1) and Boss shape the AI driving player 2 in single mode.
	Difficulty float64
	Boss       bool

	RoundsToWin int          // defaults to config.Match.RoundsToWin
	Seed        int64        // seeds the AI and effect scatter
	Arena       *arena.Arena // defaults to arena.Default()
	Logger      *zap.Logger  // defaults to a no-op logger

	// P1Bot, when set, puts player 1 under AI control as well.
	P1Bot *cfg.AIConfig
}

const spaceCellSize = 32

// Engine advances a single fight tick by tick.
type Engine struct {
	ecs      *ecs.ECS
	match    *donburi.Entry
	fighters [2]*donburi.Entry
	logger   *zap.Logger
}

// NewEngine builds the world for one fight. It fails only on unknown
// character identities.
func NewEngine(opts Options) (*Engine, error) {
	c1, err := roster.Get(opts.P1)
	if err != nil {
		return nil, fmt.Errorf("player 1: %w", err)
	}
	c2, err := roster.Get(opts.P2)
	if err != nil {
		return nil, fmt.Errorf("player 2: %w", err)
	}
	if opts.RoundsToWin <= 0 {
		opts.RoundsToWin = cfg.Match.RoundsToWin
	}
	if opts.Arena == nil {
		opts.Arena = arena.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Tick order matters: player 1 before player 2 everywhere, physics
	// before hits, melee before projectiles.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.WhileFighting(systems.UpdateFighters))
	ecs.AddSystem(systems.WhileFighting(systems.UpdatePhysics))
	ecs.AddSystem(systems.WhileFighting(systems.UpdateCombat))
	ecs.AddSystem(systems.WhileFighting(systems.UpdateProjectiles))
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.WhileFighting(systems.UpdateRoundClock))
	ecs.AddSystem(systems.UpdatePhase)

	a := opts.Arena
	factory.CreateArenaSpace(ecs, a, spaceCellSize)
	match := factory.CreateMatch(ecs, opts.Mode, a, opts.RoundsToWin, opts.Seed)

	en := &Engine{
		ecs:    ecs,
		match:  match,
		logger: opts.Logger,
	}
	en.fighters[cfg.P1] = factory.CreateFighter(ecs, cfg.P1, c1, a)
	en.fighters[cfg.P2] = factory.CreateFighter(ecs, cfg.P2, c2, a)

	m := components.Match.Get(match)
	m.Fighters = [2]donburi.Entity{en.fighters[cfg.P1].Entity(), en.fighters[cfg.P2].Entity()}

	if opts.Mode == cfg.ModeSingle {
		factory.AttachBot(en.fighters[cfg.P2], cfg.DeriveAIConfig(opts.Difficulty, opts.Boss), opts.Seed+1)
	}
	if opts.P1Bot != nil {
		factory.AttachBot(en.fighters[cfg.P1], *opts.P1Bot, opts.Seed+2)
	}

	en.logger.Debug("fight created",
		zap.String("p1", c1.Name),
		zap.String("p2", c2.Name),
		zap.Stringer("mode", opts.Mode),
		zap.Float64("difficulty", opts.Difficulty),
		zap.Bool("boss", opts.Boss),
		zap.Int("rounds_to_win", opts.RoundsToWin),
		zap.String("arena", a.Name),
	)
	return en, nil
}

// Tick advances the fight by one frame and returns the events it produced.
// Input for a bot-driven side is ignored. Edges that arrive on a
// slow-motion skip carry over to the next simulated tick.
func (en *Engine) Tick(p1, p2 components.InputState) []messages.Event {
	components.Input.Get(en.fighters[cfg.P1]).Latch(p1)
	components.Input.Get(en.fighters[cfg.P2]).Latch(p2)

	en.ecs.Update()

	m := components.Match.Get(en.match)
	if !m.Skip {
		for _, f := range en.fighters {
			components.Input.Get(f).ClearEdges()
		}
	}

	events := m.DrainEvents()
	for _, ev := range events {
		en.logEvent(ev)
	}
	return events
}

// Phase returns the current round/match phase.
func (en *Engine) Phase() cfg.Phase {
	return components.Match.Get(en.match).Phase
}

// Done reports whether the match has ended.
func (en *Engine) Done() bool {
	return en.Phase() == cfg.PhaseMatchEnd
}

// Winner returns the match winner once the match has ended.
func (en *Engine) Winner() (cfg.Side, bool) {
	m := components.Match.Get(en.match)
	if m.Phase != cfg.PhaseMatchEnd {
		return cfg.P1, false
	}
	if m.Wins[cfg.P1] >= m.RoundsToWin {
		return cfg.P1, true
	}
	return cfg.P2, true
}

func (en *Engine) logEvent(ev messages.Event) {
	switch e := ev.(type) {
	case messages.RoundEndEvent:
		en.logger.Info("round end",
			zap.Int("round", e.Round),
			zap.Stringer("winner", e.Winner),
			zap.Bool("time_up", e.TimeUp),
			zap.Int("p1_hp", e.HP[cfg.P1]),
			zap.Int("p2_hp", e.HP[cfg.P2]),
		)
	case messages.MatchEndEvent:
		en.logger.Info("match end",
			zap.Stringer("winner", e.Winner),
			zap.Int("rounds", e.Rounds),
			zap.Ints("wins", e.Wins[:]),
		)
	case messages.KOEvent:
		en.logger.Info("ko",
			zap.Stringer("victim", e.Victim),
			zap.Int("frame", e.Frame),
		)
	case messages.ComboEvent:
		en.logger.Debug("combo",
			zap.Stringer("attacker", e.Attacker),
			zap.String("combo", e.Name),
			zap.Int("bonus", e.Bonus),
		)
	case messages.UltimateEvent:
		en.logger.Debug("ultimate",
			zap.Stringer("side", e.Side),
			zap.String("name", e.Name),
		)
	}
}
