package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/core"
	"github.com/automoto/doomerang-duel/shared/campaign"
	"github.com/automoto/doomerang-duel/shared/roster"
	"go.uber.org/zap"
)

// maxTicks stops a headless fight that somehow never ends.
const maxTicks = 200000

type options struct {
	p1, p2     string
	difficulty float64
	boss       bool
	pilot      float64
	tier       string
	seed       int64
	rounds     int
	realtime   bool
	tui        bool
	production bool
}

func main() {
	var o options
	flag.StringVar(&o.p1, "p1", string(roster.Kaito), "Player 1 character")
	flag.StringVar(&o.p2, "p2", string(roster.Gorath), "Player 2 character")
	flag.Float64Var(&o.difficulty, "difficulty", 0.5, "Player 2 AI difficulty (0-1)")
	flag.BoolVar(&o.boss, "boss", false, "Apply the boss bonus to player 2")
	flag.Float64Var(&o.pilot, "pilot", 0.6, "Player 1 autopilot difficulty (0-1)")
	flag.StringVar(&o.tier, "campaign", "", "Play a campaign tier (easy, normal, hard, legendary) instead of one fight")
	flag.Int64Var(&o.seed, "seed", 1, "Random seed")
	flag.IntVar(&o.rounds, "rounds", 0, "Rounds to win (0 = default)")
	flag.BoolVar(&o.realtime, "realtime", false, "Run at the configured tick rate instead of as fast as possible")
	flag.BoolVar(&o.tui, "tui", false, "Watch the fight in the terminal (implies -realtime)")
	flag.BoolVar(&o.production, "prod", false, "JSON production logging")
	flag.Parse()

	logger, err := newLogger(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		cancel()
	}()

	if o.tier != "" {
		err = runCampaign(ctx, logger, o)
	} else {
		_, err = runFight(ctx, logger, o, core.Options{
			P1:         roster.ID(o.p1),
			P2:         roster.ID(o.p2),
			Mode:       cfg.ModeSingle,
			Difficulty: o.difficulty,
			Boss:       o.boss,
		})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("duel failed", zap.Error(err))
	}
}

func newLogger(o options) (*zap.Logger, error) {
	switch {
	case o.tui:
		// Log lines would tear the terminal view.
		return zap.NewNop(), nil
	case o.production:
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func runCampaign(ctx context.Context, logger *zap.Logger, o options) error {
	path, err := campaign.Default().Path(campaign.Difficulty(o.tier))
	if err != nil {
		return err
	}
	run := campaign.NewRun(path, roster.ID(o.p1))

	for stage, ok := run.Current(); ok; stage, ok = run.Current() {
		logger.Info("stage",
			zap.Int("index", run.Index+1),
			zap.String("name", stage.Name),
			zap.String("opponent", string(stage.Opponent)),
			zap.Float64("difficulty", stage.Difficulty),
			zap.Bool("boss", stage.IsBoss),
		)
		winner, err := runFight(ctx, logger, o, core.Options{
			P1:         run.Player,
			P2:         stage.Opponent,
			Mode:       cfg.ModeSingle,
			Difficulty: stage.Difficulty,
			Boss:       stage.IsBoss,
			Seed:       o.seed + int64(run.Index)*100,
		})
		if err != nil {
			return err
		}
		run.Record(winner == cfg.P1)
	}

	switch run.Outcome {
	case campaign.Cleared:
		logger.Info("campaign cleared", zap.String("tier", o.tier))
	case campaign.Defeated:
		logger.Info("campaign lost", zap.String("tier", o.tier), zap.Int("stage", run.Index+1))
	}
	return nil
}

// runFight plays one match with player 1 on autopilot and returns the winner.
func runFight(ctx context.Context, logger *zap.Logger, o options, opts core.Options) (cfg.Side, error) {
	pilot := cfg.DeriveAIConfig(o.pilot, false)
	opts.P1Bot = &pilot
	opts.RoundsToWin = o.rounds
	opts.Logger = logger
	if opts.Seed == 0 {
		opts.Seed = o.seed
	}

	en, err := core.NewEngine(opts)
	if err != nil {
		return cfg.P1, err
	}

	switch {
	case o.tui:
		err = watch(ctx, en)
	case o.realtime:
		err = core.NewGameLoop(en, cfg.Match.TicksPerSecond, nil, nil).Run(ctx)
	default:
		err = simulate(ctx, en)
	}
	if err != nil {
		return cfg.P1, err
	}

	winner, ok := en.Winner()
	if !ok {
		return cfg.P1, fmt.Errorf("match did not finish")
	}
	return winner, nil
}

func simulate(ctx context.Context, en *core.Engine) error {
	for i := 0; i < maxTicks && !en.Done(); i++ {
		if i%1000 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		// Both sides are bots, so the input is ignored.
		en.Tick(components.InputState{}, components.InputState{})
	}
	return nil
}
