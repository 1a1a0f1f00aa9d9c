package main

import (
	"errors"
	"flag"
	"log"
	"time"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/core"
	"github.com/automoto/doomerang-duel/fonts"
	"github.com/automoto/doomerang-duel/shared/arena"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

type Game struct {
	opts   core.Options
	engine *core.Engine
	input  inputPoller
	snap   core.Snapshot
	feed   []string
	logger *zap.Logger

	showHitboxes bool
}

func NewGame(opts core.Options) (*Game, error) {
	g := &Game{opts: opts, logger: opts.Logger}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	g.opts.Seed = time.Now().UnixNano()
	en, err := core.NewEngine(g.opts)
	if err != nil {
		return err
	}
	g.engine = en
	g.feed = nil
	g.snap = en.Snapshot()
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHitboxes = !g.showHitboxes
	}
	if g.engine.Done() && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return g.restart()
	}

	p1, p2 := g.input.Poll()
	events := g.engine.Tick(p1, p2)
	g.snap = g.engine.Snapshot()
	g.pushEvents(events)
	return nil
}

func (g *Game) pushEvents(events []messages.Event) {
	for _, ev := range events {
		if c, ok := ev.(messages.ComboEvent); ok {
			g.feed = append(g.feed, g.snap.Fighters[c.Attacker].Character.Name+": "+c.Name)
		}
	}
	if len(g.feed) > feedLines {
		g.feed = g.feed[len(g.feed)-feedLines:]
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawArena(screen, g.snap)
	drawFighters(screen, g.snap, g.showHitboxes)
	drawEffects(screen, g.snap)
	drawHUD(screen, g.snap, g.feed)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(g.snap.Arena.Width), int(g.snap.Arena.Height)
}

func main() {
	p1 := flag.String("p1", string(roster.Kaito), "Player 1 character")
	p2 := flag.String("p2", string(roster.Gorath), "Player 2 character")
	mode := flag.String("mode", "single", "single (vs AI) or local (two players)")
	difficulty := flag.Float64("difficulty", 0.5, "AI difficulty (0-1)")
	boss := flag.Bool("boss", false, "Fight the AI with the boss bonus")
	rounds := flag.Int("rounds", 0, "Rounds to win (0 = default)")
	debug := flag.Bool("debug", false, "Debug logging")
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	opts := core.Options{
		P1:          roster.ID(*p1),
		P2:          roster.ID(*p2),
		Difficulty:  *difficulty,
		Boss:        *boss,
		RoundsToWin: *rounds,
		Arena:       arena.Default(),
		Logger:      logger,
	}
	switch *mode {
	case "single":
		opts.Mode = cfg.ModeSingle
	case "local":
		opts.Mode = cfg.ModeLocal
	default:
		logger.Fatal("unknown mode", zap.String("mode", *mode))
	}

	game, err := NewGame(opts)
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}

	ebiten.SetWindowSize(int(opts.Arena.Width), int(opts.Arena.Height))
	ebiten.SetWindowTitle("Doomerang Duel")
	ebiten.SetTPS(cfg.Match.TicksPerSecond)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", zap.Error(err))
	}
}
