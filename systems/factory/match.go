package factory

import (
	"math/rand"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/arena"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton in its intro phase.
func CreateMatch(ecs *ecs.ECS, mode cfg.Mode, a *arena.Arena, roundsToWin int, seed int64) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		Phase:       cfg.PhaseIntro,
		TickPhase:   cfg.PhaseIntro,
		Mode:        mode,
		Arena:       a,
		RoundsToWin: roundsToWin,
		Timer:       cfg.Match.RoundTicks(),
		Round:       1,
		FX:          rand.New(rand.NewSource(seed)),
	})
	return match
}

// CreateArenaSpace spawns the resolv space covering the arena. Hurtboxes and
// projectiles live in it; hitboxes probe it.
func CreateArenaSpace(ecs *ecs.ECS, a *arena.Arena, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(int(a.Width), int(a.Height), cellSize, cellSize))
	return space
}
