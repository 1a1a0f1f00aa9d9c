package systems

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/arena"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// dummy is a plain test character: 1000 HP, reference attack, no defense.
func dummy() *roster.Character {
	return &roster.Character{
		ID:    "dummy",
		Name:  "Dummy",
		Color: "#ffffff",
		Stats: roster.Stats{MaxHP: 1000, Attack: 80, Defense: 0, Speed: 70, ComboRate: 50},
		Specials: []roster.SpecialMove{
			{Name: "Palm", Damage: 60, EnergyCost: 20, Range: 80, Startup: 6, Active: 4, Recovery: 10, Type: roster.MoveMelee, Knockback: 7},
		},
		Combos: []roster.ComboSequence{
			{Name: "Double Jab", Inputs: []roster.Symbol{roster.SymbolLight, roster.SymbolLight}, Damage: 100, HitCount: 2},
		},
		Ultimate: roster.Ultimate{Name: "Finisher", Damage: 100, EnergyRequired: 100, Duration: 60},
	}
}

type testMatch struct {
	ecs      *ecs.ECS
	match    *components.MatchData
	fighters [2]*donburi.Entry
}

// newTestMatch builds a world already in the fighting phase with the
// systems registered in engine order.
func newTestMatch(t *testing.T, c1, c2 *roster.Character) *testMatch {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateClock)
	e.AddSystem(WhileFighting(UpdateFighters))
	e.AddSystem(WhileFighting(UpdatePhysics))
	e.AddSystem(WhileFighting(UpdateCombat))
	e.AddSystem(WhileFighting(UpdateProjectiles))
	e.AddSystem(UpdateEffects)
	e.AddSystem(WhileFighting(UpdateRoundClock))
	e.AddSystem(UpdatePhase)

	a := arena.Default()
	factory.CreateArenaSpace(e, a, 32)
	me := factory.CreateMatch(e, cfg.ModeLocal, a, 2, 1)

	tm := &testMatch{ecs: e, match: components.Match.Get(me)}
	tm.fighters[cfg.P1] = factory.CreateFighter(e, cfg.P1, c1, a)
	tm.fighters[cfg.P2] = factory.CreateFighter(e, cfg.P2, c2, a)
	tm.match.Fighters = [2]donburi.Entity{tm.fighters[cfg.P1].Entity(), tm.fighters[cfg.P2].Entity()}
	tm.match.Phase = cfg.PhaseFighting
	tm.match.TickPhase = cfg.PhaseFighting
	return tm
}

func (tm *testMatch) fighter(s cfg.Side) *components.FighterData {
	return components.Fighter.Get(tm.fighters[s])
}

// place moves both fighters onto the ground at the given x positions.
func (tm *testMatch) place(x1, x2 float64) {
	for side, x := range [2]float64{x1, x2} {
		f := tm.fighter(cfg.Side(side))
		f.X = x
		f.Y = tm.match.Arena.GroundY
	}
	FaceEachOther(tm.fighter(cfg.P1), tm.fighter(cfg.P2))
	for _, entry := range tm.fighters {
		factory.SyncHurtbox(entry)
	}
}

// tick runs one frame the way the engine does and returns its events.
func (tm *testMatch) tick(p1, p2 components.InputState) []messages.Event {
	components.Input.Get(tm.fighters[cfg.P1]).Latch(p1)
	components.Input.Get(tm.fighters[cfg.P2]).Latch(p2)
	tm.ecs.Update()
	if !tm.match.Skip {
		for _, f := range tm.fighters {
			components.Input.Get(f).ClearEdges()
		}
	}
	return tm.match.DrainEvents()
}

func (tm *testMatch) idle(n int) []messages.Event {
	var out []messages.Event
	for i := 0; i < n; i++ {
		out = append(out, tm.tick(components.InputState{}, components.InputState{})...)
	}
	return out
}

func press(buttons ...cfg.Button) components.InputState {
	var in components.InputState
	for _, b := range buttons {
		in.Press(b)
	}
	return in
}

func hold(buttons ...cfg.Button) components.InputState {
	var in components.InputState
	for _, b := range buttons {
		in.Hold(b)
	}
	return in
}

func neutral() components.InputState {
	return components.InputState{}
}

func hitEvents(events []messages.Event) []messages.HitEvent {
	var out []messages.HitEvent
	for _, ev := range events {
		if h, ok := ev.(messages.HitEvent); ok {
			out = append(out, h)
		}
	}
	return out
}
