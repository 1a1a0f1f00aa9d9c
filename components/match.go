package components

import (
	"math/rand"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/arena"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/yohamta/donburi"
)

// MatchData is the round/match aggregate. This is a singleton component -
// only one match exists per world.
type MatchData struct {
	Phase       cfg.Phase
	Mode        cfg.Mode
	Arena       *arena.Arena
	RoundsToWin int

	Frame      int // monotonic, never reset
	PhaseFrame int // ticks since the current phase began
	Timer      int // round countdown in ticks
	Round      int
	Wins       [2]int

	// TickPhase is the phase captured at the start of the tick. Systems gate
	// on it so a transition made mid-tick takes effect next tick.
	TickPhase cfg.Phase
	// Skip is set on slow-motion ticks that only advance effects.
	Skip bool

	Fighters [2]donburi.Entity

	ScreenShake  int
	SlowMotion   int
	LastHitType  string
	ComboDisplay ComboDisplay

	Events []messages.Event
	FX     *rand.Rand // particle scatter only, never read by game logic
}

var Match = donburi.NewComponentType[MatchData]()

// Emit queues an outbound event for the current tick.
func (m *MatchData) Emit(ev messages.Event) {
	m.Events = append(m.Events, ev)
}

// DrainEvents returns and clears the queued events.
func (m *MatchData) DrainEvents() []messages.Event {
	out := m.Events
	m.Events = nil
	return out
}

// Simulating reports whether full simulation runs this tick in the given phase.
func (m *MatchData) Simulating(p cfg.Phase) bool {
	return !m.Skip && m.TickPhase == p
}
