package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func matchData(e *ecs.ECS) *components.MatchData {
	return components.Match.Get(components.Match.MustFirst(e.World))
}

// fighterEntries returns both fighters indexed by side. Systems always walk
// this array rather than a component query so player 1 goes first.
func fighterEntries(e *ecs.ECS, m *components.MatchData) [2]*donburi.Entry {
	return [2]*donburi.Entry{
		e.World.Entry(m.Fighters[cfg.P1]),
		e.World.Entry(m.Fighters[cfg.P2]),
	}
}

// UpdateClock advances the frame counters and decides whether this tick is
// a slow-motion skip. Must run first.
func UpdateClock(e *ecs.ECS) {
	m := matchData(e)
	m.Frame++
	m.PhaseFrame++
	m.TickPhase = m.Phase
	m.Skip = m.SlowMotion > 0 && m.Frame%cfg.Match.SlowMotionStride != 0
}

// IsFighting returns true if full simulation runs this tick
func IsFighting(e *ecs.ECS) bool {
	return matchData(e).Simulating(cfg.PhaseFighting)
}

// UpdateRoundClock counts the round timer down, decays combo counters and
// ends the round on a KO or time out.
func UpdateRoundClock(e *ecs.ECS) {
	m := matchData(e)
	m.Timer--

	entries := fighterEntries(e, m)
	p1 := components.Fighter.Get(entries[cfg.P1])
	p2 := components.Fighter.Get(entries[cfg.P2])
	decayCombo(p1, p2)
	decayCombo(p2, p1)

	if p1.HP > 0 && p2.HP > 0 && m.Timer > 0 {
		return
	}

	winner := RoundWinner(p1.HP, p2.HP)
	m.Wins[winner]++
	w := p1
	if winner == cfg.P2 {
		w = p2
	}
	w.Action = components.ActionVictory{}

	m.Phase = cfg.PhaseRoundEnd
	m.PhaseFrame = 0
	m.Emit(messages.RoundEndEvent{
		Round:  m.Round,
		Winner: winner,
		TimeUp: p1.HP > 0 && p2.HP > 0,
		HP:     [2]int{p1.HP, p2.HP},
		Wins:   m.Wins,
	})
}

// RoundWinner picks the round winner from final HP. A lone survivor wins;
// otherwise the weakly greater HP wins, so exact ties (including a double
// KO) go to player 1.
func RoundWinner(p1HP, p2HP int) cfg.Side {
	switch {
	case p1HP <= 0 && p2HP <= 0:
	case p1HP <= 0:
		return cfg.P2
	case p2HP <= 0:
		return cfg.P1
	}
	if p1HP >= p2HP {
		return cfg.P1
	}
	return cfg.P2
}

func decayCombo(f, opp *components.FighterData) {
	if f.ComboCount == 0 {
		return
	}
	if f.ComboTimer > 0 {
		f.ComboTimer--
	}
	if f.ComboTimer == 0 && !opp.Stunned() {
		f.ComboCount = 0
	}
}

// UpdatePhase handles the timed intro and round-end holds.
func UpdatePhase(e *ecs.ECS) {
	m := matchData(e)
	switch {
	case m.Simulating(cfg.PhaseIntro):
		if m.PhaseFrame >= cfg.Match.IntroDuration {
			m.Phase = cfg.PhaseFighting
			m.PhaseFrame = 0
		}

	case m.Simulating(cfg.PhaseRoundEnd):
		entries := fighterEntries(e, m)
		for _, entry := range entries {
			animateRoundEnd(components.Fighter.Get(entry))
		}
		if m.PhaseFrame < cfg.Match.RoundEndDuration {
			return
		}
		if m.Wins[cfg.P1] >= m.RoundsToWin || m.Wins[cfg.P2] >= m.RoundsToWin {
			winner := cfg.P2
			if m.Wins[cfg.P1] >= m.RoundsToWin {
				winner = cfg.P1
			}
			m.Phase = cfg.PhaseMatchEnd
			m.PhaseFrame = 0
			m.Emit(messages.MatchEndEvent{Winner: winner, Rounds: m.Round, Wins: m.Wins})
			return
		}
		ResetRound(e)
	}
}

func animateRoundEnd(f *components.FighterData) {
	switch a := f.Action.(type) {
	case components.ActionVictory:
		a.Frame++
		f.Action = a
	case components.ActionDead:
		if a.Frame < cfg.Combat.DeathDuration {
			a.Frame++
		}
		f.Action = a
	}
}

// ResetRound rebuilds both fighters at their spawns, clears transient
// effects and returns to the intro.
func ResetRound(e *ecs.ECS) {
	m := matchData(e)
	for side, entry := range fighterEntries(e, m) {
		f := components.Fighter.Get(entry)
		factory.ResetFighter(entry, cfg.Side(side), f.Character, m.Arena)
		if entry.HasComponent(components.Bot) {
			components.Bot.Get(entry).Reset()
		}
	}
	factory.ClearEffects(e)

	m.Timer = cfg.Match.RoundTicks()
	m.Round++
	m.Phase = cfg.PhaseIntro
	m.PhaseFrame = 0
	m.ScreenShake = 0
	m.SlowMotion = 0
	m.LastHitType = ""
	m.ComboDisplay = components.ComboDisplay{}
}
