package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/yohamta/donburi"
)

// FighterData is one combatant's per-round simulation state. X, Y is the
// feet position.
type FighterData struct {
	Side      cfg.Side
	Character *roster.Character

	X, Y           float64
	SpeedX, SpeedY float64
	Facing         int
	OnGround       bool

	HP     int
	Energy float64

	Action Action

	ComboCount  int // unblocked hits landed in the current string
	ComboTimer  int // ticks until ComboCount may reset
	Symbols     []roster.Symbol
	SymbolTimer int // ticks until Symbols clears

	DodgeCooldown int
	Invincible    int
	AnimPhase     float64
}

var Fighter = donburi.NewComponentType[FighterData]()

// NewFighterState builds a fresh round-start fighter.
func NewFighterState(side cfg.Side, c *roster.Character, x, y float64, facing int) FighterData {
	return FighterData{
		Side:      side,
		Character: c,
		X:         x,
		Y:         y,
		Facing:    facing,
		OnGround:  true,
		HP:        c.Stats.MaxHP,
		Action:    ActionIdle{},
	}
}

// Locked reports whether the fighter ignores new input this tick.
func (f *FighterData) Locked() bool {
	switch a := f.Action.(type) {
	case ActionHitStun:
		return a.Remaining > 0
	case ActionBlock:
		return a.Stun > 0
	case ActionDead:
		return true
	case ActionAttack:
		return a.Frame < a.Duration
	case ActionUltimate:
		return a.Frame < a.Duration
	case ActionKnockdown:
		return a.Frame < a.Duration
	}
	return false
}

func (f *FighterData) IsDead() bool {
	_, ok := f.Action.(ActionDead)
	return ok
}

func (f *FighterData) IsBlocking() bool {
	_, ok := f.Action.(ActionBlock)
	return ok
}

func (f *FighterData) IsDodging() bool {
	_, ok := f.Action.(ActionDodge)
	return ok
}

// Stunned reports hit-stun or knockdown, the states a combo string keeps the
// opponent in.
func (f *FighterData) Stunned() bool {
	switch f.Action.(type) {
	case ActionHitStun, ActionKnockdown:
		return true
	}
	return false
}

// HitStunFrames returns remaining hit-stun, 0 when not in hit-stun.
func (f *FighterData) HitStunFrames() int {
	if a, ok := f.Action.(ActionHitStun); ok {
		return a.Remaining
	}
	return 0
}

// BlockStunFrames returns remaining block-stun, 0 when not block-stunned.
func (f *FighterData) BlockStunFrames() int {
	if a, ok := f.Action.(ActionBlock); ok {
		return a.Stun
	}
	return 0
}

// AddEnergy adds v and clamps to [0, MaxEnergy].
func (f *FighterData) AddEnergy(v float64) {
	f.Energy += v
	if f.Energy > cfg.Combat.MaxEnergy {
		f.Energy = cfg.Combat.MaxEnergy
	}
	if f.Energy < 0 {
		f.Energy = 0
	}
}

// TakeDamage subtracts d and clamps to [0, MaxHP].
func (f *FighterData) TakeDamage(d int) {
	f.HP -= d
	if f.HP < 0 {
		f.HP = 0
	}
	if f.HP > f.Character.Stats.MaxHP {
		f.HP = f.Character.Stats.MaxHP
	}
}

func (f *FighterData) HPRatio() float64 {
	return float64(f.HP) / float64(f.Character.Stats.MaxHP)
}

// PushSymbol records an attack input and restarts the buffer timeout.
func (f *FighterData) PushSymbol(s roster.Symbol) {
	f.Symbols = append(f.Symbols, s)
	f.SymbolTimer = cfg.Combat.ComboTimeout
}
