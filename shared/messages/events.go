package messages

import cfg "github.com/automoto/doomerang-duel/config"

// Event is an outbound notification produced during a tick. The engine
// returns them in emission order; drivers type-switch on the concrete value.
type Event interface {
	EventName() string
}

// RoundEndEvent fires once when a round is decided.
type RoundEndEvent struct {
	Round  int
	Winner cfg.Side
	TimeUp bool   // timer expiry rather than a KO
	HP     [2]int // final HP per side
	Wins   [2]int // round wins after this round
}

// MatchEndEvent fires once when a side reaches the round-win target.
type MatchEndEvent struct {
	Winner cfg.Side
	Rounds int
	Wins   [2]int
}

// HitEvent is emitted for every registered hit, melee or projectile.
type HitEvent struct {
	Attacker   cfg.Side
	Defender   cfg.Side
	Kind       cfg.HitKind
	Damage     int
	Blocked    bool
	Projectile bool
	ComboCount int // attacker's combo-hit counter after the hit
}

// ComboEvent is emitted when a combo sequence matches.
type ComboEvent struct {
	Attacker cfg.Side
	Name     string
	Bonus    int
}

// KOEvent is emitted when a fighter's HP reaches zero.
type KOEvent struct {
	Victim cfg.Side
	Frame  int
}

// UltimateEvent is emitted when a fighter spends full energy on an ultimate.
type UltimateEvent struct {
	Side cfg.Side
	Name string
}

func (RoundEndEvent) EventName() string { return "round_end" }
func (MatchEndEvent) EventName() string { return "match_end" }
func (HitEvent) EventName() string      { return "hit" }
func (ComboEvent) EventName() string    { return "combo" }
func (KOEvent) EventName() string       { return "ko" }
func (UltimateEvent) EventName() string { return "ultimate" }
