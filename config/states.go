package config

import "fmt"

// ActionID identifies a fighter action for logic and presentation.
type ActionID int

const (
	Idle ActionID = iota
	WalkForward
	WalkBack
	Jump
	Crouch
	LightAttack
	HeavyAttack
	Special1
	Special2
	Ultimate
	Block
	Dodge
	HitStun
	Knockdown
	Dead
	Victory
)

// ActionNames maps ActionID to the label used by renderers and logs.
var ActionNames = map[ActionID]string{
	Idle:        "idle",
	WalkForward: "walk_forward",
	WalkBack:    "walk_back",
	Jump:        "jump",
	Crouch:      "crouch",
	LightAttack: "light_attack",
	HeavyAttack: "heavy_attack",
	Special1:    "special1",
	Special2:    "special2",
	Ultimate:    "ultimate",
	Block:       "block",
	Dodge:       "dodge",
	HitStun:     "hit_stun",
	Knockdown:   "knockdown",
	Dead:        "dead",
	Victory:     "victory",
}

func (a ActionID) String() string {
	if name, ok := ActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ActionID(%d)", int(a))
}

// IsAttack reports whether the action can carry a hitbox.
func (a ActionID) IsAttack() bool {
	switch a {
	case LightAttack, HeavyAttack, Special1, Special2, Ultimate:
		return true
	}
	return false
}

// Phase is the round/match phase.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseFighting
	PhaseRoundEnd
	PhaseMatchEnd
)

var phaseNames = map[Phase]string{
	PhaseIntro:    "intro",
	PhaseFighting: "fighting",
	PhaseRoundEnd: "round_end",
	PhaseMatchEnd: "match_end",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Side is a player slot. Player 1 is always processed first.
type Side int

const (
	P1 Side = iota
	P2
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == P1 {
		return "player1"
	}
	return "player2"
}

// HitKind classifies a hit for stun, shake and hit-effect scale.
type HitKind int

const (
	HitLight HitKind = iota
	HitHeavy
	HitSpecial
	HitUltimate
	HitBlock
)

var hitKindNames = map[HitKind]string{
	HitLight:    "light",
	HitHeavy:    "heavy",
	HitSpecial:  "special",
	HitUltimate: "ultimate",
	HitBlock:    "block",
}

func (k HitKind) String() string {
	if name, ok := hitKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("HitKind(%d)", int(k))
}

// ParticleKind tags decorative particles for the renderer.
type ParticleKind int

const (
	ParticleHit ParticleKind = iota
	ParticleBlock
	ParticleSpark
	ParticleDust
	ParticleEnergy
)

var particleKindNames = map[ParticleKind]string{
	ParticleHit:    "hit",
	ParticleBlock:  "block",
	ParticleSpark:  "spark",
	ParticleDust:   "dust",
	ParticleEnergy: "energy",
}

func (k ParticleKind) String() string {
	if name, ok := particleKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ParticleKind(%d)", int(k))
}

// Mode selects who drives player 2.
type Mode int

const (
	ModeSingle Mode = iota // player 2 is AI controlled
	ModeLocal              // both sides are human
)

func (m Mode) String() string {
	if m == ModeLocal {
		return "local_multi"
	}
	return "single"
}
