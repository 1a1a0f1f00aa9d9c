package components

import (
	"fmt"
	"math/rand"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/yohamta/donburi"
)

// Plan is the AI's current high-level intent.
type Plan int

const (
	PlanApproach Plan = iota
	PlanRetreat
	PlanAttack
	PlanDefend
	PlanSpecial
	PlanCombo
	PlanUltimate
	PlanIdle
	PlanCount
)

var planNames = [PlanCount]string{
	"approach", "retreat", "attack", "defend", "special", "combo", "ultimate", "idle",
}

func (p Plan) String() string {
	if p < 0 || p >= PlanCount {
		return fmt.Sprintf("Plan(%d)", int(p))
	}
	return planNames[p]
}

// BotData is the private memory of an AI-controlled side. It is attached to
// the fighter it drives, created with the fight and reset each round.
type BotData struct {
	Config        cfg.AIConfig
	Plan          Plan
	DecisionTimer int
	Sequence      []roster.Symbol // queued combo inputs
	Cursor        int
	Rand          *rand.Rand
}

var Bot = donburi.NewComponentType[BotData]()

// NewBotData creates bot memory with its own deterministic random source.
func NewBotData(c cfg.AIConfig, seed int64) BotData {
	return BotData{
		Config: c,
		Plan:   PlanIdle,
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

// Reset clears per-round memory, keeping the profile and random source.
func (b *BotData) Reset() {
	b.Plan = PlanIdle
	b.DecisionTimer = 0
	b.Sequence = nil
	b.Cursor = 0
}
