package systems

import (
	"math"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/arena"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates both fighters, turns them to face each other,
// separates overlapping bodies and syncs their hurtboxes.
func UpdatePhysics(e *ecs.ECS) {
	m := matchData(e)
	entries := fighterEntries(e, m)
	p1 := components.Fighter.Get(entries[cfg.P1])
	p2 := components.Fighter.Get(entries[cfg.P2])

	integrate(p1, m.Arena)
	integrate(p2, m.Arena)
	FaceEachOther(p1, p2)
	PushApart(p1, p2)

	for _, entry := range entries {
		factory.SyncHurtbox(entry)
	}
}

func integrate(f *components.FighterData, a *arena.Arena) {
	p := cfg.Physics

	if !f.OnGround {
		f.SpeedY += p.Gravity
	}
	f.X += f.SpeedX
	f.Y += f.SpeedY

	// Landing
	if f.Y >= a.GroundY {
		f.Y = a.GroundY
		f.SpeedY = 0
		if !f.OnGround {
			f.OnGround = true
			if _, jumping := f.Action.(components.ActionJump); jumping {
				f.Action = components.ActionIdle{}
			}
		}
	}

	f.X = a.Clamp(f.X)

	if _, idle := f.Action.(components.ActionIdle); idle && f.OnGround {
		f.SpeedX = gamemath.ApplyFriction(f.SpeedX, p.IdleFriction)
	}

	f.AnimPhase += float64(f.Character.Stats.Speed) / p.SpeedStatRef
}

// FaceEachOther points the left fighter right and the right fighter left.
// When x is equal, player 1 faces left.
func FaceEachOther(p1, p2 *components.FighterData) {
	if p1.X < p2.X {
		p1.Facing, p2.Facing = cfg.FacingRight, cfg.FacingLeft
	} else {
		p1.Facing, p2.Facing = cfg.FacingLeft, cfg.FacingRight
	}
}

// PushApart splits any overlap below the minimum separation evenly between
// the two fighters.
func PushApart(p1, p2 *components.FighterData) {
	dist := math.Abs(p1.X - p2.X)
	if dist >= cfg.Physics.MinSeparation {
		return
	}
	push := (cfg.Physics.MinSeparation - dist) / 2
	if p1.X < p2.X {
		p1.X -= push
		p2.X += push
	} else {
		p1.X += push
		p2.X -= push
	}
}
