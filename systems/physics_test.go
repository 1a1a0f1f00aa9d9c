package systems

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/arena"
	"github.com/stretchr/testify/assert"
)

func TestFaceEachOther(t *testing.T) {
	p1 := &components.FighterData{X: 500}
	p2 := &components.FighterData{X: 200}
	FaceEachOther(p1, p2)
	assert.Equal(t, cfg.FacingLeft, p1.Facing)
	assert.Equal(t, cfg.FacingRight, p2.Facing)

	p1.X = 100
	FaceEachOther(p1, p2)
	assert.Equal(t, cfg.FacingRight, p1.Facing)
	assert.Equal(t, cfg.FacingLeft, p2.Facing)
}

func TestPushApart(t *testing.T) {
	p1 := &components.FighterData{X: 400}
	p2 := &components.FighterData{X: 420}
	PushApart(p1, p2)
	assert.Equal(t, 390.0, p1.X)
	assert.Equal(t, 430.0, p2.X)

	PushApart(p1, p2)
	assert.Equal(t, 390.0, p1.X, "already separated")
}

func TestIntegrateClampsToArena(t *testing.T) {
	a := arena.Default()
	f := &components.FighterData{Character: dummy(), X: a.MaxX - 2, Y: a.GroundY, SpeedX: 10, OnGround: true, Action: components.ActionWalk{}}

	integrate(f, a)
	assert.Equal(t, a.MaxX, f.X)
	assert.Equal(t, a.GroundY, f.Y)
	assert.Equal(t, 1.0, f.AnimPhase)
}

func TestIdleFriction(t *testing.T) {
	a := arena.Default()
	f := &components.FighterData{Character: dummy(), X: 400, Y: a.GroundY, SpeedX: 10, OnGround: true, Action: components.ActionIdle{}}

	integrate(f, a)
	assert.Equal(t, 410.0, f.X)
	assert.InDelta(t, 8.5, f.SpeedX, 1e-9)
}
