package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ProjectileData is an in-flight ranged special. Damage is snapshotted from
// the thrower's attack stat at launch.
type ProjectileData struct {
	Owner    cfg.Side
	X, Y     float64
	SpeedX   float64
	SpeedY   float64
	Radius   float64
	Damage   float64
	Age      int
	Lifetime int
	Color    string
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// Bounds is the projectile's collision square.
func (p *ProjectileData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: p.X - p.Radius, Y: p.Y - p.Radius, W: p.Radius * 2, H: p.Radius * 2}
}
