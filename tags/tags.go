package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
	HitEffect  = donburi.NewTag().SetName("HitEffect")
)

// Resolv tags for hit detection
const (
	ResolvHurtbox    = "hurtbox"
	ResolvHitbox     = "hitbox"
	ResolvProjectile = "projectile"
)
