package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves projectiles, expires stale ones and applies hits
// to the side that did not throw them.
func UpdateProjectiles(ecs *ecs.ECS) {
	m := matchData(ecs)
	var live []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		live = append(live, e)
	})

	entries := fighterEntries(ecs, m)
	var toRemove []*donburi.Entry
	for _, e := range live {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		p.X += p.SpeedX
		p.Y += p.SpeedY
		p.Age++
		b := p.Bounds()
		obj.X, obj.Y = b.X, b.Y
		obj.Update()

		// Off-screen or expired
		margin := cfg.Projectile.Margin
		if p.Age >= p.Lifetime || p.X < -margin || p.X > m.Arena.Width+margin {
			toRemove = append(toRemove, e)
			continue
		}

		targetEntry := entries[p.Owner.Opponent()]
		target := components.Fighter.Get(targetEntry)
		if target.Invincible > 0 || target.IsDead() {
			continue
		}
		if !projectileHits(obj, b, targetEntry) {
			continue
		}

		thrower := components.Fighter.Get(entries[p.Owner])
		applyHit(ecs, m, thrower, target, strike{
			Kind:       cfg.HitSpecial,
			Damage:     gamemath.RoundInt(p.Damage),
			HitStun:    cfg.Combat.HitStunProjectile,
			Knockback:  cfg.Combat.KnockbackProjectile,
			Dir:        gamemath.Sign(p.SpeedX),
			X:          p.X,
			Y:          p.Y,
			Color:      p.Color,
			Projectile: true,
		})
		toRemove = append(toRemove, e)
	}

	for _, e := range toRemove {
		factory.DestroyProjectile(ecs, e)
	}
}

func projectileHits(obj *components.ObjectData, bounds gamemath.Rect, target *donburi.Entry) bool {
	check := obj.Check(0, 0, tags.ResolvHurtbox)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvHurtbox) {
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Entity() == target.Entity() {
			return bounds.Overlaps(factory.HurtboxRect(components.Fighter.Get(target)))
		}
	}
	return false
}
