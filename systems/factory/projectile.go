package factory

import (
	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	"github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile launches a ranged special from the thrower's chest.
func CreateProjectile(ecs *ecs.ECS, owner *components.FighterData, damage float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	facing := float64(owner.Facing)
	data := components.ProjectileData{
		Owner:    owner.Side,
		X:        owner.X + facing*config.Projectile.SpawnX,
		Y:        owner.Y + config.Projectile.SpawnY,
		SpeedX:   facing * config.Projectile.Speed,
		Radius:   config.Projectile.Radius,
		Damage:   damage,
		Lifetime: config.Projectile.Lifetime,
		Color:    owner.Character.Color,
	}
	components.Projectile.SetValue(p, data)

	b := data.Bounds()
	obj := resolv.NewObject(b.X, b.Y, b.W, b.H, tags.ResolvProjectile)
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})

	// Add to space
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	return p
}

// DestroyProjectile removes a projectile and its collision body.
func DestroyProjectile(ecs *ecs.ECS, p *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(p)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(p.Entity())
}
