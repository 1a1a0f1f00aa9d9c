package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxConfig describes the strike an attacking action delivers.
type HitboxConfig struct {
	Kind       cfg.HitKind
	Box        cfg.Box
	Start      int // first active frame, also the frame a hit registers on
	End        int // first frame after the active window
	BaseDamage int
	HitStun    int
	Knockback  float64
}

// AttackProfile returns the strike of the fighter's current action. It
// reports false for non-attacking actions and for every special that is not
// a melee strike.
func AttackProfile(f *components.FighterData) (HitboxConfig, bool) {
	c := cfg.Combat
	switch a := f.Action.(type) {
	case components.ActionAttack:
		switch a.Kind {
		case cfg.LightAttack:
			return HitboxConfig{
				Kind:       cfg.HitLight,
				Box:        c.LightHitbox,
				Start:      c.Light.Startup,
				End:        c.Light.Startup + c.Light.Active,
				BaseDamage: c.LightDamage,
				HitStun:    c.HitStunLight,
				Knockback:  c.KnockbackLight,
			}, true
		case cfg.HeavyAttack:
			return HitboxConfig{
				Kind:       cfg.HitHeavy,
				Box:        c.HeavyHitbox,
				Start:      c.Heavy.Startup,
				End:        c.Heavy.Startup + c.Heavy.Active,
				BaseDamage: c.HeavyDamage,
				HitStun:    c.HitStunHeavy,
				Knockback:  c.KnockbackHeavy,
			}, true
		case cfg.Special1, cfg.Special2:
			idx := 0
			if a.Kind == cfg.Special2 {
				idx = 1
			}
			sp, ok := f.Character.Special(idx)
			if !ok || sp.Type != roster.MoveMelee {
				return HitboxConfig{}, false
			}
			box := c.SpecialHitbox
			box.W = sp.Range
			kb := sp.Knockback
			if kb == 0 {
				kb = c.KnockbackSpecial
			}
			return HitboxConfig{
				Kind:       cfg.HitSpecial,
				Box:        box,
				Start:      sp.Startup,
				End:        sp.Startup + sp.Active,
				BaseDamage: sp.Damage,
				HitStun:    c.HitStunSpecial,
				Knockback:  kb,
			}, true
		}
	case components.ActionUltimate:
		return HitboxConfig{
			Kind:       cfg.HitUltimate,
			Box:        c.UltimateHitbox,
			Start:      c.UltimateActiveStart,
			End:        c.UltimateActiveEnd,
			BaseDamage: f.Character.Ultimate.Damage,
			HitStun:    c.KnockdownDuration,
			Knockback:  c.KnockbackUltimate,
		}, true
	}
	return HitboxConfig{}, false
}

// AttackHitbox returns the fighter's hitbox in world space while its attack
// is in the active window.
func AttackHitbox(f *components.FighterData) (gamemath.Rect, bool) {
	hc, ok := AttackProfile(f)
	if !ok {
		return gamemath.Rect{}, false
	}
	frame, _ := components.Progress(f.Action)
	if frame < hc.Start || frame >= hc.End {
		return gamemath.Rect{}, false
	}
	r := gamemath.Rect{X: hc.Box.X, Y: f.Y + hc.Box.Y, W: hc.Box.W, H: hc.Box.H}
	return r.Mirror(f.X, f.Facing), true
}

// IsNewHit reports whether this is the one frame of the current attack on
// which a hit may register. Every later active frame is ignored, so each
// activation connects at most once.
func IsNewHit(f *components.FighterData) bool {
	hc, ok := AttackProfile(f)
	if !ok {
		return false
	}
	frame, _ := components.Progress(f.Action)
	return frame == hc.Start
}

// strikes tests a world-space box against the defender's hurtbox. resolv
// narrows the candidates and the exact box test confirms.
func strikes(space *resolv.Space, box gamemath.Rect, defender *donburi.Entry) bool {
	probe := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvHitbox)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvHurtbox)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tags.ResolvHurtbox) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry.Entity() != defender.Entity() {
			continue
		}
		return box.Overlaps(factory.HurtboxRect(components.Fighter.Get(defender)))
	}
	return false
}
