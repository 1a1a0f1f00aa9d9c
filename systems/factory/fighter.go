package factory

import (
	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/shared/arena"
	"github.com/automoto/doomerang-duel/shared/gamemath"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns a fighter at its side's arena spawn and registers its
// hurtbox in the collision space.
func CreateFighter(ecs *ecs.ECS, side cfg.Side, c *roster.Character, a *arena.Arena) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(ecs)

	hb := cfg.Combat.Hurtbox
	obj := resolv.NewObject(0, 0, hb.W, hb.H, tags.ResolvHurtbox)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	ResetFighter(fighter, side, c, a)
	return fighter
}

// ResetFighter replaces the fighter's state with a fresh round-start state.
func ResetFighter(fighter *donburi.Entry, side cfg.Side, c *roster.Character, a *arena.Arena) {
	sp := a.Spawns[side]
	components.Fighter.SetValue(fighter, components.NewFighterState(side, c, sp.X, sp.Y, sp.Facing))
	components.Input.SetValue(fighter, components.InputState{})
	SyncHurtbox(fighter)
}

// HurtboxRect is the fighter's damage-receiving box in world space.
func HurtboxRect(f *components.FighterData) gamemath.Rect {
	hb := cfg.Combat.Hurtbox
	r := gamemath.Rect{X: hb.X, Y: f.Y + hb.Y, W: hb.W, H: hb.H}
	return r.Mirror(f.X, f.Facing)
}

// SyncHurtbox moves the resolv body to match the fighter's position.
func SyncHurtbox(fighter *donburi.Entry) {
	f := components.Fighter.Get(fighter)
	obj := components.Object.Get(fighter)
	r := HurtboxRect(f)
	obj.X, obj.Y = r.X, r.Y
	obj.Update()
}

// AttachBot hands control of a fighter to the AI.
func AttachBot(fighter *donburi.Entry, c cfg.AIConfig, seed int64) {
	donburi.Add(fighter, components.Bot, &components.BotData{})
	components.Bot.SetValue(fighter, components.NewBotData(c, seed))
}
