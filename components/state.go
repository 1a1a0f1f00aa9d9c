package components

import cfg "github.com/automoto/doomerang-duel/config"

// Action is a fighter's current action. Each variant carries only its own
// timers.
type Action interface {
	ID() cfg.ActionID
}

type ActionIdle struct{}

type ActionWalk struct {
	Back bool // moving away from the opponent
}

type ActionJump struct{}

type ActionCrouch struct{}

// ActionAttack covers light, heavy and both special slots. Kind is one of
// cfg.LightAttack, cfg.HeavyAttack, cfg.Special1, cfg.Special2.
type ActionAttack struct {
	Kind     cfg.ActionID
	Frame    int
	Duration int
}

type ActionUltimate struct {
	Frame    int
	Duration int
}

// ActionBlock is held guard when Stun is 0 and block-stun otherwise.
type ActionBlock struct {
	Stun int
}

type ActionDodge struct {
	Frame int
}

type ActionHitStun struct {
	Remaining int
}

type ActionKnockdown struct {
	Frame    int
	Duration int
}

type ActionDead struct {
	Frame int
}

type ActionVictory struct {
	Frame int
}

func (ActionIdle) ID() cfg.ActionID   { return cfg.Idle }
func (ActionJump) ID() cfg.ActionID   { return cfg.Jump }
func (ActionCrouch) ID() cfg.ActionID { return cfg.Crouch }
func (a ActionWalk) ID() cfg.ActionID {
	if a.Back {
		return cfg.WalkBack
	}
	return cfg.WalkForward
}
func (a ActionAttack) ID() cfg.ActionID  { return a.Kind }
func (ActionUltimate) ID() cfg.ActionID  { return cfg.Ultimate }
func (ActionBlock) ID() cfg.ActionID     { return cfg.Block }
func (ActionDodge) ID() cfg.ActionID     { return cfg.Dodge }
func (ActionHitStun) ID() cfg.ActionID   { return cfg.HitStun }
func (ActionKnockdown) ID() cfg.ActionID { return cfg.Knockdown }
func (ActionDead) ID() cfg.ActionID      { return cfg.Dead }
func (ActionVictory) ID() cfg.ActionID   { return cfg.Victory }

// Progress returns the elapsed and total frames of a timed action. Untimed
// actions report 0, 0.
func Progress(a Action) (frame, duration int) {
	switch v := a.(type) {
	case ActionAttack:
		return v.Frame, v.Duration
	case ActionUltimate:
		return v.Frame, v.Duration
	case ActionKnockdown:
		return v.Frame, v.Duration
	case ActionDodge:
		return v.Frame, cfg.DodgeTuning.Duration
	case ActionDead:
		return v.Frame, cfg.Combat.DeathDuration
	}
	return 0, 0
}
