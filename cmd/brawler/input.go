package main

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding is the set of keys and pad buttons that drive one button.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// ControlScheme maps every logical button for one side.
type ControlScheme [cfg.ButtonCount]InputBinding

const analogDeadzone = 0.25

// Player 1: WASD + J/K/L/U, Space blocks, left Shift dodges.
// Player 2: arrows + numpad, with digit-row fallbacks.
var schemes = [2]ControlScheme{
	{
		cfg.ButtonUp:       {Keys: []ebiten.Key{ebiten.KeyW}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
		cfg.ButtonDown:     {Keys: []ebiten.Key{ebiten.KeyS}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
		cfg.ButtonLeft:     {Keys: []ebiten.Key{ebiten.KeyA}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
		cfg.ButtonRight:    {Keys: []ebiten.Key{ebiten.KeyD}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
		cfg.ButtonLight:    {Keys: []ebiten.Key{ebiten.KeyJ}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
		cfg.ButtonHeavy:    {Keys: []ebiten.Key{ebiten.KeyK}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop}},
		cfg.ButtonSpecial:  {Keys: []ebiten.Key{ebiten.KeyL}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},
		cfg.ButtonUltimate: {Keys: []ebiten.Key{ebiten.KeyU}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight}},
		cfg.ButtonBlock:    {Keys: []ebiten.Key{ebiten.KeySpace}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft}},
		cfg.ButtonDodge:    {Keys: []ebiten.Key{ebiten.KeyShiftLeft}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	},
	{
		cfg.ButtonUp:       {Keys: []ebiten.Key{ebiten.KeyArrowUp}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
		cfg.ButtonDown:     {Keys: []ebiten.Key{ebiten.KeyArrowDown}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
		cfg.ButtonLeft:     {Keys: []ebiten.Key{ebiten.KeyArrowLeft}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
		cfg.ButtonRight:    {Keys: []ebiten.Key{ebiten.KeyArrowRight}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
		cfg.ButtonLight:    {Keys: []ebiten.Key{ebiten.KeyNumpad1, ebiten.KeyDigit7}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
		cfg.ButtonHeavy:    {Keys: []ebiten.Key{ebiten.KeyNumpad2, ebiten.KeyDigit8}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop}},
		cfg.ButtonSpecial:  {Keys: []ebiten.Key{ebiten.KeyNumpad3, ebiten.KeyDigit9}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},
		cfg.ButtonUltimate: {Keys: []ebiten.Key{ebiten.KeyNumpad4, ebiten.KeyDigit0}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight}},
		cfg.ButtonBlock:    {Keys: []ebiten.Key{ebiten.KeyNumpad0, ebiten.KeyBackslash}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft}},
		cfg.ButtonDodge:    {Keys: []ebiten.Key{ebiten.KeyNumpadDecimal, ebiten.KeyBracketRight}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// inputPoller turns physical keys into per-side InputState. Edges are
// derived from the previous poll, so holding a button yields one press.
type inputPoller struct {
	previous [2][cfg.ButtonCount]bool
}

// Poll reads both sides. The nth connected gamepad drives side n.
func (p *inputPoller) Poll() (p1, p2 components.InputState) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var out [2]components.InputState
	for side := range schemes {
		var current [cfg.ButtonCount]bool
		for b, binding := range schemes[side] {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					current[b] = true
				}
			}
		}
		if side < len(gamepadIDs) {
			pollGamepad(&current, gamepadIDs[side], schemes[side])
		}

		for b := cfg.Button(0); b < cfg.ButtonCount; b++ {
			if !current[b] {
				continue
			}
			if b.HasEdge() && !p.previous[side][b] {
				out[side].Press(b)
			} else {
				out[side].Hold(b)
			}
		}
		p.previous[side] = current
	}
	return out[cfg.P1], out[cfg.P2]
}

func pollGamepad(current *[cfg.ButtonCount]bool, gpID ebiten.GamepadID, scheme ControlScheme) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}
	for b, binding := range scheme {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				current[b] = true
			}
		}
	}

	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	if horizontal < -analogDeadzone {
		current[cfg.ButtonLeft] = true
	}
	if horizontal > analogDeadzone {
		current[cfg.ButtonRight] = true
	}
	if vertical < -analogDeadzone {
		current[cfg.ButtonUp] = true
	}
	if vertical > analogDeadzone {
		current[cfg.ButtonDown] = true
	}
}
