package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

// InputState is one side's logical input for a tick. Held mirrors the
// physical state; Pressed carries just-pressed edges for buttons that have
// them and must be cleared once a tick has consumed them.
type InputState struct {
	Held    [cfg.ButtonCount]bool
	Pressed [cfg.ButtonCount]bool
}

var Input = donburi.NewComponentType[InputState]()

func (s InputState) Down(b cfg.Button) bool {
	return s.Held[b]
}

func (s InputState) JustPressed(b cfg.Button) bool {
	return s.Pressed[b]
}

// Hold sets b as held without an edge.
func (s *InputState) Hold(b cfg.Button) {
	s.Held[b] = true
}

// Press sets b as held and, for edge buttons, just pressed.
func (s *InputState) Press(b cfg.Button) {
	s.Held[b] = true
	if b.HasEdge() {
		s.Pressed[b] = true
	}
}

// ClearEdges drops every just-pressed flag.
func (s *InputState) ClearEdges() {
	s.Pressed = [cfg.ButtonCount]bool{}
}

// Latch takes the held state of next and ORs its edges into s, so a press
// that lands on a skipped tick is still seen by the next simulated one.
func (s *InputState) Latch(next InputState) {
	s.Held = next.Held
	for i, p := range next.Pressed {
		if p {
			s.Pressed[i] = true
		}
	}
}

// Neutral reports whether no button is held or pressed.
func (s InputState) Neutral() bool {
	return s == InputState{}
}
