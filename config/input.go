package config

// Button is a logical fighter input
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonLight
	ButtonHeavy
	ButtonSpecial
	ButtonUltimate
	ButtonBlock
	ButtonDodge
	ButtonCount // Must be last - used for array sizing
)

var buttonNames = [ButtonCount]string{
	"up", "down", "left", "right",
	"light", "heavy", "special", "ultimate", "block", "dodge",
}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// HasEdge reports whether the button produces a just-pressed flag. Directions
// and block are held-only.
func (b Button) HasEdge() bool {
	switch b {
	case ButtonLight, ButtonHeavy, ButtonSpecial, ButtonUltimate, ButtonDodge:
		return true
	}
	return false
}
