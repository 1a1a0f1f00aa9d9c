// Package roster holds the static fighter catalog. It is pure data with no
// dependencies on the simulation, so menus and tools can import it freely.
package roster

import (
	"errors"
	"fmt"
)

// ID identifies a playable character or boss.
type ID string

// Symbol is an abstract attack input recorded for combo matching.
type Symbol int

const (
	SymbolLight Symbol = iota
	SymbolHeavy
	SymbolSpecial1
	SymbolSpecial2
)

var symbolNames = map[Symbol]string{
	SymbolLight:    "light",
	SymbolHeavy:    "heavy",
	SymbolSpecial1: "special1",
	SymbolSpecial2: "special2",
}

func (s Symbol) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

// MoveType selects how a special move behaves once its action starts.
type MoveType int

const (
	MoveMelee MoveType = iota
	MoveProjectile
	MoveGrab
	MoveCounter
	MoveTeleport
)

var moveTypeNames = map[MoveType]string{
	MoveMelee:      "melee",
	MoveProjectile: "projectile",
	MoveGrab:       "grab",
	MoveCounter:    "counter",
	MoveTeleport:   "teleport",
}

func (m MoveType) String() string {
	if name, ok := moveTypeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MoveType(%d)", int(m))
}

// Stats are the five base attributes of a character.
type Stats struct {
	MaxHP     int
	Attack    int
	Defense   int
	Speed     int
	ComboRate int
}

// SpecialMove is one of a character's (at most two) special moves.
type SpecialMove struct {
	Name       string
	Damage     int
	EnergyCost float64
	Range      float64
	Startup    int
	Active     int
	Recovery   int
	Type       MoveType
	Knockback  float64
}

// Duration is the total frame count of the move's action.
func (m SpecialMove) Duration() int {
	return m.Startup + m.Active + m.Recovery
}

// ComboSequence is a named string of attack symbols that pays a bonus when
// it appears at the tail of a fighter's recent input buffer.
type ComboSequence struct {
	Name     string
	Inputs   []Symbol
	Damage   int
	HitCount int
}

type Ultimate struct {
	Name           string
	Damage         int
	EnergyRequired float64
	Animation      string
	Duration       int
}

// Character is immutable reference data. Fighters hold a *Character and
// never copy or modify it.
type Character struct {
	ID          ID
	Name        string
	Title       string
	Description string
	Color       string
	AccentColor string
	Stats       Stats
	Specials    []SpecialMove
	Combos      []ComboSequence
	Ultimate    Ultimate
	IsBoss      bool
}

// Special returns the special move in slot idx (0 or 1), or false when the
// character has no move in that slot.
func (c *Character) Special(idx int) (SpecialMove, bool) {
	if idx < 0 || idx >= len(c.Specials) {
		return SpecialMove{}, false
	}
	return c.Specials[idx], true
}

// HasSpecialType reports whether any of the character's specials is of type t.
func (c *Character) HasSpecialType(t MoveType) bool {
	for _, s := range c.Specials {
		if s.Type == t {
			return true
		}
	}
	return false
}

var ErrUnknownCharacter = errors.New("unknown character")

// Get looks up a playable character or boss by id.
func Get(id ID) (*Character, error) {
	if c, ok := playable[id]; ok {
		return c, nil
	}
	if c, ok := bosses[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, id)
}

// MustGet is Get for ids known at compile time.
func MustGet(id ID) *Character {
	c, err := Get(id)
	if err != nil {
		panic(err)
	}
	return c
}

// Playable lists the selectable characters in menu order.
func Playable() []ID {
	return append([]ID(nil), playableOrder...)
}

// Bosses lists boss identities in campaign order.
func Bosses() []ID {
	return append([]ID(nil), bossOrder...)
}
