// Package campaign loads the single-player stage ladders and tracks a
// player's progress through one of them.
package campaign

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/automoto/doomerang-duel/shared/roster"
	"gopkg.in/yaml.v3"
)

// Difficulty names a campaign tier.
type Difficulty string

const (
	Easy      Difficulty = "easy"
	Normal    Difficulty = "normal"
	Hard      Difficulty = "hard"
	Legendary Difficulty = "legendary"
)

// Tiers lists the difficulties in menu order.
var Tiers = []Difficulty{Easy, Normal, Hard, Legendary}

// Stage is one fight in a campaign.
type Stage struct {
	Name        string    `yaml:"name"`
	Opponent    roster.ID `yaml:"opponent"`
	Difficulty  float64   `yaml:"difficulty"` // 0-1, fed to the AI config
	IsBoss      bool      `yaml:"boss"`
	Description string    `yaml:"description"`
}

// Path is the ordered stage list for one difficulty.
type Path struct {
	Difficulty  Difficulty `yaml:"-"`
	Description string     `yaml:"description"`
	Stages      []Stage    `yaml:"stages"`
}

// Campaigns maps each tier to its path.
type Campaigns map[Difficulty]*Path

var ErrUnknownDifficulty = errors.New("unknown difficulty")

//go:embed campaigns.yaml
var defaultYAML []byte

// Parse decodes campaign YAML and validates every opponent against the roster.
func Parse(data []byte) (Campaigns, error) {
	var out Campaigns
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode campaigns: %w", err)
	}
	for diff, path := range out {
		if path == nil || len(path.Stages) == 0 {
			return nil, fmt.Errorf("campaign %s: no stages", diff)
		}
		path.Difficulty = diff
		for i, st := range path.Stages {
			if _, err := roster.Get(st.Opponent); err != nil {
				return nil, fmt.Errorf("campaign %s stage %d: %w", diff, i+1, err)
			}
			if st.Difficulty < 0 || st.Difficulty > 1 {
				return nil, fmt.Errorf("campaign %s stage %d: difficulty %.2f out of range", diff, i+1, st.Difficulty)
			}
		}
	}
	return out, nil
}

// Default returns the built-in campaigns.
func Default() Campaigns {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Path returns the stage list for a tier.
func (c Campaigns) Path(d Difficulty) (*Path, error) {
	p, ok := c[d]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
	return p, nil
}

// Outcome is the state of a run after a match result is recorded.
type Outcome int

const (
	InProgress Outcome = iota
	Cleared
	Defeated
)

// Run tracks one player's walk through a path. A single loss ends it.
type Run struct {
	Path    *Path
	Player  roster.ID
	Index   int
	Outcome Outcome
}

// NewRun starts at the first stage of a path.
func NewRun(path *Path, player roster.ID) *Run {
	return &Run{Path: path, Player: player}
}

// Current returns the stage to fight next.
func (r *Run) Current() (Stage, bool) {
	if r.Outcome != InProgress || r.Index >= len(r.Path.Stages) {
		return Stage{}, false
	}
	return r.Path.Stages[r.Index], true
}

// Record applies a match result for the current stage.
func (r *Run) Record(playerWon bool) Outcome {
	if r.Outcome != InProgress {
		return r.Outcome
	}
	if !playerWon {
		r.Outcome = Defeated
		return r.Outcome
	}
	r.Index++
	if r.Index >= len(r.Path.Stages) {
		r.Outcome = Cleared
	}
	return r.Outcome
}
