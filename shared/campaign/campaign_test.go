package campaign

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCampaigns(t *testing.T) {
	c := Default()
	for _, tier := range Tiers {
		p, err := c.Path(tier)
		require.NoError(t, err, tier)
		assert.Equal(t, tier, p.Difficulty)
		require.NotEmpty(t, p.Stages)
		last := p.Stages[len(p.Stages)-1]
		assert.True(t, last.IsBoss, "%s should end on a boss", tier)
	}
}

func TestPathUnknown(t *testing.T) {
	_, err := Default().Path("nightmare")
	assert.True(t, errors.Is(err, ErrUnknownDifficulty))
}

func TestParseRejectsUnknownOpponent(t *testing.T) {
	_, err := Parse([]byte("easy:\n  stages:\n    - name: x\n      opponent: ghost\n      difficulty: 0.1\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, roster.ErrUnknownCharacter))
}

func TestParseRejectsBadDifficulty(t *testing.T) {
	_, err := Parse([]byte("easy:\n  stages:\n    - name: x\n      opponent: kaito\n      difficulty: 1.5\n"))
	require.Error(t, err)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte("easy: [unterminated"))
	require.Error(t, err)
}

func TestRunProgression(t *testing.T) {
	p := &Path{Stages: []Stage{{Opponent: roster.Hana}, {Opponent: roster.ShadowLord, IsBoss: true}}}
	r := NewRun(p, roster.Kaito)

	st, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, roster.Hana, st.Opponent)

	assert.Equal(t, InProgress, r.Record(true))
	st, _ = r.Current()
	assert.Equal(t, roster.ShadowLord, st.Opponent)

	assert.Equal(t, Cleared, r.Record(true))
	_, ok = r.Current()
	assert.False(t, ok)
}

func TestRunEndsOnLoss(t *testing.T) {
	p := &Path{Stages: []Stage{{Opponent: roster.Hana}, {Opponent: roster.Yuki}}}
	r := NewRun(p, roster.Kaito)
	assert.Equal(t, Defeated, r.Record(false))
	assert.Equal(t, Defeated, r.Record(true))
	_, ok := r.Current()
	assert.False(t, ok)
}
