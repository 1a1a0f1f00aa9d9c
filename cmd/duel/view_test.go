package main

import (
	"testing"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/core"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/automoto/doomerang-duel/shared/roster"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	var s core.Snapshot
	s.Fighters[cfg.P1].Character = roster.MustGet(roster.Kaito)
	s.Fighters[cfg.P2].Character = roster.MustGet(roster.Gorath)
	p1, p2 := s.Fighters[cfg.P1].Character.Name, s.Fighters[cfg.P2].Character.Name

	tests := []struct {
		name string
		ev   messages.Event
		want string
	}{
		{"hit", messages.HitEvent{Attacker: cfg.P1, Defender: cfg.P2, Kind: cfg.HitHeavy, Damage: 72}, p1 + " lands heavy for 72"},
		{"blocked", messages.HitEvent{Attacker: cfg.P2, Defender: cfg.P1, Kind: cfg.HitLight, Damage: 8, Blocked: true}, p1 + " blocks light (8)"},
		{"ko", messages.KOEvent{Victim: cfg.P2}, "K.O. " + p2 + " falls"},
		{"time up", messages.RoundEndEvent{Round: 2, Winner: cfg.P2, TimeUp: true}, "Time! Round 2 to " + p2},
		{"match", messages.MatchEndEvent{Winner: cfg.P1, Wins: [2]int{2, 1}}, p1 + " takes the match 2-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(s, tt.ev))
		})
	}
}

func TestSpectatorFeedKeepsLatest(t *testing.T) {
	var s core.Snapshot
	s.Fighters[cfg.P1].Character = roster.MustGet(roster.Kaito)
	s.Fighters[cfg.P2].Character = roster.MustGet(roster.Gorath)

	sp := &spectator{}
	for i := 0; i < feedLines+3; i++ {
		sp.pushFeed(s, []messages.Event{messages.KOEvent{Victim: cfg.P1}})
	}
	sp.pushFeed(s, []messages.Event{
		messages.ComboEvent{Attacker: cfg.P1, Name: "Rising Dragon", Bonus: 30},
		messages.HitEvent{Attacker: cfg.P1, Defender: cfg.P2},
	})

	assert.Len(t, sp.feed, feedLines)
	assert.Equal(t, s.Fighters[cfg.P1].Character.Name+": Rising Dragon! +30", sp.feed[feedLines-2])
}
