package main

import (
	"context"
	"fmt"
	"strings"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/core"
	"github.com/automoto/doomerang-duel/shared/messages"
	"github.com/gdamore/tcell/v2"
)

const (
	feedLines    = 5
	pixelsPerRow = 40.0
	barWidth     = 30
)

// spectator draws snapshots into a terminal.
type spectator struct {
	screen tcell.Screen
	feed   []string
}

// watch runs the fight in real time and renders every frame. Esc, Ctrl-C or
// q cancels.
func watch(ctx context.Context, en *core.Engine) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					cancel()
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	sp := &spectator{screen: screen}
	loop := core.NewGameLoop(en, cfg.Match.TicksPerSecond, nil, sp.frame)
	return loop.Run(ctx)
}

func (sp *spectator) frame(s core.Snapshot, events []messages.Event) {
	sp.pushFeed(s, events)
	sp.draw(s)
}

// pushFeed appends event lines and keeps the latest feedLines.
func (sp *spectator) pushFeed(s core.Snapshot, events []messages.Event) {
	for _, ev := range events {
		if line := describe(s, ev); line != "" {
			sp.feed = append(sp.feed, line)
		}
	}
	if len(sp.feed) > feedLines {
		sp.feed = sp.feed[len(sp.feed)-feedLines:]
	}
}

func (sp *spectator) draw(s core.Snapshot) {
	scr := sp.screen
	scr.Clear()
	w, h := scr.Size()

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	p1, p2 := s.Fighters[cfg.P1], s.Fighters[cfg.P2]

	header := fmt.Sprintf("ROUND %d   %02d   %d - %d   %s", s.Round, s.Seconds(), s.Wins[cfg.P1], s.Wins[cfg.P2], s.Phase)
	sp.text((w-len(header))/2, 0, header, white)

	sp.bar(1, 1, p1, false)
	sp.bar(w-barWidth-3, 1, p2, true)

	groundRow := h - feedLines - 2
	for x := 0; x < w; x++ {
		scr.SetContent(x, groundRow, '▀', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	col := func(x float64) int {
		return int(x / s.Arena.Width * float64(w))
	}
	row := func(y float64) int {
		return groundRow - 1 - int((s.Arena.GroundY-y)/pixelsPerRow)
	}

	for _, f := range s.Fighters {
		sp.fighter(f, col(f.X), row(f.Y))
		if f.HitActive {
			style := tcell.StyleDefault.Foreground(tcell.ColorRed)
			for x := col(f.Hitbox.X); x <= col(f.Hitbox.X+f.Hitbox.W); x++ {
				scr.SetContent(x, row(f.Y)-1, '=', nil, style)
			}
		}
	}
	for _, p := range s.Projectiles {
		scr.SetContent(col(p.X), row(p.Y), '●', nil, tcell.StyleDefault.Foreground(tcell.GetColor(p.Color)))
	}
	for _, e := range s.HitEffects {
		scr.SetContent(col(e.X), row(e.Y), '✶', nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	if s.ComboDisplay.Timer > 0 {
		msg := fmt.Sprintf("%d HIT COMBO", s.ComboDisplay.Count)
		x := 2
		if s.ComboDisplay.Side == cfg.P2 {
			x = w - len(msg) - 2
		}
		sp.text(x, 4, msg, tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true))
	}
	if s.Phase == cfg.PhaseMatchEnd {
		winner := p1
		if s.Wins[cfg.P2] > s.Wins[cfg.P1] {
			winner = p2
		}
		msg := strings.ToUpper(winner.Character.Name) + " WINS"
		sp.text((w-len(msg))/2, groundRow/2, msg, white.Bold(true))
	}

	for i, line := range sp.feed {
		sp.text(1, groundRow+1+i, line, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}

	scr.Show()
}

// bar draws name, HP and energy for one fighter.
func (sp *spectator) bar(x, y int, f core.FighterView, rightAligned bool) {
	color := tcell.GetColor(f.Character.Color)
	name := f.Character.Name
	if rightAligned {
		sp.text(x+barWidth+2-len(name), y, name, tcell.StyleDefault.Foreground(color))
	} else {
		sp.text(x, y, name, tcell.StyleDefault.Foreground(color))
	}

	hp := barWidth * f.HP / f.MaxHP
	energy := int(float64(barWidth) * f.Energy / cfg.Combat.MaxEnergy)
	for i := 0; i < barWidth; i++ {
		hpRune, enRune := '░', '░'
		if i < hp {
			hpRune = '█'
		}
		if i < energy {
			enRune = '▬'
		}
		cx := x + 1 + i
		if rightAligned {
			cx = x + barWidth - i
		}
		sp.screen.SetContent(cx, y+1, hpRune, nil, tcell.StyleDefault.Foreground(tcell.ColorGreen))
		sp.screen.SetContent(cx, y+2, enRune, nil, tcell.StyleDefault.Foreground(tcell.ColorBlue))
	}
}

// fighter draws a three-row stick figure with its feet at (x, y).
func (sp *spectator) fighter(f core.FighterView, x, y int) {
	style := tcell.StyleDefault.Foreground(tcell.GetColor(f.Character.Color))
	if f.Invincible {
		style = style.Dim(true)
	}

	head, body, legs := 'O', '|', 'Λ'
	switch f.Action {
	case cfg.LightAttack, cfg.HeavyAttack, cfg.Special1, cfg.Special2, cfg.Ultimate:
		body = '>'
		if f.Facing < 0 {
			body = '<'
		}
	case cfg.Block:
		body = ']'
		if f.Facing < 0 {
			body = '['
		}
	case cfg.Crouch:
		head, body = ' ', 'O'
	case cfg.HitStun:
		head = '@'
	case cfg.Knockdown, cfg.Dead:
		sp.text(x-1, y, "~O_", style)
		return
	case cfg.Victory:
		body = 'Y'
	}
	sp.screen.SetContent(x, y-2, head, nil, style)
	sp.screen.SetContent(x, y-1, body, nil, style)
	sp.screen.SetContent(x, y, legs, nil, style)
}

func (sp *spectator) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		sp.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func describe(s core.Snapshot, ev messages.Event) string {
	name := func(side cfg.Side) string {
		return s.Fighters[side].Character.Name
	}
	switch e := ev.(type) {
	case messages.HitEvent:
		if e.Blocked {
			return fmt.Sprintf("%s blocks %s (%d)", name(e.Defender), e.Kind, e.Damage)
		}
		return fmt.Sprintf("%s lands %s for %d", name(e.Attacker), e.Kind, e.Damage)
	case messages.ComboEvent:
		return fmt.Sprintf("%s: %s! +%d", name(e.Attacker), e.Name, e.Bonus)
	case messages.UltimateEvent:
		return fmt.Sprintf("%s unleashes %s", name(e.Side), e.Name)
	case messages.KOEvent:
		return fmt.Sprintf("K.O. %s falls", name(e.Victim))
	case messages.RoundEndEvent:
		if e.TimeUp {
			return fmt.Sprintf("Time! Round %d to %s", e.Round, name(e.Winner))
		}
		return fmt.Sprintf("Round %d to %s", e.Round, name(e.Winner))
	case messages.MatchEndEvent:
		return fmt.Sprintf("%s takes the match %d-%d", name(e.Winner), e.Wins[cfg.P1], e.Wins[cfg.P2])
	}
	return ""
}
