package main

import (
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/core"
	"github.com/automoto/doomerang-duel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // text/v2 needs a different face type
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	feedLines = 4
	barWidth  = 360
	barHeight = 18
)

var (
	white      = color.RGBA{255, 255, 255, 255}
	sky        = color.RGBA{24, 22, 40, 255}
	floor      = color.RGBA{60, 48, 40, 255}
	barBack    = color.RGBA{40, 40, 40, 255}
	hpColor    = color.RGBA{40, 220, 40, 255}
	energyFull = color.RGBA{255, 200, 40, 255}
	energyFill = color.RGBA{60, 140, 255, 255}
	hitboxRed  = color.RGBA{255, 0, 0, 140}
	hurtboxRim = color.RGBA{0, 255, 255, 200}
	overlay    = color.RGBA{0, 0, 0, 140}
)

// hex parses a "#rrggbb" colour, falling back to white.
func hex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return white
	}
	return c
}

func withAlpha(c color.Color, a float32) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(math.Max(0, math.Min(1, float64(a))) * 255)}
}

// shakeOffset jitters the playfield while the shake counter runs.
func shakeOffset(s core.Snapshot) (float32, float32) {
	if s.ScreenShake <= 0 {
		return 0, 0
	}
	amp := float64(s.ScreenShake)
	return float32(math.Sin(float64(s.Frame)*1.7) * amp), float32(math.Cos(float64(s.Frame)*2.3) * amp / 2)
}

func drawArena(screen *ebiten.Image, s core.Snapshot) {
	screen.Fill(sky)
	_, dy := shakeOffset(s)
	a := s.Arena
	vector.FillRect(screen, 0, float32(a.GroundY)+dy, float32(a.Width), float32(a.Height-a.GroundY), floor, false)
}

func drawFighters(screen *ebiten.Image, s core.Snapshot, hitboxes bool) {
	dx, dy := shakeOffset(s)
	for _, f := range s.Fighters {
		body := hex(f.Character.Color)
		if f.Invincible && s.Frame%4 < 2 {
			body = withAlpha(body, 0.4)
		}
		hb := f.Hurtbox
		x, y := float32(hb.X)+dx, float32(hb.Y)+dy

		// Idle bob
		bob := float32(math.Sin(f.AnimPhase) * 2)
		vector.FillRect(screen, x, y+bob, float32(hb.W), float32(hb.H)-bob, body, false)

		// Facing marker
		eyeX := float32(f.X) + dx + float32(f.Facing)*float32(hb.W)/4
		vector.FillCircle(screen, eyeX, y+bob+12, 4, hex(f.Character.AccentColor), true)

		if f.Action == cfg.Block {
			vector.StrokeRect(screen, x-3, y-3, float32(hb.W)+6, float32(hb.H)+6, 2, white, false)
		}
		if hitboxes {
			vector.StrokeRect(screen, x, y, float32(hb.W), float32(hb.H), 1, hurtboxRim, false)
			if f.HitActive {
				h := f.Hitbox
				vector.FillRect(screen, float32(h.X)+dx, float32(h.Y)+dy, float32(h.W), float32(h.H), hitboxRed, false)
			}
		}
	}
	for _, p := range s.Projectiles {
		vector.FillCircle(screen, float32(p.X)+dx, float32(p.Y)+dy, float32(p.Radius), hex(p.Color), true)
	}
}

func drawEffects(screen *ebiten.Image, s core.Snapshot) {
	dx, dy := shakeOffset(s)
	for _, p := range s.Particles {
		vector.FillCircle(screen, float32(p.X)+dx, float32(p.Y)+dy, float32(p.Size), withAlpha(hex(p.Color), p.Alpha), false)
	}
	for _, h := range s.HitEffects {
		c := white
		if h.Kind == cfg.HitBlock {
			c = color.RGBA{120, 180, 255, 255}
		}
		radius := 12 * h.Scale
		vector.StrokeCircle(screen, float32(h.X)+dx, float32(h.Y)+dy, radius, 3, c, true)
	}
}

func drawHUD(screen *ebiten.Image, s core.Snapshot, feed []string) {
	w := float32(s.Arena.Width)
	drawBars(screen, s.Fighters[cfg.P1], 20, false)
	drawBars(screen, s.Fighters[cfg.P2], w-20-barWidth, true)

	bold := fonts.Bold.Get()
	timer := fmt.Sprintf("%02d", s.Seconds())
	vector.FillRect(screen, w/2-30, 10, 60, 34, overlay, false)
	text.Draw(screen, timer, bold, int(w/2)-12, 36, white)

	// Round win pips under each bar
	for side := range s.Wins {
		for i := 0; i < s.RoundsToWin; i++ {
			x := 24 + float32(i)*16
			if side == int(cfg.P2) {
				x = w - 24 - float32(i)*16
			}
			c := barBack
			if i < s.Wins[side] {
				c = energyFull
			}
			vector.FillCircle(screen, x, 68, 5, c, true)
		}
	}

	small := fonts.Small.Get()
	if cd := s.ComboDisplay; cd.Timer > 0 {
		msg := fmt.Sprintf("%d HITS", cd.Count)
		x := 24
		if cd.Side == cfg.P2 {
			x = int(w) - 24 - len(msg)*11
		}
		text.Draw(screen, msg, bold, x, 100, energyFull)
	}
	if s.LastHitType != "" {
		text.Draw(screen, s.LastHitType, small, int(w/2)-len(s.LastHitType)*3, 60, white)
	}
	for i, line := range feed {
		text.Draw(screen, line, small, 20, int(s.Arena.Height)-12-14*(len(feed)-1-i), white)
	}

	drawBanner(screen, s)
}

func drawBars(screen *ebiten.Image, f core.FighterView, x float32, rightAligned bool) {
	hp := float32(f.HP) / float32(f.MaxHP)
	energy := float32(f.Energy / cfg.Combat.MaxEnergy)

	vector.FillRect(screen, x, 20, barWidth, barHeight, barBack, false)
	vector.FillRect(screen, x, 42, barWidth, 8, barBack, false)

	hpW, enW := barWidth*hp, barWidth*energy
	hpX, enX := x, x
	if rightAligned {
		hpX, enX = x+barWidth-hpW, x+barWidth-enW
	}
	vector.FillRect(screen, hpX, 20, hpW, barHeight, hpColor, false)
	en := energyFill
	if energy >= 1 {
		en = energyFull
	}
	vector.FillRect(screen, enX, 42, enW, 8, en, false)

	name := f.Character.Name
	nx := int(x)
	if rightAligned {
		nx = int(x+barWidth) - len(name)*8
	}
	text.Draw(screen, name, fonts.Regular.Get(), nx, 16, hex(f.Character.Color))
}

func drawBanner(screen *ebiten.Image, s core.Snapshot) {
	var msg string
	switch s.Phase {
	case cfg.PhaseIntro:
		msg = fmt.Sprintf("ROUND %d", s.Round)
		if s.PhaseFrame > cfg.Match.IntroDuration*2/3 {
			msg = "FIGHT!"
		}
	case cfg.PhaseRoundEnd:
		msg = "K.O."
		if s.Fighters[cfg.P1].HP > 0 && s.Fighters[cfg.P2].HP > 0 {
			msg = "TIME"
		}
	case cfg.PhaseMatchEnd:
		winner := s.Fighters[cfg.P1]
		if s.Wins[cfg.P2] > s.Wins[cfg.P1] {
			winner = s.Fighters[cfg.P2]
		}
		msg = winner.Character.Name + " WINS"
		text.Draw(screen, "ENTER to rematch", fonts.Small.Get(), int(s.Arena.Width/2)-50, int(s.Arena.Height/2)+40, white)
	default:
		return
	}
	title := fonts.Title.Get()
	x := int(s.Arena.Width/2) - len(msg)*12
	text.Draw(screen, msg, title, x, int(s.Arena.Height/2), white)
}
