package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleData is a decorative particle. Alpha is driven by Fade.
type ParticleData struct {
	X, Y    float64
	SpeedX  float64
	SpeedY  float64
	Life    int
	MaxLife int
	Size    float64
	Color   string
	Kind    cfg.ParticleKind
	Alpha   float32
	Fade    *gween.Tween
}

var Particle = donburi.NewComponentType[ParticleData]()

// HitEffectData is an impact flash. Scale is driven by Grow from the base
// scale it was spawned with.
type HitEffectData struct {
	X, Y      float64
	Frame     int
	MaxFrames int
	Kind      cfg.HitKind
	BaseScale float64
	Scale     float32
	Grow      *gween.Tween
}

var HitEffect = donburi.NewComponentType[HitEffectData]()

// ComboDisplay is the HUD hint shown after multi-hit strings.
type ComboDisplay struct {
	Count int
	Timer int
	Side  cfg.Side
}
