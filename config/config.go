package config

// FrameData is the startup/active/recovery timing of an attack, in ticks.
type FrameData struct {
	Startup  int
	Active   int
	Recovery int
}

// Duration is the total frame count of the attack action.
func (f FrameData) Duration() int {
	return f.Startup + f.Active + f.Recovery
}

// Box is a rectangle offset from a fighter's feet, authored facing right.
type Box struct {
	X, Y, W, H float64
}

// PhysicsConfig contains movement and body values
type PhysicsConfig struct {
	Gravity       float64
	JumpForce     float64 // vertical impulse, negative is up
	WalkSpeedBase float64 // walk speed at the reference speed stat
	SpeedStatRef  float64 // speed stat that maps to WalkSpeedBase
	WalkFriction  float64 // damping when no direction is held
	IdleFriction  float64 // extra damping applied to grounded idle fighters
	StopThreshold float64 // below this |vx| a grounded fighter settles to idle
	MinSeparation float64 // fighters are pushed apart to at least this distance
}

// CombatConfig contains damage, stun and hitbox values
type CombatConfig struct {
	// Base damage
	LightDamage int
	HeavyDamage int

	// Frame data
	Light FrameData
	Heavy FrameData

	// Ultimate hitbox window, in action frames
	UltimateActiveStart int
	UltimateActiveEnd   int

	// Stun (ticks)
	HitStunLight      int
	HitStunHeavy      int
	HitStunSpecial    int
	HitStunProjectile int
	KnockdownDuration int // unblocked ultimate hits knock down instead of stunning
	BlockStun         int
	DeathDuration     int

	// Knockback
	KnockbackLight      float64
	KnockbackHeavy      float64
	KnockbackSpecial    float64 // used when a special has no knockback of its own
	KnockbackUltimate   float64
	KnockbackProjectile float64
	BlockKnockbackScale float64

	// Attack lunge
	LightLunge float64
	HeavyLunge float64

	// Damage formula
	AttackStatRef        float64 // attack stat that yields 1.0x damage
	ComboDecayStep       float64 // damage lost per combo hit already landed
	ComboDecayFloor      float64
	BlockDamageReduction float64
	DefenseScale         float64 // defense/100 * DefenseScale is the damage cut

	// Combo tracking
	ComboTimeout     int     // ticks without attack input before the symbol buffer clears
	ComboHitDecay    int     // ticks after the last hit before the combo-hit counter may reset
	ComboBonusScale  float64 // share of a sequence's damage dealt as bonus
	ComboEnergyBonus float64

	// Energy
	MaxEnergy           float64
	EnergyPerHit        float64
	EnergyPerDamage     float64
	DefenderEnergyScale float64

	// Boxes
	Hurtbox        Box
	LightHitbox    Box
	HeavyHitbox    Box
	SpecialHitbox  Box // width comes from the move's range
	UltimateHitbox Box
}

// DodgeConfig contains dodge roll values
type DodgeConfig struct {
	Speed    float64
	Duration int
	Cooldown int
}

// ProjectileConfig contains values for projectile specials
type ProjectileConfig struct {
	Speed    float64
	Radius   float64
	Lifetime int
	SpawnX   float64 // ahead of the thrower
	SpawnY   float64 // relative to feet
	Margin   float64 // distance past the arena edge before removal
}

// TeleportConfig contains values for teleport specials
type TeleportConfig struct {
	BehindDistance float64
	EdgeMargin     float64
	Invincibility  int
}

// MatchConfig contains round pacing
type MatchConfig struct {
	RoundSeconds     int
	TicksPerSecond   int
	RoundsToWin      int
	IntroDuration    int
	RoundEndDuration int
	SlowMotionStride int // only one tick in this many simulates while slowed
}

// RoundTicks is the round timer's starting value.
func (m MatchConfig) RoundTicks() int {
	return m.RoundSeconds * m.TicksPerSecond
}

// EffectsConfig contains screen effect magnitudes and effect lifetimes
type EffectsConfig struct {
	ShakeLight         int
	ShakeHeavy         int
	ShakeUltimate      int
	ShakeBlock         int
	ShakeProjectile    int
	ShakeCombo         int
	ShakeDeath         int
	ShakeUltimateStart int

	SlowMotionUltimateHit   int
	SlowMotionDeath         int
	SlowMotionUltimateStart int

	HitEffectFrames    int
	HitEffectGrowth    float64 // flash scale multiplier reached at the end of its life
	ComboDisplayFrames int

	// Particles
	ParticleMaxLife     int
	ParticleGravity     float64
	ParticleDrag        float64
	HitParticles        int
	ProjectileParticles int
	UltimateParticles   int
	BlockParticles      int
	ComboParticles      int
	DeathParticles      int
	DustParticles       int
	TeleportParticles   int
}

var Physics PhysicsConfig
var Combat CombatConfig
var DodgeTuning DodgeConfig
var Projectile ProjectileConfig
var Teleport TeleportConfig
var Match MatchConfig
var Effects EffectsConfig

// Direction constants for fighter facing
const (
	FacingLeft  = -1
	FacingRight = 1
)

func init() {
	Physics = PhysicsConfig{
		Gravity:       0.8,
		JumpForce:     -14,
		WalkSpeedBase: 4,
		SpeedStatRef:  70,
		WalkFriction:  0.7,
		IdleFriction:  0.85,
		StopThreshold: 0.5,
		MinSeparation: 40,
	}

	Combat = CombatConfig{
		LightDamage: 40,
		HeavyDamage: 80,

		Light: FrameData{Startup: 4, Active: 3, Recovery: 6},
		Heavy: FrameData{Startup: 8, Active: 5, Recovery: 12},

		UltimateActiveStart: 20,
		UltimateActiveEnd:   50,

		HitStunLight:      12,
		HitStunHeavy:      20,
		HitStunSpecial:    16,
		HitStunProjectile: 14,
		KnockdownDuration: 30,
		BlockStun:         8,
		DeathDuration:     60,

		KnockbackLight:      4,
		KnockbackHeavy:      8,
		KnockbackSpecial:    6,
		KnockbackUltimate:   20,
		KnockbackProjectile: 5,
		BlockKnockbackScale: 0.3,

		LightLunge: 2,
		HeavyLunge: 1,

		AttackStatRef:        80,
		ComboDecayStep:       0.1,
		ComboDecayFloor:      0.3,
		BlockDamageReduction: 0.8,
		DefenseScale:         0.3,

		ComboTimeout:     30,
		ComboHitDecay:    30,
		ComboBonusScale:  0.2,
		ComboEnergyBonus: 15,

		MaxEnergy:           100,
		EnergyPerHit:        8,
		EnergyPerDamage:     0.05,
		DefenderEnergyScale: 1.5,

		Hurtbox:        Box{X: -20, Y: -80, W: 40, H: 80},
		LightHitbox:    Box{X: 30, Y: -50, W: 60, H: 30},
		HeavyHitbox:    Box{X: 30, Y: -55, W: 70, H: 40},
		SpecialHitbox:  Box{X: 30, Y: -60, H: 50},
		UltimateHitbox: Box{X: 10, Y: -80, W: 150, H: 100},
	}

	DodgeTuning = DodgeConfig{
		Speed:    12,
		Duration: 12,
		Cooldown: 30,
	}

	Projectile = ProjectileConfig{
		Speed:    8,
		Radius:   8,
		Lifetime: 60,
		SpawnX:   40,
		SpawnY:   -45,
		Margin:   20,
	}

	Teleport = TeleportConfig{
		BehindDistance: 60,
		EdgeMargin:     40,
		Invincibility:  8,
	}

	Match = MatchConfig{
		RoundSeconds:     99,
		TicksPerSecond:   60,
		RoundsToWin:      2,
		IntroDuration:    90,
		RoundEndDuration: 120,
		SlowMotionStride: 3,
	}

	Effects = EffectsConfig{
		ShakeLight:         3,
		ShakeHeavy:         6,
		ShakeUltimate:      12,
		ShakeBlock:         3,
		ShakeProjectile:    4,
		ShakeCombo:         8,
		ShakeDeath:         15,
		ShakeUltimateStart: 15,

		SlowMotionUltimateHit:   10,
		SlowMotionDeath:         30,
		SlowMotionUltimateStart: 20,

		HitEffectFrames:    15,
		HitEffectGrowth:    1.5,
		ComboDisplayFrames: 60,

		ParticleMaxLife:     35,
		ParticleGravity:     0.15,
		ParticleDrag:        0.96,
		HitParticles:        8,
		ProjectileParticles: 10,
		UltimateParticles:   20,
		BlockParticles:      5,
		ComboParticles:      15,
		DeathParticles:      25,
		DustParticles:       4,
		TeleportParticles:   10,
	}
}
