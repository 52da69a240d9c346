// Package config provides YAML-based tuning for the defender simulation and
// difficulty management.
package config

// DefenderConfig contains every tunable constant of the simulation.
type DefenderConfig struct {
	World       WorldConfig      `yaml:"world"`
	Landscape   LandscapeConfig  `yaml:"landscape"`
	Player      PlayerConfig     `yaml:"player"`
	Projectile  ProjectileConfig `yaml:"projectile"`
	Particles   ParticleConfig   `yaml:"particles"`
	Opponents   OpponentsConfig  `yaml:"opponents"`
	HealthItems HealthItemConfig `yaml:"health_items"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the world dimensions and the periodic spawn timers.
type WorldConfig struct {
	Width                float64 `yaml:"width"`
	MaxHealth            int     `yaml:"max_health"`
	HUDHeight            float64 `yaml:"hud_height"`
	SpawnInterval        float64 `yaml:"spawn_interval"`         // seconds between opponents
	PlayerHealthInterval float64 `yaml:"player_health_interval"` // seconds between player health items
	WorldHealthInterval  float64 `yaml:"world_health_interval"`  // seconds between world health items
	PruneMargin          float64 `yaml:"prune_margin"`           // projectiles this far outside the world are dropped
}

// LandscapeConfig defines the generated ground profile.
type LandscapeConfig struct {
	Spacing  float64 `yaml:"spacing"`   // horizontal distance between control points
	MinDepth float64 `yaml:"min_depth"` // smallest distance of the ground above the screen bottom
	MaxDepth float64 `yaml:"max_depth"` // largest distance of the ground above the screen bottom
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	StartY          float64 `yaml:"start_y"`
	Speed           float64 `yaml:"speed"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	MaxHealth       int     `yaml:"max_health"`
	ShotSpeed       float64 `yaml:"shot_speed"`
}

// ProjectileConfig defines projectile hitboxes and lifetime.
type ProjectileConfig struct {
	Lifetime  float64 `yaml:"lifetime"`
	BeamSize  float64 `yaml:"beam_size"`  // hitbox edge of horizontal beams
	AimedSize float64 `yaml:"aimed_size"` // hitbox edge of aimed shots
}

// ParticleConfig defines particle defaults and the engine trail.
type ParticleConfig struct {
	InitialSize float64     `yaml:"initial_size"`
	Lifetime    float64     `yaml:"lifetime"`
	GrowRate    float64     `yaml:"grow_rate"`
	FadeRate    float64     `yaml:"fade_rate"`
	Trail       TrailConfig `yaml:"trail"`
	BoostTrail  TrailConfig `yaml:"boost_trail"`
}

// TrailConfig defines one engine exhaust emitter.
// Particles spawn around the rear centre, move backwards at Speed with
// Jitter noise, and are coloured red 255, green in Green, blue in [0, 50).
type TrailConfig struct {
	Count   int     `yaml:"count"`
	SpreadX float64 `yaml:"spread_x"`
	SpreadY float64 `yaml:"spread_y"`
	Speed   float64 `yaml:"speed"`
	Jitter  float64 `yaml:"jitter"`
	Green   [2]int  `yaml:"green"`
}

// OpponentsConfig groups the per-variant tuning.
type OpponentsConfig struct {
	SpawnY     float64        `yaml:"spawn_y"`
	Basic      OpponentConfig `yaml:"basic"`
	Aggressive OpponentConfig `yaml:"aggressive"`
	Sniper     OpponentConfig `yaml:"sniper"`
}

// OpponentConfig defines one opponent variant.
// Amplitude and Frequency (radians per second) drive the horizontal
// oscillation; AimNoise is the width of the random horizontal target offset.
type OpponentConfig struct {
	Width                float64         `yaml:"width"`
	Height               float64         `yaml:"height"`
	Speed                float64         `yaml:"speed"`
	Health               int             `yaml:"health"`
	Score                int             `yaml:"score"`
	Amplitude            float64         `yaml:"amplitude"`
	Frequency            float64         `yaml:"frequency"`
	FireInterval         float64         `yaml:"fire_interval"`
	ShotSpeed            float64         `yaml:"shot_speed"`
	AimNoise             float64         `yaml:"aim_noise"`
	DamagesWorldOnImpact bool            `yaml:"damages_world_on_impact"`
	Explosion            ExplosionConfig `yaml:"explosion"`
}

// ExplosionConfig defines the particle burst of a destroyed opponent.
type ExplosionConfig struct {
	Count       int     `yaml:"count"`
	AngleJitter float64 `yaml:"angle_jitter"`
	SpeedMin    float64 `yaml:"speed_min"`
	SpeedMax    float64 `yaml:"speed_max"`
	Red         [2]int  `yaml:"red"`
	Green       [2]int  `yaml:"green"`
	Blue        [2]int  `yaml:"blue"`
	InitialSize float64 `yaml:"initial_size"`
	Lifetime    float64 `yaml:"lifetime"`
}

// HealthItemConfig defines falling pickups.
// A blink cycle is two phases of BlinkPhase seconds.
type HealthItemConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FallSpeed  float64 `yaml:"fall_speed"`
	BlinkPhase float64 `yaml:"blink_phase"`
	MaxBlinks  int     `yaml:"max_blinks"`
	RestChance float64 `yaml:"rest_chance"`
	RestMinY   float64 `yaml:"rest_min_y"`
	RestMaxY   float64 `yaml:"rest_max_y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnReduction float64 `yaml:"spawn_reduction"` // fraction cut from the spawn interval at max difficulty
	MinInterval    float64 `yaml:"min_interval"`    // spawn interval floor in seconds
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means fixed.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyFixed, true
	default:
		return "", false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
