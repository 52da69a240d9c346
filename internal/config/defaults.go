package config

import (
	_ "embed"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the hardcoded tuning, used when the embedded
// YAML cannot be parsed.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		World: WorldConfig{
			Width:                6400,
			MaxHealth:            10,
			HUDHeight:            80,
			SpawnInterval:        2.0,
			PlayerHealthInterval: 17.0,
			WorldHealthInterval:  36.0,
			PruneMargin:          100,
		},
		Landscape: LandscapeConfig{
			Spacing:  160,
			MinDepth: 30,
			MaxDepth: 110,
		},
		Player: PlayerConfig{
			Width:           80,
			Height:          48,
			StartY:          500,
			Speed:           200,
			BoostMultiplier: 2.1,
			MaxHealth:       10,
			ShotSpeed:       600,
		},
		Projectile: ProjectileConfig{
			Lifetime:  0.5,
			BeamSize:  2,
			AimedSize: 4,
		},
		Particles: ParticleConfig{
			InitialSize: 2,
			Lifetime:    0.2,
			GrowRate:    2,
			FadeRate:    0.8,
			Trail: TrailConfig{
				Count: 1, SpreadX: 5, SpreadY: 6, Speed: 40, Jitter: 20,
				Green: [2]int{100, 199},
			},
			BoostTrail: TrailConfig{
				Count: 12, SpreadX: 12, SpreadY: 22, Speed: 100, Jitter: 40,
				Green: [2]int{100, 199},
			},
		},
		Opponents: OpponentsConfig{
			SpawnY: -50,
			Basic: OpponentConfig{
				Width: 40, Height: 40, Speed: 30, Health: 3, Score: 300,
				Amplitude: 80, Frequency: 1.5,
				DamagesWorldOnImpact: true,
				Explosion: ExplosionConfig{
					Count: 120, AngleJitter: 0.2, SpeedMin: 80, SpeedMax: 230,
					Red: [2]int{155, 254}, Green: [2]int{55, 154}, Blue: [2]int{0, 49},
					InitialSize: 0.02, Lifetime: 2.8,
				},
			},
			Aggressive: OpponentConfig{
				Width: 45, Height: 45, Speed: 70, Health: 2, Score: 100,
				FireInterval: 1.8, ShotSpeed: 300, AimNoise: 200,
				Explosion: ExplosionConfig{
					Count: 50, AngleJitter: 0.5, SpeedMin: 60, SpeedMax: 180,
					Red: [2]int{100, 199}, Green: [2]int{0, 49}, Blue: [2]int{155, 254},
					InitialSize: 0.2, Lifetime: 1.9,
				},
			},
			Sniper: OpponentConfig{
				Width: 35, Height: 35, Speed: 20, Health: 1, Score: 100,
				Amplitude: 60, Frequency: 1.0,
				FireInterval: 4.0, ShotSpeed: 1800,
				Explosion: ExplosionConfig{
					Count: 345, AngleJitter: 0.2, SpeedMin: 70, SpeedMax: 180,
					Red: [2]int{55, 154}, Green: [2]int{155, 254}, Blue: [2]int{55, 104},
					InitialSize: 0.0001, Lifetime: 1.35,
				},
			},
		},
		HealthItems: HealthItemConfig{
			Width:      32,
			Height:     32,
			FallSpeed:  50,
			BlinkPhase: 0.2,
			MaxBlinks:  3,
			RestChance: 0.25,
			RestMinY:   200,
			RestMaxY:   300,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				SpawnReduction: 0.6,
				MinInterval:    0.6,
			},
		},
	}
}
