package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the default runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		World: WorldConfig{
			GroundMargin: 0.1,
			PoolDivisor:  15,
		},
		Physics: DinoPhysics{
			Gravity:     0.5,
			JumpImpulse: -3.5,
			ScrollSpeed: 2,
		},
		Obstacles: DinoObstacles{
			SpawnChance: 200,
			MinGap:      30,
			HitboxInset: 1,
		},
		Player: DinoPlayer{
			X:           5,
			HitboxWidth: 9,
			HitboxTrim:  2,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			InitialIntervalUS: 30000,
			Steps: []DifficultyStep{
				{Score: 10, IntervalUS: 25000},
				{Score: 20, IntervalUS: 20000},
				{Score: 30, IntervalUS: 15000},
			},
		},
		Keys: KeyConfig{
			Jump: "space",
			Quit: "q",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
