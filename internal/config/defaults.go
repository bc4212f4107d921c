package config

import (
	_ "embed"
)

//go:embed defaults/nibbles.yaml
var defaultNibblesYAML []byte

// DefaultNibblesConfig returns the hard-coded default configuration.
func DefaultNibblesConfig() NibblesConfig {
	return NibblesConfig{
		Speed:          70,
		Quantization:   2,
		Lives:          5,
		StartLength:    3,
		GrowthPerIndex: 2,
		PointsPerIndex: 10,
		Aging: AgingConfig{
			YoungSteps: 3,
			Radius:     6,
		},
		Colors: ColorsConfig{
			Background:  "#1b3a8c",
			Wall:        "#fa8072",
			Collectable: "#ffffff",
			Players:     []string{"#ffd700", "#4cd964"},
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 6,
			},
			Scaling: ScalingConfig{
				SpeedStep: 15,
			},
		},
	}
}
