// Package config provides YAML-based configuration loading and speed
// presets for nibbles.
package config

import (
	"fmt"

	"github.com/vovakirdan/nibbles/internal/core"
)

// NibblesConfig contains all tunable parameters of the game.
type NibblesConfig struct {
	Speed          int              `yaml:"speed"`        // 0 (slow) .. 99 (fast)
	Quantization   int              `yaml:"quantization"` // sub-steps per cell
	Lives          int              `yaml:"lives"`
	StartLength    int              `yaml:"start_length"`     // cells
	GrowthPerIndex int              `yaml:"growth_per_index"` // cells per collectable index
	PointsPerIndex int              `yaml:"points_per_index"`
	Aging          AgingConfig      `yaml:"aging"`
	Colors         ColorsConfig     `yaml:"colors"`
	LevelsDir      string           `yaml:"levels_dir,omitempty"`
	Difficulty     DifficultyConfig `yaml:"difficulty"`
}

// AgingConfig controls how graduated trail hardens.
type AgingConfig struct {
	YoungSteps int `yaml:"young_steps"` // cells of travel from graduation to solid
	Radius     int `yaml:"radius"`      // pixels around each front
}

// ColorsConfig holds "#rrggbb" colours.
type ColorsConfig struct {
	Background  string   `yaml:"background"`
	Wall        string   `yaml:"wall"`
	Collectable string   `yaml:"collectable"`
	Players     []string `yaml:"players"`
}

// DifficultyConfig defines how speed ramps up across levels.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the ramp.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // level number at which the full ramp applies
}

// ScalingConfig defines the magnitude of the ramp.
type ScalingConfig struct {
	SpeedStep int `yaml:"speed_step"` // speed added at full ramp
}

// Palette is the parsed colour set.
type Palette struct {
	Background  core.Color
	Wall        core.Color
	Collectable core.Color
	Players     [core.MaxPlayers]core.Color
}

// Palette parses the configured colours.
func (c NibblesConfig) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = core.ParseColor(c.Colors.Background); err != nil {
		return p, fmt.Errorf("config: colors.background: %w", err)
	}
	if p.Wall, err = core.ParseColor(c.Colors.Wall); err != nil {
		return p, fmt.Errorf("config: colors.wall: %w", err)
	}
	if p.Collectable, err = core.ParseColor(c.Colors.Collectable); err != nil {
		return p, fmt.Errorf("config: colors.collectable: %w", err)
	}
	if len(c.Colors.Players) != core.MaxPlayers {
		return p, fmt.Errorf("config: colors.players: expected %d colours, got %d", core.MaxPlayers, len(c.Colors.Players))
	}
	for i, s := range c.Colors.Players {
		if p.Players[i], err = core.ParseColor(s); err != nil {
			return p, fmt.Errorf("config: colors.players[%d]: %w", i, err)
		}
	}
	return p, nil
}

// Validate checks ranges and colours.
func (c NibblesConfig) Validate() error {
	switch {
	case c.Speed < 0 || c.Speed > 99:
		return fmt.Errorf("config: speed %d out of range 0..99", c.Speed)
	case c.Quantization < 1 || c.Quantization > 8:
		return fmt.Errorf("config: quantization %d out of range 1..8", c.Quantization)
	case c.Lives < 1 || c.Lives > 9:
		return fmt.Errorf("config: lives %d out of range 1..9", c.Lives)
	case c.StartLength < 1:
		return fmt.Errorf("config: start_length must be positive, got %d", c.StartLength)
	case c.GrowthPerIndex < 0:
		return fmt.Errorf("config: growth_per_index must not be negative, got %d", c.GrowthPerIndex)
	case c.PointsPerIndex < 0:
		return fmt.Errorf("config: points_per_index must not be negative, got %d", c.PointsPerIndex)
	case c.Aging.YoungSteps < 0 || c.Aging.YoungSteps*c.Quantization > 254:
		return fmt.Errorf("config: aging.young_steps %d times quantization %d out of range 0..254",
			c.Aging.YoungSteps, c.Quantization)
	case c.Quantization > 1 && c.Aging.YoungSteps < 2:
		return fmt.Errorf("config: aging.young_steps must be at least 2 with quantization %d, got %d",
			c.Quantization, c.Aging.YoungSteps)
	case c.Aging.Radius < 0:
		return fmt.Errorf("config: aging.radius must not be negative, got %d", c.Aging.Radius)
	}
	switch c.Difficulty.Progression.Type {
	case "", "level", "none":
	default:
		return fmt.Errorf("config: difficulty.progression.type %q: want level or none", c.Difficulty.Progression.Type)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}
