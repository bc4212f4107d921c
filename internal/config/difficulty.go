package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named starting speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane, DifficultyFixed}
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// SpeedForPreset returns the starting speed of a preset, or -1 when the
// preset keeps the configured speed.
func SpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 40
	case DifficultyNormal:
		return 70
	case DifficultyHard:
		return 85
	case DifficultyInsane:
		return 95
	default:
		return -1
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// "fixed" keeps the configured speed and disables the per-level ramp.
func ApplyPreset(cfg *NibblesConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	if s := SpeedForPreset(preset); s >= 0 {
		cfg.Speed = s
	}
	if preset == DifficultyInsane {
		cfg.Lives = 3
	}
}

// DifficultyManager computes the effective speed for a level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the speed ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the ramp progress (0.0 to 1.0) at the given zero-based level.
func (d *DifficultyManager) Level(level int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	maxAt := d.cfg.Progression.MaxAt - 1
	if maxAt <= 0 {
		return 1
	}
	return clampF(float64(level)/float64(maxAt), 0, 1)
}

// Speed returns the effective speed at a level, clamped to 0..99.
func (d *DifficultyManager) Speed(base, level int) int {
	ramp := int(d.Level(level)*float64(d.cfg.Scaling.SpeedStep) + 0.5)
	return min(max(base+ramp, 0), 99)
}

const (
	basePeriod   = 20 * time.Millisecond
	periodStep   = 2 * time.Millisecond
	minSubPeriod = 5 * time.Millisecond
)

// TickPeriod maps a speed (0..99) and quantization to the scheduler period.
// A whole cell takes 20ms + (99-speed)*2ms; each sub-step gets an equal share.
func TickPeriod(speed, quantization int) time.Duration {
	speed = min(max(speed, 0), 99)
	quantization = max(quantization, 1)
	perCell := basePeriod + time.Duration(99-speed)*periodStep
	return max(perCell/time.Duration(quantization), minSubPeriod)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return max(lo, min(hi, val))
}
