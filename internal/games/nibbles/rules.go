// Package nibbles implements a multi-snake Nibbles game on top of the
// occupancy field. Every tick runs a two-phase claim/commit protocol so that
// snakes moving in the same tick are judged against one consistent field.
package nibbles

import (
	"github.com/vovakirdan/nibbles/internal/config"
	"github.com/vovakirdan/nibbles/internal/games/nibbles/field"
)

// Playfield geometry. The field is rendered two pixel rows per text row
// below a single HUD row.
const (
	FieldW  = 80
	FieldH  = 46
	GridW   = FieldW / field.CellSize
	GridH   = FieldH / field.CellSize
	HUDRows = 1
	ScreenW = FieldW
	ScreenH = FieldH/2 + HUDRows
)

// Rules are the per-variant parameters of a session.
type Rules struct {
	Quantization   int  // sub-steps per cell; 1 commits every tick
	Aging          bool // graduate to Hardening and check with Safe
	Spinner        bool // accept analog steering
	HardenSteps    int
	AgeRadius      int
	Lives          int
	StartLength    int // cells
	GrowthPerIndex int // cells per collectable index
	PointsPerIndex int
}

// Quantized reports whether snakes move in sub-cell steps.
func (r Rules) Quantized() bool {
	return r.Quantization > 1
}

// StartEntries is the initial trail capacity in ticks.
func (r Rules) StartEntries() int {
	return r.StartLength * r.q()
}

// Growth is the trail capacity gained from collecting index.
func (r Rules) Growth(index int) int {
	return index * r.GrowthPerIndex * r.q()
}

func (r Rules) q() int {
	return max(r.Quantization, 1)
}

// RulesFromConfig builds the rules of a variant. The classic variant moves a
// whole cell per tick, graduates claims straight to Solid and ignores the
// spinner.
//
// young_steps counts cells of travel, so the aging window scales with the
// quantization: an analog-steered front covers a pixel for up to Q+1 ticks
// and must not harden under itself.
func RulesFromConfig(cfg config.NibblesConfig, classic bool) Rules {
	r := Rules{
		Quantization:   cfg.Quantization,
		Aging:          true,
		Spinner:        true,
		HardenSteps:    cfg.Aging.YoungSteps * max(cfg.Quantization, 1),
		AgeRadius:      cfg.Aging.Radius,
		Lives:          cfg.Lives,
		StartLength:    cfg.StartLength,
		GrowthPerIndex: cfg.GrowthPerIndex,
		PointsPerIndex: cfg.PointsPerIndex,
	}
	if classic {
		r.Quantization = 1
		r.Aging = false
		r.Spinner = false
		r.HardenSteps = 0
	}
	return r
}
