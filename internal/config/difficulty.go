package config

import "math"

// DifficultyManager scales the computer's pace as the player makes progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) after the player has sunk
// the given number of ships.
func (d *DifficultyManager) Level(sunk int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(sunk)/maxAt, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ThinkDelay returns the computer's delay between shots in seconds. The
// delay shrinks linearly with the level, down to the configured minimum
// (or base, when base is already below it).
func (d *DifficultyManager) ThinkDelay(base float64, sunk int) float64 {
	level := d.Level(sunk)
	delay := base * (1.0 - level*d.cfg.Scaling.DelayReduction)
	floor := math.Min(d.cfg.Scaling.MinDelay, base)
	if delay < floor {
		delay = floor
	}
	return delay
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
