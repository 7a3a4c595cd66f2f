// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// BattleshipConfig contains all configuration for the Battleship game.
type BattleshipConfig struct {
	AI         AIConfig         `yaml:"ai"`
	Rules      RulesConfig      `yaml:"rules"`
	Fleet      FleetConfig      `yaml:"fleet"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AIConfig defines how the computer plays.
type AIConfig struct {
	ThinkDelay float64 `yaml:"think_delay"` // Seconds between computer shots
	Tactics    bool    `yaml:"tactics"`     // Hunt around hits instead of firing at random
}

// RulesConfig defines match rules.
type RulesConfig struct {
	TurnRule string `yaml:"turn_rule"` // "retain_on_hit" or "alternate"
}

// FleetConfig defines the ships each side places.
type FleetConfig struct {
	// Counts[i] is the number of ships of length i+1.
	Counts []int `yaml:"counts"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a match.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "sunk" or "none"
	MaxAt int    `yaml:"max_at"` // Player kills at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DelayReduction float64 `yaml:"delay_reduction"` // Fraction of think delay removed at max difficulty
	MinDelay       float64 `yaml:"min_delay"`       // Think delay never drops below this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values give "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
