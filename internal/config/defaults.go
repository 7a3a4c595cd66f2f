package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultBattleshipYAML []byte

// DefaultBattleshipConfig returns the default Battleship configuration.
func DefaultBattleshipConfig() BattleshipConfig {
	return BattleshipConfig{
		AI: AIConfig{
			ThinkDelay: 1.0,
			Tactics:    true,
		},
		Rules: RulesConfig{
			TurnRule: "retain_on_hit",
		},
		Fleet: FleetConfig{
			Counts: []int{4, 3, 2, 1},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "sunk",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				DelayReduction: 0.6,
				MinDelay:       0.25,
			},
		},
	}
}
