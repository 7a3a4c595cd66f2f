package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fleetKinds is the number of ship lengths a fleet describes (1..4).
const fleetKinds = 4

// LoadBattleship loads Battleship configuration.
// Search order: customPath -> ~/.arcade/configs/battleship.yaml -> ./configs/battleship.yaml -> embedded default
//
// Only a custom path reports read, parse and validation errors; the other
// locations are skipped when unusable.
func LoadBattleship(customPath string) (BattleshipConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BattleshipConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseBattleship(data)
		if err != nil {
			return BattleshipConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("battleship.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBattleship(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "battleship.yaml")); err == nil {
		if cfg, err := parseBattleship(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseBattleship(defaultBattleshipYAML)
	if err != nil {
		return DefaultBattleshipConfig(), nil
	}
	return cfg, nil
}

// parseBattleship decodes YAML on top of the hardcoded defaults, so a file
// only needs the keys it changes.
func parseBattleship(data []byte) (BattleshipConfig, error) {
	cfg := DefaultBattleshipConfig()
	// Replace rather than merge the fleet list.
	cfg.Fleet.Counts = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if cfg.Fleet.Counts == nil {
		cfg.Fleet.Counts = DefaultBattleshipConfig().Fleet.Counts
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c BattleshipConfig) Validate() error {
	if c.AI.ThinkDelay <= 0 {
		return fmt.Errorf("ai.think_delay must be positive, got %v", c.AI.ThinkDelay)
	}

	switch c.Rules.TurnRule {
	case "", "retain_on_hit", "alternate":
	default:
		return fmt.Errorf("rules.turn_rule %q is not retain_on_hit or alternate", c.Rules.TurnRule)
	}

	if len(c.Fleet.Counts) != fleetKinds {
		return fmt.Errorf("fleet.counts needs %d entries, got %d", fleetKinds, len(c.Fleet.Counts))
	}
	total := 0
	for i, n := range c.Fleet.Counts {
		if n < 0 {
			return fmt.Errorf("fleet.counts[%d] is negative", i)
		}
		total += n
	}
	if total == 0 {
		return errors.New("fleet.counts has no ships")
	}

	d := c.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("difficulty.initial_level must be in [0, 1], got %v", d.InitialLevel)
	}
	switch d.Progression.Type {
	case "", "sunk", "none":
	default:
		return fmt.Errorf("difficulty.progression.type %q is not sunk or none", d.Progression.Type)
	}
	if d.Scaling.DelayReduction < 0 || d.Scaling.DelayReduction > 1 {
		return fmt.Errorf("difficulty.scaling.delay_reduction must be in [0, 1], got %v", d.Scaling.DelayReduction)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBattleshipPreset modifies the config based on a difficulty preset.
func ApplyBattleshipPreset(cfg *BattleshipConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.AI.Tactics = false
		cfg.AI.ThinkDelay = 1.5
	case DifficultyNormal:
		cfg.AI.Tactics = true
	case DifficultyHard:
		cfg.AI.Tactics = true
		cfg.AI.ThinkDelay = 0.6
	}
}
