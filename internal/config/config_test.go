package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	cfg, err := parseBattleship(defaultBattleshipYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	def := DefaultBattleshipConfig()
	if cfg.AI != def.AI {
		t.Errorf("AI = %+v, expected %+v", cfg.AI, def.AI)
	}
	if cfg.Rules != def.Rules {
		t.Errorf("Rules = %+v, expected %+v", cfg.Rules, def.Rules)
	}
	if len(cfg.Fleet.Counts) != 4 || cfg.Fleet.Counts[0] != 4 || cfg.Fleet.Counts[3] != 1 {
		t.Errorf("Fleet.Counts = %v, expected [4 3 2 1]", cfg.Fleet.Counts)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("Difficulty = %+v, expected %+v", cfg.Difficulty, def.Difficulty)
	}
}

func TestLoadBattleshipCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "ai:\n  think_delay: 0.5\nrules:\n  turn_rule: alternate\nfleet:\n  counts: [1, 0, 0, 1]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBattleship(path)
	if err != nil {
		t.Fatalf("LoadBattleship() failed: %v", err)
	}
	if cfg.AI.ThinkDelay != 0.5 {
		t.Errorf("ThinkDelay = %v, expected 0.5", cfg.AI.ThinkDelay)
	}
	if !cfg.AI.Tactics {
		t.Error("Tactics should keep its default when not set")
	}
	if cfg.Rules.TurnRule != "alternate" {
		t.Errorf("TurnRule = %q, expected alternate", cfg.Rules.TurnRule)
	}
	if got := cfg.Fleet.Counts; len(got) != 4 || got[0] != 1 || got[1] != 0 || got[3] != 1 {
		t.Errorf("Fleet.Counts = %v, expected [1 0 0 1]", got)
	}
}

func TestLoadBattleshipCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"bad yaml", "ai: [", "parse"},
		{"bad turn rule", "rules:\n  turn_rule: sometimes\n", "turn_rule"},
		{"short fleet", "fleet:\n  counts: [1, 2]\n", "fleet.counts"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadBattleship(path)
			if err == nil || !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("LoadBattleship() error = %v, expected mention of %q", err, tc.errPart)
			}
		})
	}

	if _, err := LoadBattleship(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBattleship() with missing custom file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BattleshipConfig)
		ok     bool
	}{
		{"defaults", func(*BattleshipConfig) {}, true},
		{"empty turn rule", func(c *BattleshipConfig) { c.Rules.TurnRule = "" }, true},
		{"zero delay", func(c *BattleshipConfig) { c.AI.ThinkDelay = 0 }, false},
		{"negative ship count", func(c *BattleshipConfig) { c.Fleet.Counts = []int{4, -1, 2, 1} }, false},
		{"no ships", func(c *BattleshipConfig) { c.Fleet.Counts = []int{0, 0, 0, 0} }, false},
		{"five lengths", func(c *BattleshipConfig) { c.Fleet.Counts = []int{1, 1, 1, 1, 1} }, false},
		{"level above one", func(c *BattleshipConfig) { c.Difficulty.InitialLevel = 1.5 }, false},
		{"unknown progression", func(c *BattleshipConfig) { c.Difficulty.Progression.Type = "time" }, false},
		{"reduction above one", func(c *BattleshipConfig) { c.Difficulty.Scaling.DelayReduction = 2 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBattleshipConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() error = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyBattleshipPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		tactics bool
		delay   float64
	}{
		{DifficultyEasy, true, 0.0, false, 1.5},
		{DifficultyNormal, true, 0.3, true, 1.0},
		{DifficultyHard, true, 0.7, true, 0.6},
		{DifficultyFixed, false, 0.0, true, 1.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBattleshipConfig()
			ApplyBattleshipPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.AI.Tactics != tc.tactics {
				t.Errorf("Tactics = %v, expected %v", cfg.AI.Tactics, tc.tactics)
			}
			if cfg.AI.ThinkDelay != tc.delay {
				t.Errorf("ThinkDelay = %v, expected %v", cfg.AI.ThinkDelay, tc.delay)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("ParsePreset() should return empty for unknown presets")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed should be a fixed preset")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DefaultBattleshipConfig().Difficulty // max_at 8
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		sunk     int
		expected float64
	}{
		{0, 0.0},
		{4, 0.5},
		{8, 1.0},
		{20, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.sunk); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.sunk, got, tc.expected)
		}
	}

	cfg.InitialLevel = 0.5
	if got := NewDifficultyManager(cfg).Level(4); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(4) from 0.5 = %v, expected 0.75", got)
	}

	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if dm.IsEnabled() {
		t.Error("IsEnabled() = true with progression disabled")
	}
	if got := dm.Level(8); got != 0.5 {
		t.Errorf("Level(8) while disabled = %v, expected initial 0.5", got)
	}
}

func TestDifficultyThinkDelay(t *testing.T) {
	cfg := DefaultBattleshipConfig().Difficulty // reduction 0.6, min 0.25, max_at 8
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		name     string
		base     float64
		sunk     int
		expected float64
	}{
		{"start", 1.0, 0, 1.0},
		{"half way", 1.0, 4, 0.7},
		{"max", 1.0, 8, 0.4},
		{"floored", 0.5, 8, 0.25},
		{"base below floor", 0.1, 8, 0.1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := dm.ThinkDelay(tc.base, tc.sunk); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("ThinkDelay(%v, %d) = %v, expected %v", tc.base, tc.sunk, got, tc.expected)
			}
		})
	}
}
