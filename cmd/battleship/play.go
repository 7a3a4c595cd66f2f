package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/games/battleship"
	"github.com/vovakirdan/tui-battleship/internal/multiplayer"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a match against the computer",
	Long: `Start a match of the given variant (default: battleship).

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  E/Tab             - Rotate the ship
  C                 - Select the next ship length
  Enter/Space/F     - Place ship / fire
  X                 - Place the rest of the fleet at random
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Leave (when paused or after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Random shots only, slow computer
  normal - Computer hunts around hits, speeds up as you sink ships
  hard   - Like normal, but starts with a much shorter think delay
  fixed  - No speed-up, stays at the config's initial level

Examples:
  battleship play
  battleship play battleship_alternate
  battleship play --difficulty hard
  battleship play --config ./my-battleship.yaml --log ./battleship.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Append match logs to this file")
}

// applyGameFlags validates --config and --difficulty and hands them to the game.
func applyGameFlags() {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
		os.Exit(1)
	}
	if flagConfig != "" {
		if _, err := config.LoadBattleship(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	battleship.SetConfigPath(flagConfig)
	battleship.SetDifficultyPreset(flagDifficulty)
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLogger returns a file logger for --log, or nil when the flag is unset.
func openLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return nil, func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
	})
	return logger, func() { f.Close() }
}

// openStore opens the scores database; the game still runs without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := gameFromArgs(args)
	applyGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger()
	store := openStore()

	runErr := tui.Run(game, runtimeConfig(), tui.GameOptions{
		Store:   store,
		Logger:  logger,
		Mode:    multiplayer.MatchModeLocal,
		Session: multiplayer.LocalSession,
		Bell:    true,
	})

	// Close before a potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
