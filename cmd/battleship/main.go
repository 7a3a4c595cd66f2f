// battleship is a terminal Battleship game against the computer.
//
// Usage:
//
//	battleship list              - List available game variants
//	battleship play [variant]    - Play a match
//	battleship menu              - Pick a variant interactively
//	battleship serve             - Start SSH server for remote play
//	battleship scores [variant]  - Show high scores
//	battleship history [variant] - Show recent matches
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/registry"

	// Import games to register them
	_ "github.com/vovakirdan/tui-battleship/internal/games/battleship"
)

const defaultGameID = "battleship"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship - sink the computer's fleet in your terminal",
	Long: `Battleship is a terminal game of naval combat against the computer.

Place your fleet on a 10x10 grid, then trade shots until one side has
no ships left. Ships may not touch, not even at the corners.

Available commands:
  list     - Show game variants
  play     - Play a match directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  history  - View recent matches

Examples:
  battleship play
  battleship play battleship_alternate --difficulty hard
  battleship menu
  battleship serve --ssh :2222
  battleship history --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}

// gameFromArgs returns the variant named in args, or the default one.
// Unknown IDs print an error and exit.
func gameFromArgs(args []string) string {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'battleship list' to see available variants.")
		os.Exit(1)
	}
	return gameID
}
