package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagHistoryLimit   int
	flagHistorySession string
	flagHistoryAll     bool
	flagHistoryBrowse  bool
	flagHistoryID      string
)

var historyCmd = &cobra.Command{
	Use:   "history [variant]",
	Short: "Show recent matches",
	Long: `List recently finished or abandoned matches with shots, accuracy and
score, followed by win/loss totals for the variant.

Examples:
  battleship history
  battleship history --all --limit 50
  battleship history --session local
  battleship history --browse
  battleship history --id <match-id>`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().StringVar(&flagHistorySession, "session", "", "Only matches played by this session ID")
	historyCmd.Flags().BoolVar(&flagHistoryAll, "all", false, "Include every variant")
	historyCmd.Flags().BoolVar(&flagHistoryBrowse, "browse", false, "Open the interactive match browser")
	historyCmd.Flags().StringVar(&flagHistoryID, "id", "", "Show the details of one match")
}

func runHistory(_ *cobra.Command, args []string) {
	gameID := gameFromArgs(args)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryBrowse {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, tui.ViewHistory); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagHistoryID != "" {
		showMatch(store, flagHistoryID)
		return
	}

	var matches []storage.MatchRecord
	switch {
	case flagHistorySession != "":
		matches, err = store.SessionMatches(flagHistorySession, flagHistoryLimit)
	case flagHistoryAll:
		matches, err = store.RecentMatches("", flagHistoryLimit)
	default:
		matches, err = store.RecentMatches(gameID, flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		return
	}

	if flagHistoryAll {
		fmt.Println("Match History - all variants")
	} else {
		fmt.Printf("Match History - %s\n", registry.Title(gameID))
	}
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-10s  %5s  %5s  %5s  %-5s  %s\n", "Date", "Result", "Reason", "Shots", "Acc", "Score", "Via", "Match")
	fmt.Printf("  %-16s  %-12s  %-10s  %5s  %5s  %5s  %-5s  %s\n", "----", "------", "------", "-----", "---", "-----", "---", "-----")
	for _, m := range matches {
		fmt.Printf("  %-16s  %-12s  %-10s  %5d  %4.0f%%  %5d  %-5s  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			matchResult(m),
			m.EndReason,
			m.PlayerShots,
			m.Accuracy()*100,
			m.Score,
			m.Mode,
			m.MatchID,
		)
	}

	if flagHistoryAll || flagHistorySession != "" {
		return
	}
	stats, err := store.GetMatchStats(gameID)
	if err != nil || stats.Played == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Played %d  |  You won %d  |  Computer won %d  |  Abandoned %d  |  Best %d  |  Accuracy %.0f%%\n",
		stats.Played, stats.PlayerWins, stats.CPUWins, stats.Abandoned, stats.BestScore, stats.AvgAccuracy*100)
}

func matchResult(m storage.MatchRecord) string {
	if m.Winner == "none" {
		return "-"
	}
	return m.Winner + " won"
}

// showMatch prints every recorded field of a single match.
func showMatch(store *storage.Store, matchID string) {
	m, err := store.MatchByID(matchID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving match: %v\n", err)
		return
	}
	if m == nil {
		fmt.Fprintf(os.Stderr, "Error: no match with ID %q\n", matchID)
		os.Exit(1)
	}

	fmt.Printf("Match %s - %s\n", m.MatchID, registry.Title(m.GameID))
	fmt.Println()
	fmt.Printf("  Played:     %s (%ds)\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Duration)
	fmt.Printf("  Session:    %s via %s\n", m.SessionID, m.Mode)
	fmt.Printf("  Result:     %s (%s)\n", matchResult(*m), m.EndReason)
	fmt.Printf("  Turn rule:  %s\n", m.TurnRule)
	fmt.Printf("  You:        %d shots, %d hits (%.0f%%), %d ships afloat\n",
		m.PlayerShots, m.PlayerHits, m.Accuracy()*100, m.PlayerShips)
	fmt.Printf("  Computer:   %d shots, %d hits, %d ships afloat\n",
		m.ComputerShots, m.ComputerHits, m.ComputerShips)
	fmt.Printf("  Score:      %d\n", m.Score)
}
