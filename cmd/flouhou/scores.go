package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flouhou/internal/platform/tui"
	"github.com/vovakirdan/flouhou/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresAll    bool
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best runs recorded in the run history.

By default only runs of the current player (--player) are listed.

Examples:
  flouhou scores
  flouhou scores --all --limit 20
  flouhou scores --recent
  flouhou scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show runs of every player")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, _ := mustLoadConfig()
	logger := newLogger(os.Stderr, cfg)

	// Open run storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagScoresTUI {
		if err := tui.RunScoreboard(newDeps(cfg, store, logger)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	player := flagPlayer
	if flagScoresAll {
		player = ""
	}

	var runs []storage.RunRecord
	title := "High Scores"
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(player, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if player != "" && !flagScoresRecent {
		title += " - " + player
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flouhou play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %-5s  %s\n", "Rank", "Player", "Hits", "Time", "End", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %-5s  %s\n", "----", "------", "----", "----", "---", "----")

	// Print runs
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-5d  %-8s  %-5s  %s\n",
			i+1, r.Player, r.Hits,
			r.Duration().Round(time.Second),
			r.EndReason,
			r.EndedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	// Show totals
	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Players: %d  Best: %d  Avg: %.1f  Deaths: %d\n",
			stats.Runs, stats.Players, stats.BestHits, stats.AvgHits, stats.Deaths)
	}
}
