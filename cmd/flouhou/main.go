// flouhou is a small arcade shooter played in the terminal or over SSH.
//
// Usage:
//
//	flouhou menu             - Title menu with game and high scores
//	flouhou play             - Start a game directly
//	flouhou serve            - Start SSH server for remote play
//	flouhou scores           - Show recorded runs
//	flouhou sim <script>     - Run a scripted game without a terminal
//	flouhou keys             - Show key bindings
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.flouhou/config.yaml)
//	--db <path>         - Run history database (default: ~/.flouhou/flouhou.db)
//	--tps <rate>        - Simulation ticks per second (default: 16)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagTPS      int
	flagLogLevel string
	flagPlayer   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flouhou",
	Short: "flouhou - shoot the laughing face before it shoots you",
	Long: `flouhou is a tiny 128x64 arcade shooter. Fly the ship, dodge the
enemy's shots and hit it as often as you can. Every hit makes it
shoot faster.

Available commands:
  menu     - Title menu with game and high scores
  play     - Start a game directly
  serve    - Start SSH server for remote play
  scores   - View recorded runs
  sim      - Run a scripted game headlessly
  keys     - Show key bindings

Examples:
  flouhou menu
  flouhou play --tps 30
  flouhou serve
  flouhou scores --recent
  flouhou sim ./dodge.yaml --frame`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: search ~/.flouhou and ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Simulation ticks per second (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name recorded with runs")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(keysCmd)
}
