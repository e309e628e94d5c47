package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flouhou/internal/platform/tui"
)

var flagMenuLogFile string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start flouhou with the title menu",
	Long: `Start flouhou in interactive menu mode.

Pick Play to start a game, High scores to browse recorded runs.
After a game ends you return to the menu to play again.

Controls:
  Up/Down  - Navigate menu
  Shoot    - Select
  Back     - Quit

Examples:
  flouhou menu
  flouhou menu --tps 24
  flouhou menu --db ./runs.db --log-file flouhou.log`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, _ := mustLoadConfig()

	if err := checkTerminal(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut, err := openLogFile(flagMenuLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logOut.Close()
	logger := newLogger(logOut, cfg)

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.RunApp(newDeps(cfg, store, logger)); err != nil {
		fmt.Fprintf(os.Stderr, "Error running flouhou: %v\n", err)
		os.Exit(1)
	}
}
