package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flouhou/internal/platform/tui"
)

var flagPlayLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game directly, skipping the menu.

Controls (defaults, see 'flouhou keys'):
  Arrows/WASD/HJKL  - Fly
  Space/Enter/Z     - Shoot, resume from pause
  Esc/Backspace/X   - Pause; on the pause screen: quit
  Ctrl+S            - Save a PNG screenshot
  Ctrl+C            - Exit

Losing the last life restarts the game after the explosion.

Examples:
  flouhou play
  flouhou play --tps 30
  flouhou play --config ./my-keys.yaml --log-file flouhou.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, _ := mustLoadConfig()

	if err := checkTerminal(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, logs go to a file or nowhere
	logOut, err := openLogFile(flagPlayLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logOut.Close()
	logger := newLogger(logOut, cfg)

	store := openStore(cfg, logger)

	// Run the game
	runErr := tui.Run(newDeps(cfg, store, logger))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
