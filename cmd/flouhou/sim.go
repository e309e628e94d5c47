package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flouhou/internal/canvas"
	"github.com/vovakirdan/flouhou/internal/host"
	"github.com/vovakirdan/flouhou/internal/storage"
)

var (
	flagSimFrame  bool
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script>",
	Short: "Run a scripted game without a terminal",
	Long: `Feed a YAML input script through a game and print the final state.

The script lists button presses and releases per tick:

  ticks: 200
  events:
    - tick: 0
      press: [shoot, up]
    - tick: 40
      release: [up]

Runs that end during the script are printed as they happen.

Examples:
  flouhou sim ./dodge.yaml
  flouhou sim ./dodge.yaml --frame
  flouhou sim ./dodge.yaml --record --player bot`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagSimFrame, "frame", false, "Print the final frame")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save finished runs to the run history")
}

func runSim(_ *cobra.Command, args []string) {
	cfg, _ := mustLoadConfig()
	logger := newLogger(os.Stderr, cfg)

	script, err := host.LoadScript(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimRecord {
		store = openStore(cfg, logger)
		if store != nil {
			defer store.Close()
		}
	}

	session := host.NewSession(host.Options{
		Player: flagPlayer,
		Logger: logger,
		OnRunEnd: func(r host.RunResult) {
			fmt.Printf("run %s ended: %s after %d ticks with %d hits\n", r.RunID, r.Reason, r.Ticks, r.Hits)
			if store == nil || r.Ticks == 0 {
				return
			}
			if err := store.SaveResult(r); err != nil {
				logger.Error("could not save run", "run", r.RunID, "error", err)
			}
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := session.Run(ctx, script.Stream(ctx)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(session.Summary())
	if st := session.Status(); st.Dropped > 0 {
		fmt.Printf("dropped projectiles: %d\n", st.Dropped)
	}

	if flagSimFrame {
		b := canvas.NewBitmap()
		session.Frame(b)
		fmt.Println(b.String())
	}
}
