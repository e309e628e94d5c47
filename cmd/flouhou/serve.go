package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flouhou/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
	flagMaxConn int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the flouhou SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game with the title menu. Runs are
recorded under the SSH user name; all users share one run history.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.flouhou/host_key

Examples:
  flouhou serve                           # Listen on the configured address
  flouhou serve --ssh :2222               # Listen on port 2222
  flouhou serve --host-key ./my_host_key  # Use specific host key
  flouhou serve --max-sessions 8          # Limit concurrent players

Users can connect with:
  ssh -t localhost -p 2323`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().IntVar(&flagMaxConn, "max-sessions", -1, "Maximum concurrent connections, 0 for no limit (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, source := mustLoadConfig()

	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagMaxConn >= 0 {
		cfg.Server.MaxSessions = flagMaxConn
	}

	logger := newLogger(os.Stderr, cfg)
	logger.Info("config loaded", "source", source)

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(newDeps(cfg, store, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting flouhou SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
