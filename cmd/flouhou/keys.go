package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flouhou/internal/config"
	"github.com/vovakirdan/flouhou/internal/core"
)

var flagKeysDefaults bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long: `Show the key bindings of the active config and where it was loaded from.

Bindings are changed in the keys section of the config file. Use
--defaults to print the built-in config as a starting point.

Examples:
  flouhou keys
  flouhou keys --defaults > ~/.flouhou/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runKeys,
}

func init() {
	keysCmd.Flags().BoolVar(&flagKeysDefaults, "defaults", false, "Print the built-in config file")
}

func runKeys(_ *cobra.Command, _ []string) {
	if flagKeysDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, source := mustLoadConfig()

	fmt.Printf("Key bindings (config: %s)\n", source)
	fmt.Println()

	for _, b := range core.Buttons {
		fmt.Printf("  %-10s  %s\n", b, formatKeys(cfg.Keys.For(b)))
	}
	fmt.Printf("  %-10s  %s\n", "screenshot", formatKeys(cfg.Keys.Screenshot))
	fmt.Printf("  %-10s  %s\n", "exit", formatKeys(cfg.Keys.Quit))
}

func formatKeys(keys []string) string {
	if len(keys) == 0 {
		return "(unbound)"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}
