package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flouhou.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:  16,
			Ink:       "#2b2b26",
			Backlight: "#c7d0a8",
			ShowHelp:  true,
		},
		Keys: KeysConfig{
			Up:         []string{"up", "w", "k"},
			Down:       []string{"down", "s", "j"},
			Left:       []string{"left", "a", "h"},
			Right:      []string{"right", "d", "l"},
			Shoot:      []string{" ", "enter", "z"},
			Back:       []string{"esc", "backspace", "x"},
			Screenshot: []string{"ctrl+s"},
			Quit:       []string{"ctrl+c"},
		},
		Server: ServerConfig{
			Address:     ":2323",
			HostKey:     ".ssh/flouhou_ed25519",
			IdleTimeout: 10 * time.Minute,
			MaxSessions: 32,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
