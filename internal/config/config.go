// Package config provides YAML-based configuration loading for flouhou.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flouhou/internal/core"
)

// Config is the complete application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Keys    KeysConfig    `yaml:"keys"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls the terminal front end.
type DisplayConfig struct {
	TickRate  int    `yaml:"tick_rate"` // Ticks per second
	Ink       string `yaml:"ink"`       // Color of lit pixels
	Backlight string `yaml:"backlight"` // Color of unlit pixels
	ShowHelp  bool   `yaml:"show_help"`
}

// KeysConfig lists the terminal keys bound to each button.
// Key names follow Bubble Tea's KeyMsg.String().
type KeysConfig struct {
	Up         []string `yaml:"up"`
	Down       []string `yaml:"down"`
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Shoot      []string `yaml:"shoot"`
	Back       []string `yaml:"back"`
	Screenshot []string `yaml:"screenshot"`
	Quit       []string `yaml:"quit"`
}

// For returns the keys bound to a game button.
func (k KeysConfig) For(b core.Button) []string {
	switch b {
	case core.ButtonUp:
		return k.Up
	case core.ButtonDown:
		return k.Down
	case core.ButtonLeft:
		return k.Left
	case core.ButtonRight:
		return k.Right
	case core.ButtonShoot:
		return k.Shoot
	case core.ButtonBack:
		return k.Back
	}
	return nil
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // Empty selects the default path
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxSessions int           `yaml:"max_sessions"` // 0 means unlimited
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("config: display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	if c.Display.TickRate > 120 {
		return fmt.Errorf("config: display.tick_rate %d exceeds 120", c.Display.TickRate)
	}

	owner := make(map[string]string)
	bind := func(name string, keys []string) error {
		for _, k := range keys {
			if prev, ok := owner[k]; ok {
				return fmt.Errorf("config: key %q bound to both %s and %s", k, prev, name)
			}
			owner[k] = name
		}
		return nil
	}
	for _, b := range core.Buttons {
		keys := c.Keys.For(b)
		if len(keys) == 0 {
			return fmt.Errorf("config: keys.%s has no bindings", strings.ToLower(b.String()))
		}
		if err := bind(strings.ToLower(b.String()), keys); err != nil {
			return err
		}
	}
	if len(c.Keys.Quit) == 0 {
		return fmt.Errorf("config: keys.quit has no bindings")
	}
	if err := bind("quit", c.Keys.Quit); err != nil {
		return err
	}
	if err := bind("screenshot", c.Keys.Screenshot); err != nil {
		return err
	}

	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("config: server.max_sessions must not be negative")
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	return nil
}
