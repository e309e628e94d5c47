package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		isolate(t)
		cfg, source, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if source != "embedded" || cfg.Display.TickRate != 16 {
			t.Errorf("source=%s tick_rate=%d", source, cfg.Display.TickRate)
		}
	})

	t.Run("local configs dir", func(t *testing.T) {
		_, work := isolate(t)
		writeFile(t, filepath.Join(work, "configs", "flouhou.yaml"), "display:\n  tick_rate: 20\n")
		cfg, source, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if source != filepath.Join("configs", "flouhou.yaml") || cfg.Display.TickRate != 20 {
			t.Errorf("source=%s tick_rate=%d", source, cfg.Display.TickRate)
		}
		// Unset values keep defaults.
		if len(cfg.Keys.Shoot) == 0 || cfg.Server.Address != ":2323" {
			t.Errorf("defaults lost: %+v", cfg)
		}
	})

	t.Run("user dir wins over local", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(work, "configs", "flouhou.yaml"), "display:\n  tick_rate: 20\n")
		writeFile(t, filepath.Join(home, ".flouhou", "config.yaml"), "display:\n  tick_rate: 30\n")
		cfg, _, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Display.TickRate != 30 {
			t.Errorf("tick_rate = %d, want 30", cfg.Display.TickRate)
		}
	})

	t.Run("custom path wins", func(t *testing.T) {
		home, _ := isolate(t)
		writeFile(t, filepath.Join(home, ".flouhou", "config.yaml"), "display:\n  tick_rate: 30\n")
		custom := filepath.Join(t.TempDir(), "mine.yaml")
		writeFile(t, custom, "display:\n  tick_rate: 40\nserver:\n  idle_timeout: 90s\n")
		cfg, source, err := Load(custom)
		if err != nil {
			t.Fatal(err)
		}
		if source != custom || cfg.Display.TickRate != 40 {
			t.Errorf("source=%s tick_rate=%d", source, cfg.Display.TickRate)
		}
		if cfg.Server.IdleTimeout != 90*time.Second {
			t.Errorf("idle_timeout = %v", cfg.Server.IdleTimeout)
		}
	})

	t.Run("missing custom path", func(t *testing.T) {
		isolate(t)
		if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		isolate(t)
		custom := filepath.Join(t.TempDir(), "bad.yaml")
		writeFile(t, custom, "display:\n  tick_rate: 0\n")
		if _, _, err := Load(custom); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero tick rate", func(c *Config) { c.Display.TickRate = 0 }, true},
		{"huge tick rate", func(c *Config) { c.Display.TickRate = 1000 }, true},
		{"unbound button", func(c *Config) { c.Keys.Shoot = nil }, true},
		{"duplicate key", func(c *Config) { c.Keys.Left = append(c.Keys.Left, "w") }, true},
		{"no quit key", func(c *Config) { c.Keys.Quit = nil }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"negative sessions", func(c *Config) { c.Server.MaxSessions = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
