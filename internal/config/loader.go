package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file in the search directories.
const FileName = "config.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.flouhou/config.yaml -> ./configs/flouhou.yaml -> embedded default
// Values missing from the chosen file keep their defaults. The result is validated.
func Load(customPath string) (Config, string, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

func load(customPath string) (Config, string, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, customPath, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, customPath, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", "flouhou.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			return cfg, path, fmt.Errorf("config: parse %s: %w", path, err)
		}
		return candidate, path, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), "built-in", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Dir returns the per-user flouhou directory, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flouhou")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
