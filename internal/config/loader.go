package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDino loads the runner configuration.
// Search order: customPath -> ~/.tui-dino/dino.yaml -> ./configs/dino.yaml -> embedded default.
// Files only need to name the values they change; the rest keep their defaults.
// A file that exists but cannot be read, parsed or validated is an error, so a
// broken config is never silently replaced by the defaults.
func LoadDino(customPath string) (DinoConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, _, err := loadFile(customPath, true)
		return cfg, err
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("dino.yaml"), filepath.Join("configs", "dino.yaml")} {
		if path == "" {
			continue
		}
		cfg, found, err := loadFile(path, false)
		if err != nil {
			return DinoConfig{}, err
		}
		if found {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDinoYAML)
	if err != nil {
		return DefaultDinoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses one config file. A missing file reports
// found=false unless required is set.
func loadFile(path string, required bool) (cfg DinoConfig, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return DinoConfig{}, false, nil
		}
		return DinoConfig{}, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err = parse(data)
	if err != nil {
		return DinoConfig{}, true, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, true, nil
}

// parse overlays YAML onto the hardcoded defaults and validates the result.
func parse(data []byte) (DinoConfig, error) {
	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DinoConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DinoConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg DinoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-dino", filename)
}
