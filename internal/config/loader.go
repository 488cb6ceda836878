package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PopstarFile is the configuration file name looked up in each directory.
const PopstarFile = "popstar.yaml"

// LoadPopstar loads PopStar configuration.
// Search order: customPath -> ~/.popstar/configs/popstar.yaml ->
// ./configs/popstar.yaml -> embedded default -> DefaultPopstarConfig.
// Files are decoded over the defaults, so they only need the keys they change.
// An explicit customPath must exist and be valid; other locations are
// skipped when missing or malformed.
func LoadPopstar(customPath string) (PopstarConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{
		userConfigPath(PopstarFile),
		filepath.Join("configs", PopstarFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return embeddedPopstar(), nil
}

// loadFile decodes one YAML file on top of the built-in defaults.
func loadFile(path string) (PopstarConfig, error) {
	cfg := DefaultPopstarConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// embeddedPopstar returns the embedded default YAML, or the hardcoded
// defaults if the embedded file is unusable.
func embeddedPopstar() PopstarConfig {
	cfg := DefaultPopstarConfig()
	if err := yaml.Unmarshal(defaultPopstarYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultPopstarConfig()
	}
	return cfg
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultPopstarYAML...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".popstar", "configs", filename)
}
