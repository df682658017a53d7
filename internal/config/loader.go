package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPushblock loads Push Block configuration.
// Search order: customPath -> ~/.pushblock/configs/pushblock.yaml -> ./configs/pushblock.yaml -> embedded default
//
// Files are unmarshalled over the defaults, so a partial file only
// overrides the keys it sets.
func LoadPushblock(customPath string) (PushblockConfig, error) {
	cfg := DefaultPushblockConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pushblock.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "pushblock.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPushblockYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultPushblockConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or invalid files are
// skipped so the next location in the search order is used.
func tryLoad(path string) (PushblockConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PushblockConfig{}, false
	}
	cfg := DefaultPushblockConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PushblockConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return PushblockConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pushblock", "configs", filename)
}
