package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadNibbles loads the game configuration. Missing fields keep their
// defaults.
// Search order: customPath -> ~/.nibbles/config.yaml -> ./configs/nibbles.yaml -> embedded default
func LoadNibbles(customPath string) (NibblesConfig, error) {
	cfg := DefaultNibblesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return finish(cfg, userCfgPath)
			}
			cfg = DefaultNibblesConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/nibbles.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return finish(cfg, "configs/nibbles.yaml")
		}
		cfg = DefaultNibblesConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultNibblesYAML, &cfg); err != nil {
		return DefaultNibblesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseNibbles decodes YAML over the defaults and validates the result.
func ParseNibbles(data []byte) (NibblesConfig, error) {
	cfg := DefaultNibblesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return finish(cfg, "")
}

// Marshal encodes the config as YAML.
func Marshal(cfg NibblesConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func finish(cfg NibblesConfig, source string) (NibblesConfig, error) {
	cfg.LevelsDir = expandHome(cfg.LevelsDir)
	if err := cfg.Validate(); err != nil {
		if source != "" {
			return cfg, fmt.Errorf("%s: %w", source, err)
		}
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nibbles", filename)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
