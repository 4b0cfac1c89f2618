package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlockfall loads blockfall configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml ->
// ./configs/blockfall.yaml -> embedded default -> hardcoded default.
// Files are decoded over the defaults, so partial files are fine.
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	cfg := embeddedBlockfall()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg)
	}

	for _, path := range searchPaths("blockfall.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return finish(candidate)
		}
	}

	return finish(cfg)
}

// embeddedBlockfall decodes the embedded YAML over the hardcoded defaults.
func embeddedBlockfall() BlockfallConfig {
	cfg := DefaultBlockfallConfig()
	if err := yaml.Unmarshal(defaultBlockfallYAML, &cfg); err != nil {
		return DefaultBlockfallConfig()
	}
	return cfg
}

// finish applies the preset named in the file and validates the result.
func finish(cfg BlockfallConfig) (BlockfallConfig, error) {
	if cfg.Difficulty.Preset != "" {
		ApplyBlockfallPreset(&cfg, cfg.Difficulty.Preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchPaths lists the user and local locations for a config file.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}
