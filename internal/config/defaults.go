package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the hardcoded blockfall configuration.
// It matches defaults/blockfall.yaml and is used if the embedded file
// cannot be parsed.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Rows: 21,
			Cols: 10,
		},
		Timing: TimingConfig{
			FallInterval:     1.0,
			MinFallInterval:  0.02,
			AutoShiftDelay:   0.1,
			SoftDropInterval: 0.04,
			ClearDelay:       0.4,
		},
		Gameplay: GameplayConfig{
			StartLevel: 0,
			TopOut:     "game_over",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockfall", "blockfall_endless":
		return defaultBlockfallYAML
	default:
		return nil
	}
}
