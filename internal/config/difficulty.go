package config

import "strings"

// DifficultyPreset represents a named starting level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
)

// MaxStartLevel is the highest level offered by the start menu.
const MaxStartLevel = 9

// Presets returns all presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane}
}

// ParsePreset converts a case-insensitive name to a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}

// Valid reports whether p is a known preset.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane:
		return true
	}
	return false
}

// StartLevelForPreset returns the starting level for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	case DifficultyInsane:
		return MaxStartLevel
	default:
		return 0
	}
}

// ApplyBlockfallPreset sets the starting level from a preset.
// Unknown presets leave the config unchanged.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	if !preset.Valid() {
		return
	}
	cfg.Difficulty.Preset = preset
	cfg.Gameplay.StartLevel = StartLevelForPreset(preset)
}
