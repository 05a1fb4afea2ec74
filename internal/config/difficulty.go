package config

import "fmt"

// DifficultyPreset is a named drain speed.
type DifficultyPreset string

const (
	DifficultyRelaxed   DifficultyPreset = "relaxed"
	DifficultyNormal    DifficultyPreset = "normal"
	DifficultyDemanding DifficultyPreset = "demanding"
)

// Presets lists the presets in order of increasing difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyRelaxed, DifficultyNormal, DifficultyDemanding}
}

// DrainMultiplier returns how much faster than configured the needs deplete.
func (p DifficultyPreset) DrainMultiplier() float64 {
	switch p {
	case DifficultyRelaxed:
		return 0.5
	case DifficultyDemanding:
		return 2.0
	default:
		return 1.0
	}
}

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want relaxed, normal or demanding)", s)
}

// ApplyDifficulty sets the preset used when drains are built.
func ApplyDifficulty(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty = string(preset)
}
