package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. The empty string
// means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// IntervalScaleForPreset returns the factor applied to every spawn interval.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables spawn acceleration.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPushblockPreset modifies the config based on a difficulty preset.
func ApplyPushblockPreset(cfg *PushblockConfig, preset DifficultyPreset) {
	if preset == "" || len(cfg.Spawn.Intervals) == 0 {
		return
	}

	intervals := make([]float64, len(cfg.Spawn.Intervals))
	if IsFixedPreset(preset) {
		for i := range intervals {
			intervals[i] = cfg.Spawn.Intervals[0]
		}
	} else {
		scale := IntervalScaleForPreset(preset)
		for i, v := range cfg.Spawn.Intervals {
			intervals[i] = v * scale
		}
	}
	cfg.Spawn.Intervals = intervals

	// Adjust obstacles based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.StaticBlocks = 5
	case DifficultyHard:
		cfg.Spawn.StaticBlocks = 9
	}
}
