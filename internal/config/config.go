// Package config provides YAML-based game configuration loading and
// difficulty presets for Push Block.
package config

import (
	"errors"
	"fmt"
)

// PushblockConfig contains all configuration for the Push Block game.
type PushblockConfig struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Targets TargetsConfig `yaml:"targets"`
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   bool          `yaml:"debug"` // Panic on engine invariant violations
}

// ScoringConfig defines points and levels.
type ScoringConfig struct {
	BaseScore      int `yaml:"base_score"`      // Points per clear at level 1
	LevelThreshold int `yaml:"level_threshold"` // Level-up at threshold * level^2
	MaxLevel       int `yaml:"max_level"`
}

// SpawnConfig defines block placement.
type SpawnConfig struct {
	Intervals      []float64 `yaml:"intervals"`       // Seconds between spawns, per level
	ReseedLevels   []int     `yaml:"reseed_levels"`   // Levels that add a fresh set of static blocks
	StaticBlocks   int       `yaml:"static_blocks"`   // Static blocks per stage build
	MoveableBlocks int       `yaml:"moveable_blocks"` // Moveable blocks on the first build only
}

// TargetsConfig defines the clear condition.
type TargetsConfig struct {
	Required int `yaml:"required"` // Satisfied targets that trigger a clear
}

// TimingConfig defines input and end-of-game timing, in seconds.
type TimingConfig struct {
	InputReset float64 `yaml:"input_reset"`
	EndDelay   float64 `yaml:"end_delay"`
}

// AudioConfig defines effect playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Relative gain, 0 is unchanged, negative is quieter
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks the configuration for values the game cannot run with.
func (c PushblockConfig) Validate() error {
	if c.Scoring.BaseScore <= 0 {
		return fmt.Errorf("scoring.base_score must be positive: %w", ErrInvalidConfig)
	}
	if c.Scoring.LevelThreshold <= 0 {
		return fmt.Errorf("scoring.level_threshold must be positive: %w", ErrInvalidConfig)
	}
	if c.Scoring.MaxLevel < 1 {
		return fmt.Errorf("scoring.max_level must be at least 1: %w", ErrInvalidConfig)
	}
	if len(c.Spawn.Intervals) == 0 {
		return fmt.Errorf("spawn.intervals is empty: %w", ErrInvalidConfig)
	}
	for i, v := range c.Spawn.Intervals {
		if v <= 0 {
			return fmt.Errorf("spawn.intervals[%d] must be positive: %w", i, ErrInvalidConfig)
		}
		if i > 0 && v >= c.Spawn.Intervals[i-1] {
			return fmt.Errorf("spawn.intervals must strictly decrease (index %d): %w", i, ErrInvalidConfig)
		}
	}
	if c.Spawn.StaticBlocks < 0 || c.Spawn.MoveableBlocks < 0 {
		return fmt.Errorf("spawn block counts must not be negative: %w", ErrInvalidConfig)
	}
	if c.Targets.Required < 1 {
		return fmt.Errorf("targets.required must be at least 1: %w", ErrInvalidConfig)
	}
	if c.Timing.InputReset < 0 || c.Timing.EndDelay < 0 {
		return fmt.Errorf("timing values must not be negative: %w", ErrInvalidConfig)
	}
	return nil
}
