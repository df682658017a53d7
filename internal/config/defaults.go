package config

import (
	_ "embed"
)

//go:embed defaults/pushblock.yaml
var defaultPushblockYAML []byte

// DefaultPushblockConfig returns the default Push Block configuration.
func DefaultPushblockConfig() PushblockConfig {
	return PushblockConfig{
		Scoring: ScoringConfig{
			BaseScore:      30,
			LevelThreshold: 150,
			MaxLevel:       5,
		},
		Spawn: SpawnConfig{
			Intervals:      []float64{5, 4, 3, 2, 1},
			ReseedLevels:   []int{3, 5},
			StaticBlocks:   7,
			MoveableBlocks: 6,
		},
		Targets: TargetsConfig{
			Required: 3,
		},
		Timing: TimingConfig{
			InputReset: 0.2,
			EndDelay:   3,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1,
		},
	}
}
