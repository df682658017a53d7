package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushblock/internal/config"
	"github.com/vovakirdan/pushblock/internal/games/pushblock/stages"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check stage files",
	Long: `Parse stage files and check they are playable with the current config:
exactly one player and enough targets for a clear.

Examples:
  pushblock validate ./stages/mine.yaml
  pushblock validate --config ./hard.yaml ./stages/*.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadPushblock(flagConfig)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		layout, err := stages.LoadFile(path)
		if err == nil {
			err = layout.Validate(cfg.Targets.Required)
		}
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		stats, _ := layout.Stats() //nolint:errcheck // Validate already built the grid
		fmt.Printf("ok    %s (%s, %dx%d, %d targets, %d free)\n",
			path, layout.ID, layout.Width, layout.Height, stats.Targets, stats.Free)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d stages invalid", failed, len(args))
	}
	return nil
}
