package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushblock/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [stage]",
	Short: "Start a run right away",
	Long: `Start playing without the title screen.

The stage is a builtin ID, the ID of a stage in --stages, or a path to a
stage file. The default is the classic stage.

Controls:
  Arrows/WASD/hjkl  - Move or push
  Space             - Toggle pull
  P                 - Pause / resume
  T/B/Esc           - Back to title (while paused)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower spawns
  normal - The configured spawn intervals
  hard   - Faster spawns
  fixed  - Spawn interval never shrinks

Examples:
  pushblock play
  pushblock play corridor --difficulty easy
  pushblock play ./stages/mine.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	stage := ""
	if len(args) == 1 {
		stage = args[0]
	}
	s, err := openLocalSession(stage)
	if err != nil {
		return err
	}
	defer s.close()

	return tui.RunMain(s.options())
}

func runTitle(_ *cobra.Command, _ []string) error {
	s, err := openLocalSession("")
	if err != nil {
		return err
	}
	defer s.close()

	return tui.Run(s.options())
}
