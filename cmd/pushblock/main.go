// pushblock is a Sokoban-like terminal game: push blocks onto targets
// before the board fills up.
//
// Usage:
//
//	pushblock                  - Start on the title screen
//	pushblock play [stage]     - Start a run right away
//	pushblock list             - List builtin and custom stages
//	pushblock scores           - Show the score history
//	pushblock serve            - Start SSH server for remote play
//	pushblock validate <file>  - Check a stage file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.pushblock/scores.db)
//	--log <path>          - Write logs to a file
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--stages <dir>        - Directory with custom stages
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/pushblock/internal/games/pushblock"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagDebug      bool
	flagConfig     string
	flagDifficulty string
	flagStageDir   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pushblock",
	Short: "Push Block - push blocks onto targets in your terminal",
	Long: `Push Block is a Sokoban-like terminal game. Push the blocks onto the
targets to destroy them and score, before new blocks fill the board.

Available commands:
  play      - Start a run right away
  list      - Show builtin and custom stages
  scores    - View the score history
  serve     - Start SSH server for remote play
  validate  - Check a stage file

Running without a command starts on the title screen.

Examples:
  pushblock
  pushblock play corridor
  pushblock play ./my-stage.yaml --difficulty hard
  pushblock serve --ssh :2222
  pushblock scores`,
	SilenceUsage: true,
	RunE:         runTitle,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pushblock/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages and panic on engine invariant violations")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagStageDir, "stages", "", "Directory with custom stages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(validateCmd)
}
