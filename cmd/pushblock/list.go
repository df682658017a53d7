package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushblock/internal/games/pushblock/stages"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available stages",
	Long:  `Shows the builtin stages and, with --stages, the custom ones.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	builtin, err := stages.Builtin().LoadAll()
	if err != nil {
		return err
	}
	printStages("Builtin stages:", builtin)

	if flagStageDir != "" {
		custom, err := stages.NewLoader(flagStageDir).LoadAll()
		if err != nil {
			return err
		}
		fmt.Println()
		printStages(fmt.Sprintf("Custom stages (%s):", flagStageDir), custom)
	}

	fmt.Println()
	fmt.Println("Run 'pushblock play <id>' to play a stage.")
	return nil
}

func printStages(heading string, layouts []stages.Layout) {
	fmt.Println(heading)
	fmt.Println()

	if len(layouts) == 0 {
		fmt.Println("  (none)")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Targets", "Free", "Name")
	fmt.Printf("  %-*s  %-7s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-------", "----", "----")

	for _, l := range layouts {
		stats, err := l.Stats()
		if err != nil {
			fmt.Printf("  %-*s  invalid: %v\n", maxIDLen, l.ID, err)
			continue
		}
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-7s  %-7d  %-5d  %s\n", maxIDLen, l.ID, size, stats.Targets, stats.Free, l.Name)
	}
}
