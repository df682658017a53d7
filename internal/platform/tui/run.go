package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts a local session on the title scene and blocks until the
// player quits.
func Run(opts SceneOptions) error {
	return runProgram(NewSceneModel(opts))
}

// RunMain starts a local session directly on the main scene.
func RunMain(opts SceneOptions) error {
	model, err := NewMainSceneModel(opts)
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}
	return runProgram(model)
}

func runProgram(model SceneModel) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running session: %w", err)
	}
	return nil
}
