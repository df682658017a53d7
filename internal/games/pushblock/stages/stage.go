// Package stages loads Push Block stage layouts.
// This package depends on engine but engine does not depend on stages.
package stages

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pushblock/internal/games/pushblock/engine"
)

// ErrInvalidStage is returned for layouts that cannot be played.
var ErrInvalidStage = errors.New("stages: invalid stage")

// Layout is a complete authored stage.
type Layout struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Rows     []string
	Metadata map[string]string
	FilePath string
}

// Grid imports the layout into a fresh grid and freezes its target mask.
func (l *Layout) Grid() (*engine.Grid, error) {
	g := engine.NewGrid(l.Height, l.Width)
	for r, row := range l.Rows {
		c := 0
		for _, ch := range row {
			kind, ok := engine.KindFromRune(ch)
			if !ok {
				return nil, fmt.Errorf("stage %s: unknown glyph %q at (%d,%d): %w", l.ID, ch, r, c, ErrInvalidStage)
			}
			if err := g.Set(r, c, kind); err != nil {
				return nil, fmt.Errorf("stage %s: %w", l.ID, err)
			}
			c++
		}
	}
	if err := g.FreezeTargets(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", l.ID, err)
	}
	return g, nil
}

// Validate checks that the layout has exactly one player and at least
// required target cells.
func (l *Layout) Validate(required int) error {
	g, err := l.Grid()
	if err != nil {
		return err
	}

	if players := g.Count(engine.Player); players != 1 {
		return fmt.Errorf("stage %s: %d players, expected 1: %w", l.ID, players, ErrInvalidStage)
	}
	if targets := g.TargetCount(); targets < required {
		return fmt.Errorf("stage %s: %d targets, need at least %d: %w", l.ID, targets, required, ErrInvalidStage)
	}
	return nil
}

// Stats summarizes a layout for listings.
type Stats struct {
	Static   int
	Moveable int
	Targets  int
	Free     int
}

// Stats counts cells by kind. Free counts cells a block could spawn on.
func (l *Layout) Stats() (Stats, error) {
	g, err := l.Grid()
	if err != nil {
		return Stats{}, err
	}
	free := 0
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if kind, _ := g.Get(r, c); kind == engine.Empty && !g.IsTarget(r, c) {
				free++
			}
		}
	}
	return Stats{
		Static:   g.Count(engine.StaticBlock),
		Moveable: g.Count(engine.MoveableBlock),
		Targets:  g.TargetCount(),
		Free:     free,
	}, nil
}
