package engine_test

import (
	"testing"

	"github.com/vovakirdan/pushblock/internal/games/pushblock/engine"
)

// newGrid builds a grid from ASCII rows and freezes its target mask.
// '#' static, 'B' moveable, 'P' player, 'T' target, '.' empty.
func newGrid(t *testing.T, rows ...string) *engine.Grid {
	t.Helper()

	g := engine.NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			kind, ok := engine.KindFromRune(ch)
			if !ok {
				t.Fatalf("bad glyph %q at (%d,%d)", ch, r, c)
			}
			if err := g.Set(r, c, kind); err != nil {
				t.Fatalf("Set(%d, %d): %v", r, c, err)
			}
		}
	}
	if err := g.FreezeTargets(); err != nil {
		t.Fatalf("FreezeTargets: %v", err)
	}
	return g
}

// recorder captures presentation and effect calls.
type recorder struct {
	spawned []engine.Coord
	removed []engine.Coord
	moves   [][2]engine.Coord
	effects []engine.Effect
}

func (r *recorder) SpawnVisual(_ engine.CellKind, row, col int) {
	r.spawned = append(r.spawned, engine.At(row, col))
}

func (r *recorder) RemoveVisual(row, col int) {
	r.removed = append(r.removed, engine.At(row, col))
}

func (r *recorder) MoveVisual(fromRow, fromCol, toRow, toCol int) {
	r.moves = append(r.moves, [2]engine.Coord{engine.At(fromRow, fromCol), engine.At(toRow, toCol)})
}

func (r *recorder) PlayEffect(e engine.Effect) {
	r.effects = append(r.effects, e)
}

func (r *recorder) count(e engine.Effect) int {
	n := 0
	for _, got := range r.effects {
		if got == e {
			n++
		}
	}
	return n
}

// movePlayer steps the player once in direction d.
func movePlayer(res *engine.Resolver, d engine.Dir) bool {
	req := engine.Request(res.Grid().Player(), d)
	return res.TryMovePlayer(req.FromRow, req.FromCol, req.ToRow, req.ToCol)
}
