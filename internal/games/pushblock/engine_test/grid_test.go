package engine_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pushblock/internal/games/pushblock/engine"
)

func TestGridBounds(t *testing.T) {
	g := engine.NewGrid(3, 4)

	testCases := []struct {
		row, col int
		inBounds bool
	}{
		{0, 0, true},
		{2, 3, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 4, false},
		{3, 4, false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.row, tc.col); got != tc.inBounds {
			t.Errorf("InBounds(%d, %d) = %v, expected %v", tc.row, tc.col, got, tc.inBounds)
		}

		before := g.String()
		_, getErr := g.Get(tc.row, tc.col)
		setErr := g.Set(tc.row, tc.col, engine.StaticBlock)

		if tc.inBounds {
			if getErr != nil || setErr != nil {
				t.Errorf("(%d,%d): unexpected errors get=%v set=%v", tc.row, tc.col, getErr, setErr)
			}
			//nolint:errcheck // restore
			g.Set(tc.row, tc.col, engine.Empty)
			continue
		}

		if !errors.Is(getErr, engine.ErrOutOfBounds) {
			t.Errorf("Get(%d, %d) error = %v, expected ErrOutOfBounds", tc.row, tc.col, getErr)
		}
		if !errors.Is(setErr, engine.ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) error = %v, expected ErrOutOfBounds", tc.row, tc.col, setErr)
		}
		if g.String() != before {
			t.Errorf("out-of-bounds Set(%d, %d) mutated the grid", tc.row, tc.col)
		}
	}
}

func TestGridTargetSnapshot(t *testing.T) {
	g := newGrid(t,
		"#####",
		"#P.T#",
		"#####",
	)

	if !g.IsTarget(1, 3) {
		t.Error("(1,3) should be a target")
	}
	if g.IsTarget(1, 1) || g.IsTarget(0, 0) {
		t.Error("player and static cells must not count as targets")
	}
	if g.IsTarget(-1, 3) {
		t.Error("out-of-bounds cells are never targets")
	}

	kind, err := g.TargetKind(0, 0)
	if err != nil || kind != engine.StaticBlock {
		t.Errorf("TargetKind(0,0) = %v, %v; expected StaticBlock snapshot", kind, err)
	}

	// Occupancy changes never touch the mask
	//nolint:errcheck // in bounds
	g.Set(1, 3, engine.Empty)
	if !g.IsTarget(1, 3) {
		t.Error("target mask changed after occupancy write")
	}

	if err := g.FreezeTargets(); !errors.Is(err, engine.ErrTargetsFrozen) {
		t.Errorf("second FreezeTargets error = %v, expected ErrTargetsFrozen", err)
	}
}

func TestGridPlayerCache(t *testing.T) {
	g := newGrid(t,
		"P..",
		"...",
	)

	if g.Player() != engine.At(0, 0) {
		t.Fatalf("Player() = %v, expected (0,0)", g.Player())
	}

	if err := g.Move(engine.At(0, 0), engine.At(1, 2)); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if g.Player() != engine.At(1, 2) {
		t.Errorf("Player() after Move = %v, expected (1,2)", g.Player())
	}
	if err := g.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants: %v", err)
	}

	// Break the invariant behind the cache's back
	//nolint:errcheck // in bounds
	g.Set(1, 2, engine.Empty)
	if err := g.CheckInvariants(); !errors.Is(err, engine.ErrInvariantViolation) {
		t.Errorf("CheckInvariants error = %v, expected ErrInvariantViolation", err)
	}
}

func TestGridMoveOutOfBounds(t *testing.T) {
	g := newGrid(t, "PB")

	if err := g.Move(engine.At(0, 1), engine.At(0, 2)); !errors.Is(err, engine.ErrOutOfBounds) {
		t.Errorf("Move off the grid error = %v, expected ErrOutOfBounds", err)
	}
	if g.String() != "PB" {
		t.Errorf("grid changed after refused move: %q", g.String())
	}
}

func TestGridCounts(t *testing.T) {
	g := newGrid(t,
		"#BT",
		"PTB",
	)

	if got := g.Count(engine.MoveableBlock); got != 2 {
		t.Errorf("Count(MoveableBlock) = %d, expected 2", got)
	}
	if got := g.TargetCount(); got != 2 {
		t.Errorf("TargetCount() = %d, expected 2", got)
	}

	//nolint:errcheck // in bounds
	g.Set(0, 2, engine.MoveableBlock)
	if got := g.SatisfiedTargets(); got != 1 {
		t.Errorf("SatisfiedTargets() = %d, expected 1", got)
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := newGrid(t, "P.B")
	clone := g.Clone()

	//nolint:errcheck // in bounds
	g.Set(0, 1, engine.StaticBlock)

	if clone.Equal(g) {
		t.Error("clone should not see writes to the original")
	}
	if clone.String() != "P.B" {
		t.Errorf("clone = %q, expected %q", clone.String(), "P.B")
	}
}

func TestGridStringShowsWalkedTargets(t *testing.T) {
	g := newGrid(t, "PT.")

	// Walk over the marker; the mask keeps the target visible in dumps
	if err := g.Move(engine.At(0, 0), engine.At(0, 1)); err != nil {
		t.Fatal(err)
	}
	if err := g.Move(engine.At(0, 1), engine.At(0, 2)); err != nil {
		t.Fatal(err)
	}

	if got := g.String(); got != ".tP" {
		t.Errorf("String() = %q, expected %q", got, ".tP")
	}
}
