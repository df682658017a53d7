package engine_test

import (
	"testing"

	"github.com/vovakirdan/pushblock/internal/games/pushblock/engine"
)

func TestTryMovePlayer(t *testing.T) {
	testCases := []struct {
		name   string
		layout []string
		dir    engine.Dir
		moved  bool
		after  []string
	}{
		{
			name:   "walk into empty",
			layout: []string{"P.."},
			dir:    engine.DirRight,
			moved:  true,
			after:  []string{".P."},
		},
		{
			name:   "walk onto free target",
			layout: []string{"PT."},
			dir:    engine.DirRight,
			moved:  true,
			after:  []string{".P."},
		},
		{
			name:   "static block refuses",
			layout: []string{"P#."},
			dir:    engine.DirRight,
			moved:  false,
			after:  []string{"P#."},
		},
		{
			name:   "grid edge refuses",
			layout: []string{"P.."},
			dir:    engine.DirLeft,
			moved:  false,
			after:  []string{"P.."},
		},
		{
			name:   "push single block",
			layout: []string{"PB.."},
			dir:    engine.DirRight,
			moved:  true,
			after:  []string{".PB."},
		},
		{
			name:   "push two blocks",
			layout: []string{"PBB....."},
			dir:    engine.DirRight,
			moved:  true,
			after:  []string{".PBB...."},
		},
		{
			name:   "three blocks are too heavy",
			layout: []string{"PBBB...."},
			dir:    engine.DirRight,
			moved:  false,
			after:  []string{"PBBB...."},
		},
		{
			name:   "block against wall",
			layout: []string{"PB#."},
			dir:    engine.DirRight,
			moved:  false,
			after:  []string{"PB#."},
		},
		{
			name:   "chain against wall",
			layout: []string{"PBB#"},
			dir:    engine.DirRight,
			moved:  false,
			after:  []string{"PBB#"},
		},
		{
			name:   "block at grid edge",
			layout: []string{"..PB"},
			dir:    engine.DirRight,
			moved:  false,
			after:  []string{"..PB"},
		},
		{
			name: "push downward",
			layout: []string{
				"P",
				"B",
				".",
				".",
			},
			dir:   engine.DirDown,
			moved: true,
			after: []string{
				".",
				"P",
				"B",
				".",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := newGrid(t, tc.layout...)
			want := newGrid(t, tc.after...)
			res := engine.NewResolver(g, 3, nil)

			if got := movePlayer(res, tc.dir); got != tc.moved {
				t.Fatalf("moved = %v, expected %v", got, tc.moved)
			}
			if !g.Equal(want) {
				t.Errorf("grid =\n%s\nexpected\n%s", g, want)
			}
			if err := g.CheckInvariants(); err != nil {
				t.Errorf("CheckInvariants: %v", err)
			}
		})
	}
}

func TestTryMovePlayerRequiresPlayer(t *testing.T) {
	g := newGrid(t, "PB..")
	res := engine.NewResolver(g, 3, nil)

	// (0,1) holds a block, not the player
	if res.TryMovePlayer(0, 1, 0, 2) {
		t.Error("moved from a cell without the player")
	}
	if res.TryMovePlayer(0, 0, 0, -1) {
		t.Error("moved off the grid")
	}
}

func TestTryPushChainOriginMustBeBlock(t *testing.T) {
	g := newGrid(t, "P...")
	res := engine.NewResolver(g, 3, nil)

	if res.TryPushChain(0, 1, 0, 2) {
		t.Error("pushed an empty cell")
	}
}

func TestPushOntoTarget(t *testing.T) {
	rec := &recorder{}
	g := newGrid(t, "P.BT..")
	res := engine.NewResolver(g, 3, rec)

	movePlayer(res, engine.DirRight)
	if !movePlayer(res, engine.DirRight) {
		t.Fatal("push refused")
	}
	if got := res.TargetSatisfied(); got != 1 {
		t.Fatalf("TargetSatisfied() = %d, expected 1", got)
	}

	// Pushing it off the target takes the credit back
	if !movePlayer(res, engine.DirRight) {
		t.Fatal("second push refused")
	}
	if got := res.TargetSatisfied(); got != 0 {
		t.Errorf("TargetSatisfied() after leaving = %d, expected 0", got)
	}

	if len(rec.moves) != 5 {
		t.Errorf("MoveVisual calls = %d, expected 5", len(rec.moves))
	}
}

func TestTargetIdempotence(t *testing.T) {
	g := newGrid(t, "P.BBT...")
	res := engine.NewResolver(g, 3, nil)

	movePlayer(res, engine.DirRight)

	// Chain push: far block lands on the target
	if !movePlayer(res, engine.DirRight) {
		t.Fatal("chain push refused")
	}
	if got := res.TargetSatisfied(); got != 1 {
		t.Fatalf("TargetSatisfied() = %d, expected 1", got)
	}

	// Push again: one block leaves the target while the other lands on it
	if !movePlayer(res, engine.DirRight) {
		t.Fatal("second chain push refused")
	}
	if got := res.TargetSatisfied(); got != 1 {
		t.Errorf("TargetSatisfied() = %d, expected 1 (no double count)", got)
	}
	if got, want := res.TargetSatisfied(), g.SatisfiedTargets(); got != want {
		t.Errorf("counter %d disagrees with grid %d", got, want)
	}
}

func TestSatisfiedBlockAgainstWall(t *testing.T) {
	g := newGrid(t, "PBT#")
	res := engine.NewResolver(g, 3, nil)

	if !movePlayer(res, engine.DirRight) {
		t.Fatal("push refused")
	}
	if movePlayer(res, engine.DirRight) {
		t.Fatal("pushed a block into a wall")
	}
	if got := res.TargetSatisfied(); got != 1 {
		t.Errorf("TargetSatisfied() = %d, expected 1", got)
	}
}

func TestPullSymmetry(t *testing.T) {
	g := newGrid(t, ".TP...")
	//nolint:errcheck // in bounds
	g.Set(0, 1, engine.MoveableBlock)

	res := engine.NewResolver(g, 3, nil)
	res.Resync()
	if got := res.TargetSatisfied(); got != 1 {
		t.Fatalf("TargetSatisfied() after Resync = %d, expected 1", got)
	}

	res.SetPullMode(true)
	if !movePlayer(res, engine.DirRight) {
		t.Fatal("move refused")
	}

	want := newGrid(t, "..BP..")
	if !g.Equal(want) {
		t.Errorf("grid = %q, expected %q", g.String(), want.String())
	}
	if got := res.TargetSatisfied(); got != 0 {
		t.Errorf("TargetSatisfied() after pull = %d, expected 0", got)
	}
}

func TestPullOffWithoutPullMode(t *testing.T) {
	g := newGrid(t, ".BP...")
	res := engine.NewResolver(g, 3, nil)

	if !movePlayer(res, engine.DirRight) {
		t.Fatal("move refused")
	}
	if got := g.String(); got != ".B.P.." {
		t.Errorf("grid = %q, expected block to stay put", got)
	}
}

func TestPullBlockedBehindIsNoop(t *testing.T) {
	// Pulling never fails the player's move
	g := newGrid(t, "#P..")
	res := engine.NewResolver(g, 3, nil)
	res.SetPullMode(true)

	if !movePlayer(res, engine.DirRight) {
		t.Fatal("move refused")
	}
	if got := g.String(); got != "#.P." {
		t.Errorf("grid = %q, expected %q", got, "#.P.")
	}
}

func TestConsumeSatisfaction(t *testing.T) {
	g := newGrid(t, "PBT..")
	res := engine.NewResolver(g, 1, nil)

	if res.ConsumeSatisfaction() {
		t.Fatal("consumed before any target was satisfied")
	}
	movePlayer(res, engine.DirRight)

	if !res.ConsumeSatisfaction() {
		t.Fatal("threshold reached but not consumed")
	}
	if res.ConsumeSatisfaction() {
		t.Error("consumed twice for one crossing")
	}
	if got := res.TargetSatisfied(); got != 0 {
		t.Errorf("TargetSatisfied() = %d, expected 0 after consume", got)
	}
}

func TestConsumeSatisfactionOvershoot(t *testing.T) {
	// One chain push can satisfy two targets at once
	g := newGrid(t, "P.BBTT")
	res := engine.NewResolver(g, 1, nil)

	movePlayer(res, engine.DirRight)
	movePlayer(res, engine.DirRight)
	movePlayer(res, engine.DirRight)

	if got := g.SatisfiedTargets(); got != 2 {
		t.Fatalf("SatisfiedTargets() = %d, expected 2; grid %q", got, g.String())
	}
	if !res.ConsumeSatisfaction() {
		t.Error("overshoot not consumed")
	}
}
