package engine_test

import (
	"testing"

	"github.com/vovakirdan/pushblock/internal/games/pushblock/engine"
)

func TestSweepAndClear(t *testing.T) {
	rec := &recorder{}
	g := newGrid(t,
		"P.....",
		"......",
		"...T..",
		"......",
		"......",
		"......",
	)
	//nolint:errcheck // in bounds
	g.Set(2, 3, engine.MoveableBlock)
	//nolint:errcheck // in bounds
	g.Set(4, 4, engine.MoveableBlock)

	c := engine.NewClearer(rec, rec)
	if got := c.SweepAndClear(g); got != 1 {
		t.Fatalf("cleared = %d, expected 1", got)
	}

	if kind, _ := g.Get(2, 3); kind != engine.Empty {
		t.Errorf("(2,3) = %s, expected Empty", kind)
	}
	if kind, _ := g.Get(4, 4); kind != engine.MoveableBlock {
		t.Errorf("(4,4) = %s, expected MoveableBlock", kind)
	}
	if !g.IsTarget(2, 3) {
		t.Error("clearing removed the target")
	}

	if len(rec.removed) != 1 || rec.removed[0] != engine.At(2, 3) {
		t.Errorf("RemoveVisual calls = %v, expected [(2,3)]", rec.removed)
	}
	if got := rec.count(engine.EffectBlockDestroyed); got != 1 {
		t.Errorf("BlockDestroyed effects = %d, expected 1", got)
	}
}

func TestSweepAndClearMany(t *testing.T) {
	rec := &recorder{}
	g := newGrid(t,
		"PTTT",
		"....",
	)
	for c := 1; c <= 3; c++ {
		//nolint:errcheck // in bounds
		g.Set(0, c, engine.MoveableBlock)
	}

	if got := engine.NewClearer(rec, rec).SweepAndClear(g); got != 3 {
		t.Fatalf("cleared = %d, expected 3", got)
	}
	if got := g.Count(engine.MoveableBlock); got != 0 {
		t.Errorf("Count(MoveableBlock) = %d, expected 0", got)
	}
	if got := rec.count(engine.EffectBlockDestroyed); got != 1 {
		t.Errorf("BlockDestroyed effects = %d, expected 1 per sweep", got)
	}
}

func TestSweepAndClearNilCollaborators(t *testing.T) {
	g := newGrid(t, "PT")
	//nolint:errcheck // in bounds
	g.Set(0, 1, engine.MoveableBlock)

	if got := engine.NewClearer(nil, nil).SweepAndClear(g); got != 1 {
		t.Errorf("cleared = %d, expected 1", got)
	}
}

func TestEffectsFanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	fx := engine.Effects{a, nil, b}

	fx.PlayEffect(engine.EffectLevelUp)

	if a.count(engine.EffectLevelUp) != 1 || b.count(engine.EffectLevelUp) != 1 {
		t.Errorf("fan-out missed a player: a=%v b=%v", a.effects, b.effects)
	}
}
