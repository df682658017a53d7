package engine

// Clearer removes moveable blocks that sit on target cells.
type Clearer struct {
	sink    PresentationSink
	effects EffectPlayer
}

// NewClearer creates a clearer reporting removals to sink and the destroy
// effect to effects. Nil collaborators are replaced with no-ops.
func NewClearer(sink PresentationSink, effects EffectPlayer) *Clearer {
	if sink == nil {
		sink = NopSink{}
	}
	if effects == nil {
		effects = NopEffects{}
	}
	return &Clearer{sink: sink, effects: effects}
}

// SweepAndClear scans the whole grid once, empties every cell where a
// moveable block covers a target and returns how many were cleared.
// The destroy effect fires once per sweep, not once per block.
func (c *Clearer) SweepAndClear(g *Grid) int {
	cleared := 0
	for r := 0; r < g.Rows(); r++ {
		for col := 0; col < g.Cols(); col++ {
			if g.at(At(r, col)) != MoveableBlock || !g.IsTarget(r, col) {
				continue
			}
			g.cells[g.index(r, col)] = Empty
			c.sink.RemoveVisual(r, col)
			cleared++
		}
	}

	c.effects.PlayEffect(EffectBlockDestroyed)
	return cleared
}
