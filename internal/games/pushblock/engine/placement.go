package engine

import "fmt"

// Place draws up to n cells from the sampler and fills them with kind,
// announcing each new block to the sink. It stops early with
// ErrNoCandidatesLeft when the sampler runs dry and returns how many blocks
// were placed.
func Place(g *Grid, s *Sampler, kind CellKind, n int, sink PresentationSink) (int, error) {
	if sink == nil {
		sink = NopSink{}
	}
	for i := 0; i < n; i++ {
		c, err := s.Take()
		if err != nil {
			return i, err
		}
		if err := g.Set(c.Row, c.Col, kind); err != nil {
			return i, fmt.Errorf("place %s: %w", kind, err)
		}
		sink.SpawnVisual(kind, c.Row, c.Col)
	}
	return n, nil
}
