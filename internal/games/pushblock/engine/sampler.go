package engine

import "math/rand"

// Sampler hands out random empty, non-target cells for spawning blocks.
// Candidates are drawn without replacement until the next Refresh.
type Sampler struct {
	rng        *rand.Rand
	candidates []Coord
}

// NewSampler creates a sampler drawing from rng.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Refresh rebuilds the candidate list from the grid's current occupancy.
// Every in-bounds cell is scanned.
func (s *Sampler) Refresh(g *Grid) {
	s.candidates = s.candidates[:0]
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.at(At(r, c)) == Empty && !g.IsTarget(r, c) {
				s.candidates = append(s.candidates, At(r, c))
			}
		}
	}
}

// Take removes and returns one candidate chosen uniformly at random.
func (s *Sampler) Take() (Coord, error) {
	if len(s.candidates) == 0 {
		return Coord{}, ErrNoCandidatesLeft
	}
	i := s.rng.Intn(len(s.candidates))
	picked := s.candidates[i]

	// Swap-remove; order of the remaining candidates does not matter.
	last := len(s.candidates) - 1
	s.candidates[i] = s.candidates[last]
	s.candidates = s.candidates[:last]
	return picked, nil
}

// Remaining returns the number of candidates left.
func (s *Sampler) Remaining() int {
	return len(s.candidates)
}
