package engine

// Evaluation order within one chain. The first cell checked may hold
// another moveable block (which is then pushed along), the second must be
// empty, so chains never exceed two blocks.
const (
	firstCheck  = 1
	secondCheck = 2
)

// Resolver validates and executes player moves and block pushes/pulls, and
// keeps the count of satisfied targets.
//
// A Resolver is not safe for concurrent use; the session calls it at most
// once per tick.
type Resolver struct {
	grid *Grid
	sink PresentationSink

	pullMode bool
	checks   int // cells evaluated in the current chain

	satisfied int
	required  int
}

// NewResolver creates a resolver over grid. required is the number of
// satisfied targets that triggers a clear.
func NewResolver(grid *Grid, required int, sink PresentationSink) *Resolver {
	if sink == nil {
		sink = NopSink{}
	}
	return &Resolver{
		grid:     grid,
		sink:     sink,
		required: required,
	}
}

// Grid returns the grid the resolver operates on.
func (r *Resolver) Grid() *Grid {
	return r.grid
}

// SetPullMode enables or disables pulling the block behind the player.
func (r *Resolver) SetPullMode(on bool) {
	r.pullMode = on
}

// PullMode reports whether pull mode is active.
func (r *Resolver) PullMode() bool {
	return r.pullMode
}

// TargetSatisfied returns the running count of blocks placed on targets
// since the last clear.
func (r *Resolver) TargetSatisfied() int {
	return r.satisfied
}

// TargetRequired returns the count that triggers a clear.
func (r *Resolver) TargetRequired() int {
	return r.required
}

// Resync recounts satisfied targets from the grid.
func (r *Resolver) Resync() {
	r.satisfied = r.grid.SatisfiedTargets()
}

// ConsumeSatisfaction reports whether enough targets are satisfied and, if
// so, resets the count to zero. It fires once per threshold crossing.
func (r *Resolver) ConsumeSatisfaction() bool {
	if r.required <= 0 || r.satisfied < r.required {
		return false
	}
	r.satisfied = 0
	return true
}

// TryMovePlayer moves the player from (fromRow, fromCol) to the adjacent
// cell (toRow, toCol). A moveable block in the way is pushed, together with
// at most one block behind it. With pull mode on, a moveable block directly
// behind the player follows into the vacated cell.
// Returns whether the player moved.
func (r *Resolver) TryMovePlayer(fromRow, fromCol, toRow, toCol int) bool {
	g := r.grid
	if !g.InBounds(fromRow, fromCol) || !g.InBounds(toRow, toCol) {
		return false
	}
	from, to := At(fromRow, fromCol), At(toRow, toCol)
	if g.at(from) != Player {
		return false
	}
	dr, dc := toRow-fromRow, toCol-fromCol

	switch g.at(to) {
	case MoveableBlock:
		if !r.TryPushChain(toRow, toCol, toRow+dr, toCol+dc) {
			return false
		}
	case Empty, TargetMarker:
		// Free to walk in
	default:
		return false
	}

	r.move(from, to)

	if r.pullMode {
		behind := from.Add(-dr, -dc)
		if g.InBounds(behind.Row, behind.Col) && g.at(behind) == MoveableBlock {
			r.TryPushChain(behind.Row, behind.Col, fromRow, fromCol)
		}
	}
	return true
}

// TryPushChain moves the moveable block at (row, col) into (nextRow,
// nextCol). If that cell holds another moveable block, it is moved one
// further step in the same direction first. Either both blocks move or
// neither does.
// Returns whether the chain moved.
func (r *Resolver) TryPushChain(row, col, nextRow, nextCol int) bool {
	g := r.grid
	dr, dc := nextRow-row, nextCol-col
	nextNextRow, nextNextCol := nextRow+dr, nextCol+dc

	if !g.InBounds(row, col) || !g.InBounds(nextRow, nextCol) || !g.InBounds(nextNextRow, nextNextCol) {
		return false
	}
	origin, next, nextNext := At(row, col), At(nextRow, nextCol), At(nextNextRow, nextNextCol)
	if g.at(origin) != MoveableBlock {
		return false
	}

	r.checks = 0
	canMove := r.canReceive(next)
	chained := false
	if g.at(next) == MoveableBlock {
		chained = r.canReceive(nextNext)
		if !chained {
			canMove = false
		}
	}
	r.checks = 0

	if !canMove {
		return false
	}

	// Furthest block first so the nearer one never overwrites it.
	if chained {
		r.moveBlock(next, nextNext)
	}
	r.moveBlock(origin, next)
	return true
}

// canReceive evaluates one destination cell of a chain. It advances the
// evaluation counter, which decides whether an occupying block may be
// pushed along.
func (r *Resolver) canReceive(c Coord) bool {
	r.checks++
	kind := r.grid.at(c)

	// A free target always accepts a block.
	if r.grid.IsTarget(c.Row, c.Col) && (kind == Empty || kind == TargetMarker) {
		return true
	}

	switch r.checks {
	case firstCheck:
		return kind == Empty || kind == MoveableBlock
	case secondCheck:
		return kind == Empty
	default:
		return false
	}
}

// moveBlock moves one block and updates the satisfied count for the target
// it leaves and the target it lands on.
func (r *Resolver) moveBlock(from, to Coord) {
	if r.grid.IsTarget(from.Row, from.Col) && r.satisfied > 0 {
		r.satisfied--
	}
	if r.grid.IsTarget(to.Row, to.Col) {
		r.satisfied++
	}
	r.move(from, to)
}

func (r *Resolver) move(from, to Coord) {
	//nolint:errcheck // both cells were bounds-checked by the caller
	r.grid.Move(from, to)
	r.sink.MoveVisual(from.Row, from.Col, to.Row, to.Col)
}
