package engine

import (
	"fmt"
	"strings"
)

// Grid holds the two stage layers: occupancy, mutated by every move, spawn
// and clear, and the target mask, captured once when the stage is built.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows    int
	cols    int
	cells   []CellKind
	targets []CellKind
	frozen  bool
	player  Coord
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		cells:   make([]CellKind, rows*cols),
		targets: make([]CellKind, rows*cols),
		player:  Coord{Row: -1, Col: -1},
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// InBounds reports whether (row, col) lies in [0,rows) x [0,cols).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the occupancy of a cell.
func (g *Grid) Get(row, col int) (CellKind, error) {
	if !g.InBounds(row, col) {
		return Empty, fmt.Errorf("get %v: %w", At(row, col), ErrOutOfBounds)
	}
	return g.cells[g.index(row, col)], nil
}

// Set writes the occupancy of a cell. Writing Player also moves the
// cached player position.
func (g *Grid) Set(row, col int, kind CellKind) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("set %v: %w", At(row, col), ErrOutOfBounds)
	}
	g.cells[g.index(row, col)] = kind
	if kind == Player {
		g.player = At(row, col)
	}
	return nil
}

// at reads a cell that the caller already bounds-checked.
func (g *Grid) at(c Coord) CellKind {
	return g.cells[g.index(c.Row, c.Col)]
}

// IsTarget reports whether the cell was a target marker when the stage was
// built. Out-of-bounds cells are never targets.
func (g *Grid) IsTarget(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.targets[g.index(row, col)] == TargetMarker
}

// TargetKind returns the raw target-mask value of a cell, i.e. the
// occupancy it had when the mask was frozen.
func (g *Grid) TargetKind(row, col int) (CellKind, error) {
	if !g.InBounds(row, col) {
		return Empty, fmt.Errorf("target %v: %w", At(row, col), ErrOutOfBounds)
	}
	return g.targets[g.index(row, col)], nil
}

// FreezeTargets deep-copies the occupancy layer into the target mask.
// It must run exactly once, right after the initial layout is imported.
func (g *Grid) FreezeTargets() error {
	if g.frozen {
		return ErrTargetsFrozen
	}
	copy(g.targets, g.cells)
	g.frozen = true
	return nil
}

// Frozen reports whether the target mask has been captured.
func (g *Grid) Frozen() bool {
	return g.frozen
}

// Player returns the cached player position, or (-1,-1) if the stage has
// no player.
func (g *Grid) Player() Coord {
	return g.player
}

// HasPlayer reports whether a player has been placed.
func (g *Grid) HasPlayer() bool {
	return g.InBounds(g.player.Row, g.player.Col)
}

// Move copies the content of from into to and empties from.
// Both cells must be in bounds.
func (g *Grid) Move(from, to Coord) error {
	if !g.InBounds(from.Row, from.Col) {
		return fmt.Errorf("move from %v: %w", from, ErrOutOfBounds)
	}
	if !g.InBounds(to.Row, to.Col) {
		return fmt.Errorf("move to %v: %w", to, ErrOutOfBounds)
	}
	kind := g.at(from)
	g.cells[g.index(to.Row, to.Col)] = kind
	g.cells[g.index(from.Row, from.Col)] = Empty
	if kind == Player {
		g.player = to
	}
	return nil
}

// AddStaticBlock extends the stage with an obstacle. It never adds targets.
func (g *Grid) AddStaticBlock(row, col int) error {
	return g.Set(row, col, StaticBlock)
}

// Count returns the number of cells holding the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// TargetCount returns the number of target cells in the mask.
func (g *Grid) TargetCount() int {
	n := 0
	for _, k := range g.targets {
		if k == TargetMarker {
			n++
		}
	}
	return n
}

// SatisfiedTargets returns the number of target cells currently covered by
// a moveable block.
func (g *Grid) SatisfiedTargets() int {
	n := 0
	for i, k := range g.cells {
		if k == MoveableBlock && g.targets[i] == TargetMarker {
			n++
		}
	}
	return n
}

// CheckInvariants verifies that the cached player position matches the
// occupancy layer and that there is at most one player.
func (g *Grid) CheckInvariants() error {
	players := g.Count(Player)
	if players > 1 {
		return fmt.Errorf("%d players on grid: %w", players, ErrInvariantViolation)
	}
	if players == 0 {
		if g.HasPlayer() {
			return fmt.Errorf("player cached at %v but missing from grid: %w", g.player, ErrInvariantViolation)
		}
		return nil
	}
	if !g.HasPlayer() || g.at(g.player) != Player {
		return fmt.Errorf("player cache %v disagrees with occupancy: %w", g.player, ErrInvariantViolation)
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellKind, len(g.cells))
	copy(cells, g.cells)
	targets := make([]CellKind, len(g.targets))
	copy(targets, g.targets)
	return &Grid{
		rows:    g.rows,
		cols:    g.cols,
		cells:   cells,
		targets: targets,
		frozen:  g.frozen,
		player:  g.player,
	}
}

// Equal returns true if two grids have the same dimensions and occupancy.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, k := range g.cells {
		if k != other.cells[i] {
			return false
		}
	}
	return true
}

// String dumps the occupancy layer, one row per line. Empty target cells
// are shown as 't' so the mask stays visible after the markers are walked over.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			k := g.cells[g.index(r, c)]
			if k == Empty && g.targets[g.index(r, c)] == TargetMarker {
				sb.WriteRune('t')
				continue
			}
			sb.WriteRune(k.Rune())
		}
	}
	return sb.String()
}
