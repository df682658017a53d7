// Package engine implements the Push Block stage simulation: the grid, move
// resolution with chained pushes and pulls, target clearing, block placement
// and score progression.
//
// The package has no terminal or storage dependencies. Presentation and sound
// are reached only through the PresentationSink and EffectPlayer interfaces.
package engine

import "fmt"

// CellKind is the content of a single grid cell.
// Values match the stage authoring constants (0..4).
type CellKind uint8

const (
	Empty CellKind = iota
	StaticBlock
	MoveableBlock
	Player
	TargetMarker
)

// String returns a human-readable name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case StaticBlock:
		return "StaticBlock"
	case MoveableBlock:
		return "MoveableBlock"
	case Player:
		return "Player"
	case TargetMarker:
		return "TargetMarker"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Rune returns the ASCII glyph used by stage files and grid dumps.
func (k CellKind) Rune() rune {
	switch k {
	case StaticBlock:
		return '#'
	case MoveableBlock:
		return 'B'
	case Player:
		return 'P'
	case TargetMarker:
		return 'T'
	default:
		return '.'
	}
}

// KindFromRune is the inverse of CellKind.Rune.
// Returns false for glyphs that are not part of the stage alphabet.
func KindFromRune(r rune) (CellKind, bool) {
	switch r {
	case '.', ' ':
		return Empty, true
	case '#':
		return StaticBlock, true
	case 'B', 'b':
		return MoveableBlock, true
	case 'P', 'p':
		return Player, true
	case 'T', 't':
		return TargetMarker, true
	default:
		return Empty, false
	}
}

// Coord is a grid position. Row grows downward, Col grows to the right.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Dir is one of the four move directions.
type Dir int

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (row, col) step for the direction.
func (d Dir) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// MoveRequest carries one move attempt from one cell to an adjacent one.
type MoveRequest struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// Request builds the move request for stepping from c in direction d.
func Request(c Coord, d Dir) MoveRequest {
	dr, dc := d.Delta()
	return MoveRequest{FromRow: c.Row, FromCol: c.Col, ToRow: c.Row + dr, ToCol: c.Col + dc}
}
