package board

import "fmt"

// Dim is the dimension of the board. The board is always square.
const Dim = 7

// NumCells is the total number of cells, playable or not.
const NumCells = Dim * Dim

// CenterRow and CenterCol locate the winning cell.
const (
	CenterCol = 3
	CenterRow = 3
)

// A CellState is the state of a single cell. Corner cells outside the
// cross shape are Invalid and never change state.
type CellState uint8

const (
	Invalid CellState = iota
	Open
	Full
)

func (c CellState) String() string {
	switch c {
	case Invalid:
		return "Invalid"
	case Open:
		return "Open"
	case Full:
		return "Full"
	}
	return "Unknown"
}

// A Coord is a cell position; X is the column (0 = left), Y is the row
// (0 = top).
type Coord struct {
	X int8
	Y int8
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// InBounds reports whether the coordinate lies on the 7x7 grid at all.
// It says nothing about whether the cell is part of the cross.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Dim && c.Y >= 0 && c.Y < Dim
}

// A Direction is one of the four jump directions.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions is the fixed generation order for candidate moves.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return "Unknown"
}

// Offsets returns the unit (dx, dy) step for the direction. The jumped
// cell is one step away, the landing cell two.
func (d Direction) Offsets() (int8, int8) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// Shift returns the coordinate n steps away in direction d. The result
// may be out of bounds; callers bounds-check with InBounds.
func (c Coord) Shift(d Direction, n int8) Coord {
	dx, dy := d.Offsets()
	return Coord{X: c.X + dx*n, Y: c.Y + dy*n}
}

// A Board is the 7x7 cross-shaped peg board. It is a value type; copying
// a Board copies all cell state, which is what the solver's snapshot and
// restore rely on.
type Board struct {
	cells [NumCells]CellState
}

// playableIdx lists the cell indices inside the cross, in row-major
// order. There are 33 of them, so a full board state packs into a
// 33-bit mask.
var playableIdx []int

func init() {
	for y := int8(0); y < Dim; y++ {
		for x := int8(0); x < Dim; x++ {
			if !inCorner(x, y) {
				playableIdx = append(playableIdx, idx(x, y))
			}
		}
	}
}

func idx(x, y int8) int {
	return int(y)*Dim + int(x)
}

// inCorner reports whether (x, y) falls in one of the four 2x2 corner
// blocks outside the cross.
func inCorner(x, y int8) bool {
	return (x < 2 || x > 4) && (y < 2 || y > 4)
}

// NewBoard creates a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset puts the board in the standard starting position: corners
// Invalid, center Open, every other cell Full.
func (b *Board) Reset() {
	for y := int8(0); y < Dim; y++ {
		for x := int8(0); x < Dim; x++ {
			switch {
			case inCorner(x, y):
				b.cells[idx(x, y)] = Invalid
			case x == CenterCol && y == CenterRow:
				b.cells[idx(x, y)] = Open
			default:
				b.cells[idx(x, y)] = Full
			}
		}
	}
}

// Get returns the state of the cell at c. c must be in bounds.
func (b *Board) Get(c Coord) CellState {
	return b.cells[idx(c.X, c.Y)]
}

// Set overwrites the state of the cell at c. c must be in bounds.
func (b *Board) Set(c Coord, s CellState) {
	b.cells[idx(c.X, c.Y)] = s
}

// FullCount returns the number of marbles on the board.
func (b *Board) FullCount() int {
	n := 0
	for _, i := range playableIdx {
		if b.cells[i] == Full {
			n++
		}
	}
	return n
}

// OpenCount returns the number of empty playable cells.
func (b *Board) OpenCount() int {
	n := 0
	for _, i := range playableIdx {
		if b.cells[i] == Open {
			n++
		}
	}
	return n
}

// Won reports whether the board is in the winning position: a single
// marble, sitting in the center.
func (b *Board) Won() bool {
	return b.FullCount() == 1 && b.cells[idx(CenterCol, CenterRow)] == Full
}

// Fingerprint packs the 33 playable cells into a bitmask, one bit per
// cell, set when the cell is Full. Invalid cells never change, so the
// mask is a total, exact encoding of the board: two boards have the
// same fingerprint iff they have identical cell contents, regardless
// of the move sequence that produced them.
func (b *Board) Fingerprint() uint64 {
	var fp uint64
	for i, ci := range playableIdx {
		if b.cells[ci] == Full {
			fp |= 1 << uint(i)
		}
	}
	return fp
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	b2 := &Board{}
	b2.cells = b.cells
	return b2
}

// CopyFrom restores the board's cells from another board.
func (b *Board) CopyFrom(other *Board) {
	b.cells = other.cells
}

// Equals reports whether both boards have identical cell contents.
func (b *Board) Equals(other *Board) bool {
	return b.cells == other.cells
}
