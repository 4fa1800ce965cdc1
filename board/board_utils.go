package board

import (
	"fmt"
	"strings"
)

// Display characters for SetFromPlaintext / ToDisplayText. '#' marks a
// cell outside the cross, 'o' an empty hole, '.' a marble.
const (
	invalidChar = '#'
	openChar    = 'o'
	fullChar    = '.'
)

// ToDisplayText returns a console rendering of the board with coordinate
// rulers, suitable for the shell.
func (b *Board) ToDisplayText() string {
	var str string
	row := "   "
	for x := 0; x < Dim; x++ {
		row = row + fmt.Sprintf("%d", x) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	for y := int8(0); y < Dim; y++ {
		row := fmt.Sprintf("%2d|", y)
		for x := int8(0); x < Dim; x++ {
			switch b.cells[idx(x, y)] {
			case Invalid:
				row = row + string(invalidChar) + " "
			case Open:
				row = row + string(openChar) + " "
			case Full:
				row = row + string(fullChar) + " "
			}
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", Dim*2) + "\n"
	return "\n" + str
}

// SetFromPlaintext sets the board from seven 7-character rows, using the
// same characters ToDisplayText emits ('#', 'o', '.'). Rows may be
// separated by whitespace or given as separate strings. The cross shape
// is enforced: corner cells must be '#' and non-corner cells must not be.
func (b *Board) SetFromPlaintext(rows []string) error {
	joined := strings.Join(rows, "")
	joined = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, joined)
	if len(joined) != NumCells {
		return fmt.Errorf("board text must contain exactly %d cells, got %d",
			NumCells, len(joined))
	}
	var cells [NumCells]CellState
	for i, r := range joined {
		x, y := int8(i%Dim), int8(i/Dim)
		var st CellState
		switch r {
		case invalidChar:
			st = Invalid
		case openChar:
			st = Open
		case fullChar:
			st = Full
		default:
			return fmt.Errorf("unknown cell character %q at (%d, %d)", r, x, y)
		}
		if inCorner(x, y) != (st == Invalid) {
			return fmt.Errorf("cell (%d, %d) breaks the cross shape", x, y)
		}
		cells[i] = st
	}
	b.cells = cells
	return nil
}
