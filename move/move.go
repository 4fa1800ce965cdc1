package move

import (
	"fmt"

	"github.com/domino14/pegsol/board"
)

// A Move is a single jump: the marble at From leaps over the marble at
// Over and lands at To. It is a pure descriptor; it does not validate
// itself and carries no behavior beyond display.
type Move struct {
	From board.Coord
	Over board.Coord
	To   board.Coord
	Dir  board.Direction
}

// New builds a move from its starting cell and direction, deriving the
// jumped and landing cells. It does not check legality; the derived
// coordinates may be out of bounds.
func New(from board.Coord, dir board.Direction) Move {
	return Move{
		From: from,
		Over: from.Shift(dir, 1),
		To:   from.Shift(dir, 2),
		Dir:  dir,
	}
}

// String provides a string just for debugging purposes.
func (m Move) String() string {
	return fmt.Sprintf("<move from: %v over: %v to: %v dir: %v>",
		m.From, m.Over, m.To, m.Dir)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m Move) ShortDescription() string {
	return fmt.Sprintf("(%d, %d) direction: %v", m.From.X, m.From.Y, m.Dir)
}
