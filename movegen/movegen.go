// Package movegen generates legal peg-solitaire jumps for a board
// position. Generation order is fixed: cells are scanned row-major
// (top row first, left to right), and each Full cell tries the four
// directions in the order Up, Right, Down, Left. The order makes no
// optimality claim; it only needs to be deterministic and exhaustive
// so that searches are repeatable.
package movegen

import (
	"errors"

	"github.com/domino14/pegsol/board"
	"github.com/domino14/pegsol/move"
)

var (
	ErrOffBoard    = errors.New("move coordinates are off the board")
	ErrFromNotFull = errors.New("starting cell has no marble")
	ErrOverNotFull = errors.New("jumped cell has no marble")
	ErrToNotOpen   = errors.New("landing cell is not open")
)

// GenAll returns every currently legal move, in generation order. The
// returned slice is freshly allocated; callers own it.
func GenAll(b *board.Board) []move.Move {
	var plays []move.Move
	for y := int8(0); y < board.Dim; y++ {
		for x := int8(0); x < board.Dim; x++ {
			from := board.Coord{X: x, Y: y}
			if b.Get(from) != board.Full {
				continue
			}
			for _, dir := range board.Directions {
				m := move.New(from, dir)
				if Validate(b, m) == nil {
					plays = append(plays, m)
				}
			}
		}
	}
	return plays
}

// Validate checks the full legality of a move against the board: all
// three coordinates in bounds (the jumped cell is bounds-checked
// explicitly, not assumed), marble at From, marble at Over, hole at To.
func Validate(b *board.Board, m move.Move) error {
	if !m.From.InBounds() || !m.Over.InBounds() || !m.To.InBounds() {
		return ErrOffBoard
	}
	if b.Get(m.From) != board.Full {
		return ErrFromNotFull
	}
	if b.Get(m.Over) != board.Full {
		return ErrOverNotFull
	}
	if b.Get(m.To) != board.Open {
		return ErrToNotOpen
	}
	return nil
}

// Apply plays the move on the board without validating it; the caller
// must have validated. The moving and jumped marbles come off, the
// landing cell fills.
func Apply(b *board.Board, m move.Move) {
	b.Set(m.From, board.Open)
	b.Set(m.Over, board.Open)
	b.Set(m.To, board.Full)
}

// Unapply reverses a previously applied move, putting the moving and
// jumped marbles back. The caller must pass the move that was actually
// applied last.
func Unapply(b *board.Board, m move.Move) {
	b.Set(m.From, board.Full)
	b.Set(m.Over, board.Full)
	b.Set(m.To, board.Open)
}
