package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/pegsol/board"
	"github.com/domino14/pegsol/move"
)

func TestGenAllInitialPosition(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	plays := GenAll(b)
	// Only the four jumps into the center hole exist, and the scan order
	// (row-major, then Up/Right/Down/Left) fixes their sequence.
	want := []move.Move{
		move.New(board.Coord{X: 3, Y: 1}, board.Down),
		move.New(board.Coord{X: 1, Y: 3}, board.Right),
		move.New(board.Coord{X: 5, Y: 3}, board.Left),
		move.New(board.Coord{X: 3, Y: 5}, board.Up),
	}
	is.Equal(plays, want)
}

func TestGenAllDeterministic(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	Apply(b, move.New(board.Coord{X: 3, Y: 1}, board.Down))
	first := GenAll(b)
	second := GenAll(b)
	is.Equal(first, second)
}

func TestApplyChangesCounts(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	for _, m := range GenAll(b) {
		c := b.Copy()
		fullBefore, openBefore := c.FullCount(), c.OpenCount()
		Apply(c, m)
		is.Equal(c.FullCount(), fullBefore-1)
		is.Equal(c.OpenCount(), openBefore+1)
		is.Equal(c.Get(m.To), board.Full)
		is.Equal(c.Get(m.From), board.Open)
		is.Equal(c.Get(m.Over), board.Open)
	}
}

func TestApplyUnapplyRoundTrip(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	m := move.New(board.Coord{X: 1, Y: 3}, board.Right)
	Apply(b, m)
	Unapply(b, m)
	is.True(b.Equals(board.NewBoard()))
}

func TestValidate(t *testing.T) {
	b := board.NewBoard()

	cases := []struct {
		name string
		m    move.Move
		want error
	}{
		{"legal", move.New(board.Coord{X: 3, Y: 1}, board.Down), nil},
		{"lands off board", move.New(board.Coord{X: 3, Y: 1}, board.Up), ErrOffBoard},
		{"starts off board", move.New(board.Coord{X: -1, Y: 3}, board.Right), ErrOffBoard},
		{"landing cell occupied up", move.New(board.Coord{X: 3, Y: 2}, board.Up), ErrToNotOpen},
		{"landing cell occupied right", move.New(board.Coord{X: 2, Y: 2}, board.Right), ErrToNotOpen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Validate(b, tc.m); got != tc.want {
				t.Errorf("Validate(%v) = %v, want %v", tc.m, got, tc.want)
			}
		})
	}

	// From an empty starting cell.
	b.Set(board.Coord{X: 3, Y: 1}, board.Open)
	if got := Validate(b, move.New(board.Coord{X: 3, Y: 1}, board.Down)); got != ErrFromNotFull {
		t.Errorf("Validate from empty cell = %v, want %v", got, ErrFromNotFull)
	}
	// Jumped cell empty.
	b.Reset()
	b.Set(board.Coord{X: 3, Y: 2}, board.Open)
	if got := Validate(b, move.New(board.Coord{X: 3, Y: 1}, board.Down)); got != ErrOverNotFull {
		t.Errorf("Validate over empty cell = %v, want %v", got, ErrOverNotFull)
	}
}
