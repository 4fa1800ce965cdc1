package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestReset(t *testing.T) {
	is := is.New(t)
	b := NewBoard()

	full, open, invalid := 0, 0, 0
	for y := int8(0); y < Dim; y++ {
		for x := int8(0); x < Dim; x++ {
			switch b.Get(Coord{X: x, Y: y}) {
			case Full:
				full++
			case Open:
				open++
			case Invalid:
				invalid++
			}
		}
	}
	is.Equal(full, 32)
	is.Equal(open, 1)
	is.Equal(invalid, 16)
	is.Equal(b.Get(Coord{X: CenterCol, Y: CenterRow}), Open)
	is.Equal(b.FullCount(), 32)
	is.Equal(b.OpenCount(), 1)
}

func TestCornersInvalid(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	for y := int8(0); y < Dim; y++ {
		for x := int8(0); x < Dim; x++ {
			wantInvalid := (x < 2 || x > 4) && (y < 2 || y > 4)
			gotInvalid := b.Get(Coord{X: x, Y: y}) == Invalid
			if wantInvalid != gotInvalid {
				t.Errorf("cell (%d, %d): invalid = %v, want %v", x, y, gotInvalid, wantInvalid)
			}
		}
	}
	is.Equal(b.Won(), false)
}

func TestResetIdempotent(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	b.Set(Coord{X: 3, Y: 1}, Open)
	b.Set(Coord{X: 3, Y: 2}, Open)
	b.Set(Coord{X: 3, Y: 3}, Full)
	b.Reset()
	is.True(b.Equals(NewBoard()))
}

func TestWon(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	// Empty everything, then put one marble in the center.
	for y := int8(0); y < Dim; y++ {
		for x := int8(0); x < Dim; x++ {
			if b.Get(Coord{X: x, Y: y}) == Full {
				b.Set(Coord{X: x, Y: y}, Open)
			}
		}
	}
	is.Equal(b.Won(), false)
	b.Set(Coord{X: CenterCol, Y: CenterRow}, Full)
	is.True(b.Won())
	// A second marble anywhere spoils it.
	b.Set(Coord{X: 0, Y: 3}, Full)
	is.Equal(b.Won(), false)
}

func TestFingerprintPathIndependent(t *testing.T) {
	is := is.New(t)
	// Reach the same configuration through two different orders of cell
	// mutations; fingerprints must coincide.
	a := NewBoard()
	a.Set(Coord{X: 3, Y: 1}, Open)
	a.Set(Coord{X: 3, Y: 2}, Open)
	a.Set(Coord{X: 3, Y: 3}, Full)

	b := NewBoard()
	b.Set(Coord{X: 3, Y: 3}, Full)
	b.Set(Coord{X: 3, Y: 2}, Open)
	b.Set(Coord{X: 3, Y: 1}, Open)

	is.True(a.Equals(b))
	is.Equal(a.Fingerprint(), b.Fingerprint())

	b.Set(Coord{X: 1, Y: 3}, Open)
	is.True(a.Fingerprint() != b.Fingerprint())
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	c := b.Copy()
	c.Set(Coord{X: 3, Y: 1}, Open)
	is.Equal(b.Get(Coord{X: 3, Y: 1}), Full)
	is.Equal(c.Get(Coord{X: 3, Y: 1}), Open)

	b.CopyFrom(c)
	is.True(b.Equals(c))
}

func TestSetFromPlaintext(t *testing.T) {
	is := is.New(t)
	rows := []string{
		"##...##",
		"##...##",
		".......",
		"...o...",
		".......",
		"##...##",
		"##...##",
	}
	b := &Board{}
	err := b.SetFromPlaintext(rows)
	is.NoErr(err)
	is.True(b.Equals(NewBoard()))
}

func TestSetFromPlaintextErrors(t *testing.T) {
	b := &Board{}
	if err := b.SetFromPlaintext([]string{"##...##"}); err == nil {
		t.Error("expected error for short board text")
	}
	// Marble in a corner breaks the cross shape.
	rows := []string{
		".#...##",
		"##...##",
		".......",
		"...o...",
		".......",
		"##...##",
		"##...##",
	}
	if err := b.SetFromPlaintext(rows); err == nil {
		t.Error("expected error for marble outside the cross")
	}
}
