package board

import (
	"testing"

	"github.com/matryer/is"
)

func codes(locs []Location) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.Code
	}
	return out
}

func TestNeighborsCorner(t *testing.T) {
	is := is.New(t)
	a1 := DecodeLocation("a1")

	w := Neighbors(a1, White)
	is.Equal(w.Up, nil)
	is.Equal(w.Left, nil)
	is.Equal(w.Down.Code, "b1")
	is.Equal(w.Right.Code, "a2")
	is.Equal(w.DownDiagRight.Code, "b2")
	is.Equal(codes(w.ToSlice()), []string{"b1", "a2"})
	is.True(!w.Contains(DecodeLocation("b2")))
	is.Equal(w.Codes(), "b1 a2 b2")

	o := Neighbors(a1, Orange)
	is.Equal(o.Down, nil)
	is.Equal(o.Right, nil)
	is.Equal(o.Up.Code, "b1")
	is.Equal(o.Left.Code, "a2")
	is.Equal(o.UpDiagLeft.Code, "b2")
	is.Equal(codes(o.ToSlice()), []string{"b1", "a2", "b2"})

	h8 := DecodeLocation("h8")
	is.Equal(codes(Neighbors(h8, White).ToSlice()), []string{"g8", "h7", "g7"})
	// Orange's down-diag-right from h8 is g7.
	ho := Neighbors(h8, Orange)
	is.Equal(ho.DownDiagRight.Code, "g7")
	is.Equal(codes(ho.ToSlice()), []string{"g8", "h7"})
}

func TestNeighborsRowAxisOffsets(t *testing.T) {
	// Left and right are offsets of the row, applied to the column.
	is := is.New(t)
	d5 := DecodeLocation("d5")
	a := Neighbors(d5, White)
	is.Equal(codes(a.ToSlice()),
		[]string{"c5", "e5", "d5", "d3", "c3", "c5", "e3"})
	is.Equal(a.DownDiagRight.Code, "e5")
	// e5 is still reachable as down.
	is.True(a.Contains(DecodeLocation("e5")))
	is.True(a.Contains(d5))
	is.True(!a.Contains(DecodeLocation("d4")))
}

func TestNeighborsNilSide(t *testing.T) {
	is := is.New(t)
	a := Neighbors(DecodeLocation("c3"), Nil)
	is.Equal(len(a.ToSlice()), 0)
}

func TestNeighborsInvalidLocation(t *testing.T) {
	is := is.New(t)
	a := Neighbors(DecodeLocation("z1"), White)
	is.Equal(len(a.ToSlice()), 0)
}

func TestNeighborsStayOnBoard(t *testing.T) {
	is := is.New(t)
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			for _, side := range []Side{White, Orange} {
				for _, l := range Neighbors(NewLocation(row, col), side).ToSlice() {
					is.True(l.Valid())
					is.True(l.Row >= 0 && l.Row < Dim)
					is.True(l.Col >= 0 && l.Col < Dim)
					is.Equal(l.Code, LocationCode(l.Row, l.Col))
				}
			}
		}
	}
}
