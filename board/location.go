package board

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// Dim is the width and height of the board.
	Dim = 8
	// InvalidRow is the row the codec assigns to a code whose letter is
	// not in the row table. It never leaves this package: decoded
	// locations carrying it report Valid() == false.
	InvalidRow = 100
)

var (
	ErrInvalidLocation   = errors.New("location is off the board")
	ErrMalformedLocation = errors.New("malformed location code")
)

var rowLetters = [Dim]string{"a", "b", "c", "d", "e", "f", "g", "h"}

// A Location is a square on the board. Code always agrees with Row and
// Col for a valid location; for an invalid one it holds whatever the
// caller passed in.
type Location struct {
	Row   int
	Col   int
	Code  string
	valid bool
}

// NewLocation builds a location from zero-based grid indices.
func NewLocation(row, col int) Location {
	return Location{
		Row:   row,
		Col:   col,
		Code:  LocationCode(row, col),
		valid: onBoard(row, col),
	}
}

func (l Location) Valid() bool {
	return l.valid
}

func (l Location) String() string {
	return l.Code
}

// Equal compares grid position and code.
func (l Location) Equal(o Location) bool {
	return l.Row == o.Row && l.Col == o.Col && l.Code == o.Code && l.valid == o.valid
}

func onBoard(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// LocationCode turns a zero-based row and column into a code such as
// "a1". An out-of-range row has no letter, so the caller must not pass
// one in.
func LocationCode(row, col int) string {
	rowName := ""
	if row >= 0 && row < Dim {
		rowName = rowLetters[row]
	}
	return rowName + strconv.Itoa(col+1)
}

// DecodeLocation is the inverse of LocationCode. A letter outside a..h
// or a column past the edge produces an invalid location. A code whose
// column part is not a positive integer written in plain digits (no sign,
// no leading zero) is a broken caller and panics.
func DecodeLocation(code string) Location {
	loc, err := ParseLocation(code)
	if errors.Is(err, ErrMalformedLocation) {
		panic(err.Error())
	}
	return loc
}

// ParseLocation decodes a code without panicking. The returned location
// is usable only when err is nil.
func ParseLocation(code string) (Location, error) {
	runes := []rune(code)
	if len(runes) < 2 {
		return Location{Row: InvalidRow, Code: code},
			fmt.Errorf("%w: %q", ErrMalformedLocation, code)
	}
	row := InvalidRow
	for i, l := range rowLetters {
		if string(runes[0]) == l {
			row = i
			break
		}
	}
	digits := string(runes[1:])
	if !isColumnNumber(digits) {
		return Location{Row: row, Code: code},
			fmt.Errorf("%w: %q", ErrMalformedLocation, code)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return Location{Row: row, Code: code},
			fmt.Errorf("%w: %q", ErrMalformedLocation, code)
	}
	loc := Location{Row: row, Col: n - 1, Code: code}
	if !onBoard(loc.Row, loc.Col) {
		return loc, fmt.Errorf("%w: %q", ErrInvalidLocation, code)
	}
	loc.valid = true
	return loc, nil
}

// isColumnNumber reports whether s is written the way LocationCode writes
// a column: plain ASCII digits without a sign or a leading zero.
func isColumnNumber(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
