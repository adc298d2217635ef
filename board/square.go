package board

import "fmt"

// A Square is a single cell of the board. Code is the cell's location
// code; Tile is nil when the square is empty.
type Square struct {
	Code string
	Tile *Tile
}

func (s Square) String() string {
	if s.Tile == nil {
		return fmt.Sprintf("<(%v) empty>", s.Code)
	}
	return fmt.Sprintf("<(%v) %v>", s.Code, s.Tile.Token())
}

func (s *Square) IsEmpty() bool {
	return s.Tile == nil
}

func (s *Square) copyFrom(s2 *Square) {
	s.Code = s2.Code
	if s2.Tile == nil {
		s.Tile = nil
		return
	}
	t := *s2.Tile
	s.Tile = &t
}

func (s *Square) equals(s2 *Square) bool {
	if s.Code != s2.Code {
		return false
	}
	if s.Tile == nil || s2.Tile == nil {
		return s.Tile == nil && s2.Tile == nil
	}
	return *s.Tile == *s2.Tile
}

// DisplayString is the character shown for this square in a text
// rendering of the board.
func (s Square) DisplayString() string {
	if s.Tile == nil {
		return "."
	}
	return s.Tile.Token()
}
