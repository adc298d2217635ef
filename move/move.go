package move

import (
	"fmt"

	"github.com/beesgame/bees/board"
)

// Move is a request to shift the tile on From one step to To. Side is
// the side whose turn it was when the move was queued, not the side on
// turn when it runs.
type Move struct {
	From board.Location
	To   board.Location
	Side board.Side
}

// NewMove decodes both codes. Codes with a malformed column panic, as
// board.DecodeLocation does.
func NewMove(from, to string, side board.Side) *Move {
	return &Move{
		From: board.DecodeLocation(from),
		To:   board.DecodeLocation(to),
		Side: side,
	}
}

// Valid reports whether both ends are on the board.
func (m *Move) Valid() bool {
	return m.From.Valid() && m.To.Valid()
}

// ShortDescription is the form used in logs and the shell: "a1-b2".
func (m *Move) ShortDescription() string {
	return fmt.Sprintf("%v-%v", m.From.Code, m.To.Code)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<move %v side: %v>", m.ShortDescription(), m.Side)
}
