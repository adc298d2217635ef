// Package board holds the 8x8 grid, the text codecs for locations and
// tiles, the adjacency resolver and the FEN-like serializer.
package board

import (
	"fmt"
	"strings"
)

// A Board is the grid of squares. It owns every square; nothing outside
// gets a pointer into it except through SquareAt.
type Board struct {
	squares [Dim][Dim]Square
}

// NewBoard creates an empty board with every square's code filled in.
func NewBoard() *Board {
	b := &Board{}
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			b.squares[i][j].Code = LocationCode(i, j)
		}
	}
	return b
}

// SquareAt returns the square at loc. loc must be valid.
func (b *Board) SquareAt(loc Location) *Square {
	return &b.squares[loc.Row][loc.Col]
}

// TileAt returns the tile at loc, or nil if the square is empty.
func (b *Board) TileAt(loc Location) *Tile {
	return b.squares[loc.Row][loc.Col].Tile
}

// SetTile places t at loc, overwriting whatever was there.
func (b *Board) SetTile(loc Location, t Tile) {
	b.squares[loc.Row][loc.Col].Tile = &t
}

func (b *Board) ClearTile(loc Location) {
	b.squares[loc.Row][loc.Col].Tile = nil
}

func (b *Board) IsEmptyAt(loc Location) bool {
	return b.squares[loc.Row][loc.Col].IsEmpty()
}

// Clear removes every tile.
func (b *Board) Clear() {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			b.squares[i][j].Tile = nil
		}
	}
}

// IsEmpty returns true if no square holds a tile.
func (b *Board) IsEmpty() bool {
	return b.NumTiles() == 0
}

func (b *Board) NumTiles() int {
	n := 0
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if b.squares[i][j].Tile != nil {
				n++
			}
		}
	}
	return n
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := &Board{}
	c.CopyFrom(b)
	return c
}

// CopyFrom copies the squares of b2 into b.
func (b *Board) CopyFrom(b2 *Board) {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			b.squares[i][j].copyFrom(&b2.squares[i][j])
		}
	}
}

// Equals compares every square of two boards.
func (b *Board) Equals(b2 *Board) bool {
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			if !b.squares[i][j].equals(&b2.squares[i][j]) {
				return false
			}
		}
	}
	return true
}

// ToDisplayText renders the board with row letters down the side and
// column numbers across the top.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for j := 0; j < Dim; j++ {
		sb.WriteString(fmt.Sprintf("%d ", j+1))
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	for i := 0; i < Dim; i++ {
		sb.WriteString(fmt.Sprintf("%s |", rowLetters[i]))
		for j := 0; j < Dim; j++ {
			sb.WriteString(b.squares[i][j].DisplayString() + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return "\n" + sb.String()
}
