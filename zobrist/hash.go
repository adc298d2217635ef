package zobrist

import (
	"lukechampine.com/frand"

	"github.com/beesgame/bees/board"
)

const bignum = 1<<63 - 2

// NumTokens is the number of distinct tile tokens: eight kinds for each
// of the two owners.
const NumTokens = 16

// generate a zobrist hash for a bees position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	posTable  [board.Dim * board.Dim][NumTokens]uint64
	turnTable [3]uint64
}

func (z *Zobrist) Initialize() {
	for i := 0; i < board.Dim*board.Dim; i++ {
		for j := 0; j < NumTokens; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
	for i := range z.turnTable {
		z.turnTable[i] = frand.Uint64n(bignum) + 1
	}
}

func tokenIndex(t board.Tile) int {
	idx := int(t.Kind)
	if t.Owner == board.Orange {
		idx += NumTokens / 2
	}
	return idx
}

// turnIndex maps anything that is not a real side onto Nil's slot.
func turnIndex(s board.Side) int {
	if !s.Valid() {
		return int(board.Nil)
	}
	return int(s)
}

func squareIndex(loc board.Location) int {
	return loc.Row*board.Dim + loc.Col
}

// Hash computes the key of a position from scratch.
func (z *Zobrist) Hash(b *board.Board, turn board.Side) uint64 {
	key := uint64(0)
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			loc := board.NewLocation(row, col)
			t := b.TileAt(loc)
			if t == nil {
				continue
			}
			key ^= z.posTable[squareIndex(loc)][tokenIndex(*t)]
		}
	}
	key ^= z.turnTable[turnIndex(turn)]
	return key
}

// Toggle adds t at loc to the key, or removes it if it is already there.
func (z *Zobrist) Toggle(key uint64, loc board.Location, t board.Tile) uint64 {
	return key ^ z.posTable[squareIndex(loc)][tokenIndex(t)]
}

// Turn swaps the side-to-move component of the key.
func (z *Zobrist) Turn(key uint64, from, to board.Side) uint64 {
	return key ^ z.turnTable[turnIndex(from)] ^ z.turnTable[turnIndex(to)]
}

// AddMove updates key for moved going from one square to another,
// removing captured (if any) from the destination. It does not touch
// the side to move.
func (z *Zobrist) AddMove(key uint64, from, to board.Location,
	moved board.Tile, captured *board.Tile) uint64 {

	if squareIndex(from) == squareIndex(to) {
		return key
	}
	key = z.Toggle(key, from, moved)
	if captured != nil {
		key = z.Toggle(key, to, *captured)
	}
	return z.Toggle(key, to, moved)
}
