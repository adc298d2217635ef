// Package fen reads the slash-delimited, run-length encoded board
// strings that board.Board.ToFEN writes.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beesgame/bees/board"
)

var (
	ErrRowCount   = errors.New("fen must have 8 rows")
	ErrRowLength  = errors.New("fen row does not cover 8 squares")
	ErrBadToken   = errors.New("unknown tile token in fen")
	ErrEmptyField = errors.New("empty fen")
)

// Parse returns a board holding the tiles described by fenstr. Anything
// after the first space (a side-to-move field, say) is ignored.
func Parse(fenstr string) (*board.Board, error) {
	fenstr = strings.TrimSpace(fenstr)
	if fenstr == "" {
		return nil, ErrEmptyField
	}
	fields := strings.SplitN(fenstr, " ", 2)
	rows := strings.Split(fields[0], "/")
	if len(rows) != board.Dim {
		return nil, fmt.Errorf("%w: got %d", ErrRowCount, len(rows))
	}
	b := board.NewBoard()
	for i, row := range rows {
		tiles, err := rowToTiles(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		for j, t := range tiles {
			if t != nil {
				b.SetTile(board.NewLocation(i, j), *t)
			}
		}
	}
	return b, nil
}

// SideToMove reads the optional second field of a FEN string: "w" or
// "o". A missing field means Nil.
func SideToMove(fenstr string) (board.Side, error) {
	fields := strings.Fields(fenstr)
	if len(fields) < 2 {
		return board.Nil, nil
	}
	side, ok := board.SideFromString(fields[1])
	if !ok {
		return board.Nil, fmt.Errorf("bad side to move %q", fields[1])
	}
	return side, nil
}

func rowToTiles(row string) ([]*board.Tile, error) {
	tiles := []*board.Tile{}
	lastN := ""
	flushEmpty := func() error {
		if lastN == "" {
			return nil
		}
		if lastN[0] == '0' {
			return fmt.Errorf("%w: empty run %q in %q", ErrRowLength, lastN, row)
		}
		n, err := strconv.Atoi(lastN)
		if err != nil {
			return err
		}
		for idx := 0; idx < n; idx++ {
			tiles = append(tiles, nil)
		}
		lastN = ""
		return nil
	}
	for _, rn := range row {
		if rn >= '0' && rn <= '9' {
			lastN += string(rn)
			continue
		}
		if err := flushEmpty(); err != nil {
			return nil, err
		}
		t, ok := board.DecodeTile(string(rn))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, string(rn))
		}
		tiles = append(tiles, &t)
	}
	if err := flushEmpty(); err != nil {
		return nil, err
	}
	if len(tiles) != board.Dim {
		return nil, fmt.Errorf("%w: %q", ErrRowLength, row)
	}
	return tiles, nil
}
