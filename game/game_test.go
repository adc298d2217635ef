package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/beesgame/bees/board"
)

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.Equal(g.Turn(), board.Nil)
	is.Equal(len(g.Queue()), 0)
	is.True(g.Board().IsEmpty())
	is.Equal(g.ToFEN(), "8/8/8/8/8/8/8/8")
	is.Equal(g.QueuePolicy(), QueuePrune)
}

func TestAddTile(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.NoErr(g.AddTile("g", "a1"))
	is.NoErr(g.AddTile("G", "b2"))
	is.Equal(g.ToFEN(), "g7/1G6/8/8/8/8/8/8")
	// Overwrites.
	is.NoErr(g.AddTile("t", "a1"))
	is.Equal(g.ToFEN(), "t7/1G6/8/8/8/8/8/8")
}

func TestAddTileUnknownTokenDegrades(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.NoErr(g.AddTile("x", "c3"))
	is.Equal(*g.Board().TileAt(board.DecodeLocation("c3")),
		board.Tile{Kind: board.Bird, Owner: board.White})
	is.Equal(g.ToFEN(), "8/8/2r5/8/8/8/8/8")
}

func TestAddTileOffBoard(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	err := g.AddTile("g", "q1")
	is.True(errors.Is(err, board.ErrInvalidLocation))
	is.True(g.Board().IsEmpty())
}

func TestAddTileMalformedCodePanics(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	defer func() {
		is.True(recover() != nil)
	}()
	g.AddTile("g", "ab")
}

func TestAddTileAfterStart(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.NoErr(g.AddTile("g", "a1"))
	g.Start()
	before := g.ToFEN()
	err := g.AddTile("T", "d4")
	is.True(errors.Is(err, ErrSetupLocked))
	is.Equal(g.ToFEN(), before)
	is.Equal(g.Turn(), board.White)
}

func TestStartAndSetTurn(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	g.Start()
	is.Equal(g.Turn(), board.White)
	g.SetTurn(board.Orange)
	is.Equal(g.Turn(), board.Orange)
	g.SetTurn(board.Nil)
	is.Equal(g.Turn(), board.Nil)
}

func TestSetTurnIgnoresUnknownSide(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	g.Start()
	key := g.PositionKey()
	g.SetTurn(board.Side(3))
	is.Equal(g.Turn(), board.White)
	is.Equal(g.PositionKey(), key)
}

func TestNeighborsNilTurn(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.Equal(len(g.Neighbors(board.DecodeLocation("d4")).ToSlice()), 0)
}

func TestNewFromFEN(t *testing.T) {
	is := is.New(t)
	g, err := NewFromFEN("g7/1G6/8/8/8/8/8/8")
	is.NoErr(err)
	is.Equal(g.Turn(), board.Nil)
	is.Equal(g.ToFEN(), "g7/1G6/8/8/8/8/8/8")
	// Still in setup.
	is.NoErr(g.AddTile("m", "h8"))

	_, err = NewFromFEN("8/8")
	is.True(err != nil)
}

func TestDiagnosticsGoToLogger(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	g := NewGame(WithLogger(zerolog.New(&buf)))
	g.Start()
	g.AddTile("g", "a1")
	out := buf.String()
	is.True(strings.Contains(out, "bee_engine"))
	is.True(strings.Contains(out, "starting game"))
	is.True(strings.Contains(out, "cannot add tile to started game"))
	is.True(strings.Contains(out, "game.go"))
}

func TestPositionKeyTracksBoard(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.NoErr(g.AddTile("g", "a1"))
	is.NoErr(g.AddTile("G", "a2"))
	is.NoErr(g.AddTile("s", "a2"))
	is.Equal(g.PositionKey(), g.zobrist.Hash(g.Board(), g.Turn()))
	g.Start()
	is.Equal(g.PositionKey(), g.zobrist.Hash(g.Board(), g.Turn()))
	is.NoErr(g.AddMove("a1", "a2"))
	is.Equal(g.ProcMoves(), 1)
	is.Equal(g.PositionKey(), g.zobrist.Hash(g.Board(), g.Turn()))
}

func TestFingerprint(t *testing.T) {
	is := is.New(t)
	g1, err := NewFromFEN("g7/8/8/8/8/8/8/8")
	is.NoErr(err)
	g2 := NewGame()
	is.NoErr(g2.AddTile("g", "a1"))
	is.Equal(g1.Fingerprint(), g2.Fingerprint())
	g2.Start()
	is.True(g1.Fingerprint() != g2.Fingerprint())
}
