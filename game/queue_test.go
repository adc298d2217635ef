package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesgame/bees/board"
	"github.com/beesgame/bees/move"
)

func TestExecOneStepCapture(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.AddTile("g", "a1"))
	require.NoError(t, g.AddTile("G", "a2"))
	g.Start()
	require.NoError(t, g.AddMove("a1", "a2"))

	// a2 is "right" of a1 from White's seat.
	assert.Equal(t, 1, g.ProcMoves())
	assert.Equal(t, board.Orange, g.Turn())
	assert.Equal(t, "1g6/8/8/8/8/8/8/8", g.ToFEN())
}

func TestExecDownDiagRightRefused(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.AddTile("g", "a1"))
	require.NoError(t, g.AddTile("G", "b2"))
	g.Start()
	require.NoError(t, g.AddMove("a1", "b2"))

	// b2 is White's down-diag-right of a1, which is not a step.
	require.NotNil(t, g.Neighbors(board.DecodeLocation("a1")).DownDiagRight)
	assert.Equal(t, 0, g.ProcMoves())
	assert.Equal(t, board.White, g.Turn())
	assert.Equal(t, "g7/1G6/8/8/8/8/8/8", g.ToFEN())
	assert.Len(t, g.Pending(), 1)
}

func TestExecEmptySource(t *testing.T) {
	g := NewGame()
	g.Start()
	require.NoError(t, g.AddMove("c3", "c4"))
	assert.False(t, g.exec(move.NewMove("c3", "c4", board.White)))
	assert.Equal(t, 0, g.ProcMoves())
	assert.Equal(t, board.White, g.Turn())
	assert.Equal(t, "8/8/8/8/8/8/8/8", g.ToFEN())
}

func TestExecNotAdjacent(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.AddTile("h", "a1"))
	g.Start()
	before := g.ToFEN()
	assert.False(t, g.exec(move.NewMove("a1", "c1", board.White)))
	// Two columns over.
	assert.False(t, g.exec(move.NewMove("a1", "a3", board.White)))
	assert.Equal(t, before, g.ToFEN())
	assert.Equal(t, board.White, g.Turn())
}

func TestExecIgnoresQueuedSide(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.AddTile("G", "a1"))
	g.Start()
	// An Orange tile moved on White's turn, using White's orientation.
	assert.True(t, g.exec(move.NewMove("a1", "b1", board.Orange)))
	assert.Equal(t, board.Orange, g.Turn())
	assert.Equal(t, "8/G7/8/8/8/8/8/8", g.ToFEN())
}

func TestExecNilTurn(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.AddTile("g", "a1"))
	require.NoError(t, g.AddMove("a1", "b1"))
	assert.Equal(t, board.Nil, g.Queue()[0].Side)
	assert.Equal(t, 0, g.ProcMoves())
	assert.Equal(t, board.Nil, g.Turn())
	assert.Equal(t, "g7/8/8/8/8/8/8/8", g.ToFEN())
}

func TestMoveTaggedAtEnqueue(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.AddTile("g", "a1"))
	g.Start()
	require.NoError(t, g.AddMove("a1", "b1"))
	g.SetTurn(board.Orange)

	assert.Equal(t, 0, g.ProcMoves())
	assert.Equal(t, board.Orange, g.Turn())
	require.Len(t, g.Pending(), 1)
	assert.Equal(t, board.White, g.Pending()[0].Side)

	g.SetTurn(board.White)
	assert.Equal(t, 1, g.ProcMoves())
	assert.Equal(t, board.Orange, g.Turn())
	assert.Empty(t, g.Pending())
	assert.Len(t, g.Queue(), 1)
}

func TestProcRereadsTurn(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.AddTile("g", "a1"))
	require.NoError(t, g.AddTile("T", "h8"))
	g.Start()
	require.NoError(t, g.AddMove("a1", "b1"))
	g.SetTurn(board.Orange)
	// g8 is "down" from h8 for Orange.
	require.NoError(t, g.AddMove("h8", "g8"))
	g.SetTurn(board.White)

	assert.Equal(t, 2, g.ProcMoves())
	assert.Equal(t, board.White, g.Turn())
	assert.Equal(t, "8/g7/8/8/8/8/7T/8", g.ToFEN())
}

func TestProcSkipsEarlierMoveForOtherSide(t *testing.T) {
	g := NewGame()
	require.NoError(t, g.AddTile("g", "a1"))
	require.NoError(t, g.AddTile("T", "h8"))
	g.Start()
	g.SetTurn(board.Orange)
	require.NoError(t, g.AddMove("h8", "g8"))
	g.SetTurn(board.White)
	require.NoError(t, g.AddMove("a1", "b1"))

	// The Orange move comes first and is passed over before White moves.
	assert.Equal(t, 1, g.ProcMoves())
	assert.Equal(t, board.Orange, g.Turn())
	assert.Equal(t, 1, g.ProcMoves())
	assert.Equal(t, board.White, g.Turn())
	assert.Equal(t, "8/g7/8/8/8/8/7T/8", g.ToFEN())
}

func shuttle(t *testing.T, policy QueuePolicy) *Game {
	g := NewGame(WithQueuePolicy(policy))
	require.NoError(t, g.AddTile("g", "a1"))
	g.Start()
	require.NoError(t, g.AddMove("a1", "b1"))
	g.SetTurn(board.Orange)
	// From b1, a1 is "down" for Orange.
	require.NoError(t, g.AddMove("b1", "a1"))
	g.SetTurn(board.White)
	return g
}

func TestPrunePolicy(t *testing.T) {
	g := shuttle(t, QueuePrune)
	assert.Equal(t, 2, g.ProcMoves())
	assert.Equal(t, "g7/8/8/8/8/8/8/8", g.ToFEN())
	assert.Equal(t, 0, g.ProcMoves())
	assert.Equal(t, board.White, g.Turn())
}

func TestReplayPolicy(t *testing.T) {
	g := shuttle(t, QueueReplay)
	assert.Equal(t, 2, g.ProcMoves())
	assert.Equal(t, "g7/8/8/8/8/8/8/8", g.ToFEN())
	// The same two moves fire again.
	assert.Equal(t, 2, g.ProcMoves())
	assert.Equal(t, board.White, g.Turn())
	assert.Len(t, g.Pending(), 2)
}

func TestAddMoveOffBoard(t *testing.T) {
	g := NewGame()
	err := g.AddMove("z1", "a1")
	assert.True(t, errors.Is(err, board.ErrInvalidLocation))
	assert.Empty(t, g.Queue())
}

func TestParseQueuePolicy(t *testing.T) {
	p, err := ParseQueuePolicy("replay")
	require.NoError(t, err)
	assert.Equal(t, QueueReplay, p)
	_, err = ParseQueuePolicy("sometimes")
	assert.Error(t, err)
}
