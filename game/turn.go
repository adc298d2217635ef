package game

import (
	"github.com/beesgame/bees/board"
	"github.com/beesgame/bees/move"
)

// Start begins play with White on turn. Nothing about the board is
// checked.
func (g *Game) Start() {
	g.key = g.zobrist.Turn(g.key, g.turn, board.White)
	g.turn = board.White
	g.log.Info().Caller().Msg("starting game")
}

// SetTurn puts side on turn directly, bypassing the normal flip. A value
// that is not a side is logged and ignored.
func (g *Game) SetTurn(side board.Side) {
	if !side.Valid() {
		g.log.Warn().Caller().Uint8("side", uint8(side)).Msg("bad side")
		return
	}
	g.key = g.zobrist.Turn(g.key, g.turn, side)
	g.turn = side
	g.log.Info().Caller().Str("turn", side.String()).Msg("change turn")
}

// Neighbors is the neighborhood of loc as seen by the side on turn.
func (g *Game) Neighbors(loc board.Location) board.Around {
	if g.turn == board.Nil {
		g.log.Warn().Caller().Str("code", loc.Code).Msg("bad nil color")
	}
	return board.Neighbors(loc, g.turn)
}

// exec runs one move. The source square must hold a tile and the
// destination must be one step away from the source for the side on
// turn. The side the move was queued for, the destination's contents
// and the kind of tile are not checked.
func (g *Game) exec(m *move.Move) bool {
	if !m.Valid() {
		g.log.Warn().Caller().Str("move", m.ShortDescription()).Msg("move off board")
		return false
	}
	from := g.board.TileAt(m.From)
	if from == nil {
		g.log.Debug().Caller().Str("move", m.ShortDescription()).Msg("no tile on source")
		return false
	}
	around := g.Neighbors(m.From)
	g.log.Debug().Str("around", around.String()).Msg("neighbors")
	if !around.Contains(m.To) {
		g.log.Debug().Caller().Str("move", m.ShortDescription()).Msg("not one step away")
		return false
	}

	moved := *from
	var captured *board.Tile
	if t := g.board.TileAt(m.To); t != nil {
		c := *t
		captured = &c
	}
	g.key = g.zobrist.AddMove(g.key, m.From, m.To, moved, captured)
	g.board.ClearTile(m.From)
	g.board.SetTile(m.To, moved)
	g.log.Info().Caller().Msg("move " + m.ShortDescription())

	if g.turn == board.White {
		g.SetTurn(board.Orange)
	} else {
		g.SetTurn(board.White)
	}
	return true
}
