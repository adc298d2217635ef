// Package game runs a bees game: the setup phase, the turn state
// machine and the queue of moves waiting for their turn.
//
// A Game is not safe for concurrent use. The host owns it and must
// serialize its own calls.
package game

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog"

	"github.com/beesgame/bees/board"
	"github.com/beesgame/bees/fen"
	"github.com/beesgame/bees/move"
	"github.com/beesgame/bees/zobrist"
)

var ErrSetupLocked = errors.New("cannot add tile to started game")

// QueuePolicy decides what happens to a queued move once it has run.
type QueuePolicy string

const (
	// QueuePrune marks executed moves so later passes skip them.
	QueuePrune QueuePolicy = "prune"
	// QueueReplay leaves executed moves live; every ProcMoves call tries
	// them again.
	QueueReplay QueuePolicy = "replay"
)

// ParseQueuePolicy accepts "prune" or "replay".
func ParseQueuePolicy(s string) (QueuePolicy, error) {
	switch QueuePolicy(s) {
	case QueuePrune, QueueReplay:
		return QueuePolicy(s), nil
	}
	return "", fmt.Errorf("unknown queue policy %q", s)
}

type queuedMove struct {
	m    *move.Move
	done bool
}

// Game is the board plus whose turn it is and the move queue.
type Game struct {
	board  *board.Board
	turn   board.Side
	queue  []*queuedMove
	policy QueuePolicy

	log zerolog.Logger

	zobrist *zobrist.Zobrist
	key     uint64
}

type Option func(*Game)

// WithLogger sets the diagnostics sink. Without it the game logs
// nothing.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.log = l.With().Str("component", "bee_engine").Logger()
	}
}

func WithQueuePolicy(p QueuePolicy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

// WithZobrist shares hash tables between games, so position keys of
// different games can be compared.
func WithZobrist(z *zobrist.Zobrist) Option {
	return func(g *Game) {
		g.zobrist = z
	}
}

// NewGame creates a game with an empty board, no side on turn and an
// empty queue.
func NewGame(opts ...Option) *Game {
	g := &Game{
		board:  board.NewBoard(),
		turn:   board.Nil,
		policy: QueuePrune,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(g)
	}
	if g.zobrist == nil {
		g.zobrist = &zobrist.Zobrist{}
		g.zobrist.Initialize()
	}
	g.key = g.zobrist.Hash(g.board, g.turn)
	return g
}

// NewFromFEN creates a game in the setup phase with the tiles described
// by fenstr already placed.
func NewFromFEN(fenstr string, opts ...Option) (*Game, error) {
	b, err := fen.Parse(fenstr)
	if err != nil {
		return nil, err
	}
	g := NewGame(opts...)
	g.board = b
	g.key = g.zobrist.Hash(g.board, g.turn)
	g.log.Debug().Str("fen", fenstr).Msg("loaded position")
	return g, nil
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Turn() board.Side {
	return g.turn
}

func (g *Game) QueuePolicy() QueuePolicy {
	return g.policy
}

// AddTile places the tile for token on the square for code. It only
// works before Start; afterwards the board is locked for setup. An
// unknown token still places a tile (a Bird) after logging it.
func (g *Game) AddTile(token, code string) error {
	tile, ok := board.DecodeTile(token)
	if !ok {
		g.log.Warn().Caller().Str("token", token).Msg("bad tile token")
	}
	loc := board.DecodeLocation(code)

	if g.turn != board.Nil {
		g.log.Warn().Caller().Str("turn", g.turn.String()).Msg(ErrSetupLocked.Error())
		return ErrSetupLocked
	}
	if !loc.Valid() {
		g.log.Warn().Caller().Str("code", code).Msg("bad tile location")
		return fmt.Errorf("%w: %q", board.ErrInvalidLocation, code)
	}
	if old := g.board.TileAt(loc); old != nil {
		g.key = g.zobrist.Toggle(g.key, loc, *old)
	}
	g.board.SetTile(loc, tile)
	g.key = g.zobrist.Toggle(g.key, loc, tile)
	g.log.Debug().Str("tile", tile.Token()).Str("code", loc.Code).Msg("added tile")
	return nil
}

// ToFEN is the board in the slash-delimited run-length form.
func (g *Game) ToFEN() string {
	return g.board.ToFEN()
}

// ToDisplayText renders the board and the side on turn.
func (g *Game) ToDisplayText() string {
	return g.board.ToDisplayText() +
		fmt.Sprintf("turn: %v  queued: %d  pending: %d\n",
			g.turn, len(g.queue), len(g.Pending()))
}

// PositionKey is the zobrist key of the board and the side on turn. It
// is only comparable between games sharing a Zobrist.
func (g *Game) PositionKey() uint64 {
	return g.key
}

// Fingerprint is a hash of the FEN and the side on turn that is stable
// across processes.
func (g *Game) Fingerprint() uint64 {
	return xxhash.Sum64String(g.ToFEN() + " " + g.turn.String())
}
