package game

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/beesgame/bees/board"
	"github.com/beesgame/bees/move"
)

// AddMove queues a move tagged with the side on turn right now. Moves
// are not checked for legality here; a move with an end off the board
// is refused.
func (g *Game) AddMove(from, to string) error {
	m := move.NewMove(from, to, g.turn)
	if !m.Valid() {
		g.log.Warn().Caller().Str("move", m.ShortDescription()).Msg("bad move location")
		return fmt.Errorf("%w: %v", board.ErrInvalidLocation, m.ShortDescription())
	}
	g.queue = append(g.queue, &queuedMove{m: m})
	g.log.Debug().Str("move", m.ShortDescription()).Str("side", m.Side.String()).
		Msg("queued move")
	return nil
}

// ProcMoves walks the queue in order and runs every move queued for the
// side on turn. The turn is read again at each entry, so a move that
// passes the turn lets the next side's queued moves run in the same
// pass. Moves for the other side stay queued. It returns how many
// moves ran.
func (g *Game) ProcMoves() int {
	n := 0
	for _, q := range g.queue {
		if q.done {
			continue
		}
		if q.m.Side != g.turn {
			continue
		}
		if g.exec(q.m) {
			n++
			if g.policy == QueuePrune {
				q.done = true
			}
		}
	}
	g.log.Debug().Int("executed", n).Int("queued", len(g.queue)).Msg("processed moves")
	return n
}

// Queue returns every queued move, including executed ones.
func (g *Game) Queue() []move.Move {
	return lo.Map(g.queue, func(q *queuedMove, _ int) move.Move {
		return *q.m
	})
}

// Pending returns the queued moves that a later ProcMoves may still run.
func (g *Game) Pending() []move.Move {
	return lo.FilterMap(g.queue, func(q *queuedMove, _ int) (move.Move, bool) {
		return *q.m, !q.done
	})
}
