// Package scenario loads YAML files that describe a bees position, the
// moves to queue against it and what the board should look like
// afterwards.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beesgame/bees/board"
	"github.com/beesgame/bees/fen"
	"github.com/beesgame/bees/game"
)

var ErrExpectation = errors.New("scenario expectation not met")

type Placement struct {
	Tile string `yaml:"tile"`
	At   string `yaml:"at"`
}

type Move struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	// Turn, if set, is forced with SetTurn before the move is queued.
	Turn string `yaml:"turn,omitempty"`
}

type Expect struct {
	FEN      string `yaml:"fen,omitempty"`
	Turn     string `yaml:"turn,omitempty"`
	Executed *int   `yaml:"executed,omitempty"`
}

// A Scenario is applied in field order: tiles from FEN, then Tiles,
// then Start, then Turn, then Moves, then ResumeTurn, then Proc passes
// of ProcMoves.
type Scenario struct {
	Name  string      `yaml:"name"`
	FEN   string      `yaml:"fen,omitempty"`
	Tiles []Placement `yaml:"tiles,omitempty"`
	Start bool        `yaml:"start"`
	Turn  string      `yaml:"turn,omitempty"`
	Moves []Move      `yaml:"moves,omitempty"`
	// ResumeTurn is forced after the moves are queued.
	ResumeTurn string  `yaml:"resume_turn,omitempty"`
	Proc       int     `yaml:"proc,omitempty"`
	Expect     *Expect `yaml:"expect,omitempty"`
}

func ParseFromReader(reader io.Reader) (*Scenario, error) {
	s := &Scenario{}
	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Load parses a scenario file.
func Load(filename string) (*Scenario, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ParseFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

func parseSide(s string) (board.Side, error) {
	side, ok := board.SideFromString(s)
	if !ok {
		return board.Nil, fmt.Errorf("bad side %q", s)
	}
	return side, nil
}

// Apply plays the scenario against g and returns how many moves ran
// across all ProcMoves passes. g should be fresh.
func (s *Scenario) Apply(g *game.Game) (int, error) {
	if s.FEN != "" {
		b, err := fen.Parse(s.FEN)
		if err != nil {
			return 0, err
		}
		for row := 0; row < board.Dim; row++ {
			for col := 0; col < board.Dim; col++ {
				loc := board.NewLocation(row, col)
				if t := b.TileAt(loc); t != nil {
					if err := g.AddTile(t.Token(), loc.Code); err != nil {
						return 0, err
					}
				}
			}
		}
	}
	for _, p := range s.Tiles {
		if err := g.AddTile(p.Tile, p.At); err != nil {
			return 0, err
		}
	}
	if s.Start {
		g.Start()
	}
	if s.Turn != "" {
		side, err := parseSide(s.Turn)
		if err != nil {
			return 0, err
		}
		g.SetTurn(side)
	}
	for _, m := range s.Moves {
		if m.Turn != "" {
			side, err := parseSide(m.Turn)
			if err != nil {
				return 0, err
			}
			g.SetTurn(side)
		}
		if err := g.AddMove(m.From, m.To); err != nil {
			return 0, err
		}
	}
	if s.ResumeTurn != "" {
		side, err := parseSide(s.ResumeTurn)
		if err != nil {
			return 0, err
		}
		g.SetTurn(side)
	}
	executed := 0
	for i := 0; i < s.Proc; i++ {
		executed += g.ProcMoves()
	}
	return executed, nil
}

// Check compares g against the expectations, if any.
func (s *Scenario) Check(g *game.Game, executed int) error {
	if s.Expect == nil {
		return nil
	}
	if s.Expect.FEN != "" && g.ToFEN() != s.Expect.FEN {
		return fmt.Errorf("%w: fen %q, expected %q", ErrExpectation, g.ToFEN(), s.Expect.FEN)
	}
	if s.Expect.Turn != "" {
		side, err := parseSide(s.Expect.Turn)
		if err != nil {
			return err
		}
		if g.Turn() != side {
			return fmt.Errorf("%w: turn %v, expected %v", ErrExpectation, g.Turn(), side)
		}
	}
	if s.Expect.Executed != nil && executed != *s.Expect.Executed {
		return fmt.Errorf("%w: executed %d, expected %d", ErrExpectation, executed, *s.Expect.Executed)
	}
	return nil
}

// FromGame captures g's board, turn and pending moves as a scenario. The
// moves keep the side they were queued for.
func FromGame(name string, g *game.Game) *Scenario {
	s := &Scenario{
		Name:  name,
		FEN:   g.ToFEN(),
		Start: g.Turn() != board.Nil,
	}
	for _, m := range g.Pending() {
		s.Moves = append(s.Moves, Move{From: m.From.Code, To: m.To.Code, Turn: m.Side.String()})
	}
	if len(s.Moves) > 0 {
		s.ResumeTurn = g.Turn().String()
	} else if s.Start {
		s.Turn = g.Turn().String()
	}
	return s
}

// Write encodes s as YAML.
func (s *Scenario) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
