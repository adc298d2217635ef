package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/beesgame/bees/board"
	"github.com/beesgame/bees/config"
	"github.com/beesgame/bees/game"
	"github.com/beesgame/bees/move"
	"github.com/beesgame/bees/scenario"
)

func (sc *ShellController) gameOptions() ([]game.Option, error) {
	policy, err := game.ParseQueuePolicy(sc.config.GetString(config.ConfigQueuePolicy))
	if err != nil {
		return nil, err
	}
	return []game.Option{game.WithLogger(sc.logger), game.WithQueuePolicy(policy)}, nil
}

func (sc *ShellController) newGame(fenParts ...string) (*game.Game, error) {
	opts, err := sc.gameOptions()
	if err != nil {
		return nil, err
	}
	if len(fenParts) == 0 {
		return game.NewGame(opts...), nil
	}
	return game.NewFromFEN(strings.Join(fenParts, " "), opts...)
}

func (sc *ShellController) newCmd(cmd *shellcmd) (*Response, error) {
	g, err := sc.newGame(cmd.args...)
	if err != nil {
		return nil, err
	}
	sc.game = g
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) tile(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: tile <token> <location>")
	}
	if err := sc.game.AddTile(cmd.args[0], cmd.args[1]); err != nil {
		return nil, err
	}
	return msg(sc.game.ToFEN()), nil
}

func (sc *ShellController) start(cmd *shellcmd) (*Response, error) {
	sc.game.Start()
	return msg("turn: " + sc.game.Turn().String()), nil
}

func (sc *ShellController) turn(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.game.Turn().String()), nil
	}
	side, ok := board.SideFromString(cmd.args[0])
	if !ok {
		return nil, fmt.Errorf("unknown side %q", cmd.args[0])
	}
	sc.game.SetTurn(side)
	return msg("turn: " + side.String()), nil
}

func (sc *ShellController) move(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: move <from> <to>")
	}
	if err := sc.game.AddMove(cmd.args[0], cmd.args[1]); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("queued %s-%s for %v", cmd.args[0], cmd.args[1], sc.game.Turn())), nil
}

func (sc *ShellController) proc(cmd *shellcmd) (*Response, error) {
	n := sc.game.ProcMoves()
	return msg(fmt.Sprintf("executed %d; turn: %v", n, sc.game.Turn())), nil
}

func (sc *ShellController) queue(cmd *shellcmd) (*Response, error) {
	q := sc.game.Queue()
	if len(q) == 0 {
		return msg("queue is empty"), nil
	}
	pending := sc.game.Pending()
	lines := lo.Map(q, func(m move.Move, idx int) string {
		return fmt.Sprintf("%2d. %s (%v)", idx+1, m.ShortDescription(), m.Side)
	})
	lines = append(lines, fmt.Sprintf("%d queued, %d pending", len(q), len(pending)))
	return msg(strings.Join(lines, "\n")), nil
}

func (sc *ShellController) fen(cmd *shellcmd) (*Response, error) {
	return msg(sc.game.ToFEN()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) neighbors(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: neighbors <location>")
	}
	loc, err := board.ParseLocation(cmd.args[0])
	if err != nil {
		return nil, err
	}
	side := sc.game.Turn()
	if s, ok := cmd.options["side"]; ok {
		if side, ok = board.SideFromString(s); !ok {
			return nil, fmt.Errorf("unknown side %q", s)
		}
	}
	return msg(board.Neighbors(loc, side).String()), nil
}

func (sc *ShellController) hash(cmd *shellcmd) (*Response, error) {
	return msg(fmt.Sprintf("position key: %016x\nfingerprint:  %016x",
		sc.game.PositionKey(), sc.game.Fingerprint())), nil
}

func (sc *ShellController) scenarioPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return filepath.Join(sc.config.GetString(config.ConfigScenarioPath), p)
}

// load replaces the current game with a fresh one and applies the
// scenario file to it.
func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <scenario.yaml>")
	}
	s, err := scenario.Load(sc.scenarioPath(cmd.args[0]))
	if err != nil {
		return nil, err
	}
	g, err := sc.newGame()
	if err != nil {
		return nil, err
	}
	n, err := s.Apply(g)
	if err != nil {
		return nil, err
	}
	sc.game = g
	out := fmt.Sprintf("loaded %q, executed %d", s.Name, n)
	if err := s.Check(g, n); err != nil {
		out += "\n" + err.Error()
	} else if s.Expect != nil {
		out += "\nexpectations met"
	}
	return msg(out + sc.game.ToDisplayText()), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	dir := sc.config.GetString(config.ConfigScenarioPath)
	if len(cmd.args) > 0 {
		dir = cmd.args[0]
	}
	opts, err := sc.gameOptions()
	if err != nil {
		return nil, err
	}
	results, err := scenario.RunDir(context.Background(), dir, opts...)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	passed := 0
	for _, r := range results {
		if r.Passed() {
			passed++
			fmt.Fprintf(&sb, "ok    %s\n", filepath.Base(r.File))
		} else {
			fmt.Fprintf(&sb, "FAIL  %s: %v\n", filepath.Base(r.File), r.Err)
		}
	}
	fmt.Fprintf(&sb, "%d/%d scenarios passed", passed, len(results))
	return msg(sb.String()), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: save <scenario.yaml>")
	}
	f, err := os.Create(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := cmd.options["name"]
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(cmd.args[0]), filepath.Ext(cmd.args[0]))
	}
	if err := scenario.FromGame(name, sc.game).Write(f); err != nil {
		return nil, err
	}
	return msg("saved " + cmd.args[0]), nil
}

func (sc *ShellController) exit(cmd *shellcmd) (*Response, error) {
	return nil, errQuit
}
