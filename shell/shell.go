package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/beesgame/bees/config"
	"github.com/beesgame/bees/game"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("quit")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

// ShellController drives one game from a readline prompt, a single
// command line or a Lua script.
type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config
	logger zerolog.Logger

	game *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewShellController sets up a controller with an interactive prompt.
func NewShellController(cfg *config.Config, logger zerolog.Logger) (*ShellController, error) {
	sc := newShellController(cfg, logger, os.Stdout)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[33mbees>\033[0m ",
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    &ShellCompleter{},

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.l = l
	sc.out = l.Stdout()
	return sc, nil
}

func newShellController(cfg *config.Config, logger zerolog.Logger, out io.Writer) *ShellController {
	sc := &ShellController{config: cfg, logger: logger, out: out}
	// A bad policy is reported by the first "new"; start from the default.
	g, err := sc.newGame()
	if err != nil {
		g = game.NewGame(game.WithLogger(logger))
	}
	sc.game = g
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Game is the game the shell is currently driving.
func (sc *ShellController) Game() *game.Game {
	return sc.game
}

// extractFields splits a line into the command, its positional args and
// its -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

// executeCommand runs one command. A caller contract violation inside
// the engine (a malformed location code) panics; here it is turned into
// an error so the prompt survives.
func (sc *ShellController) executeCommand(cmd *shellcmd) (resp *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = fmt.Errorf("%s: %v", cmd.cmd, r)
		}
	}()
	handler, ok := sc.handlers()[cmd.cmd]
	if !ok {
		return nil, fmt.Errorf("command %v not found", cmd.cmd)
	}
	return handler(cmd)
}

func (sc *ShellController) handlers() map[string]func(*shellcmd) (*Response, error) {
	return map[string]func(*shellcmd) (*Response, error){
		"new":       sc.newCmd,
		"tile":      sc.tile,
		"start":     sc.start,
		"turn":      sc.turn,
		"move":      sc.move,
		"proc":      sc.proc,
		"queue":     sc.queue,
		"fen":       sc.fen,
		"show":      sc.show,
		"neighbors": sc.neighbors,
		"hash":      sc.hash,
		"load":      sc.load,
		"save":      sc.save,
		"check":     sc.check,
		"script":    sc.script,
		"help":      sc.help,
		"exit":      sc.exit,
		"bye":       sc.exit,
	}
}

// Execute runs a single command line and prints its response.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	if err := sc.execLine(line); err != nil {
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			return
		}
		sc.showError(err)
	}
}

func (sc *ShellController) execLine(line string) error {
	cmd, err := extractFields(line)
	if err != nil {
		if errors.Is(err, errNoData) {
			return nil
		}
		return err
	}
	resp, err := sc.executeCommand(cmd)
	if err != nil {
		return err
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {

	defer sc.l.Close()

	for {

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		err = sc.execLine(line)
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
