package shell

import (
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"
)

var commandNames = []string{
	"new", "tile", "start", "turn", "move", "proc", "queue", "fen", "show",
	"neighbors", "hash", "load", "save", "check", "script", "help", "exit",
}

var sideValues = []string{"white", "orange", "nil"}

var tokenValues = []string{"g", "h", "s", "r", "b", "t", "l", "m",
	"G", "H", "S", "R", "B", "T", "L", "M"}

// ShellCompleter completes command names, sides and tile tokens.
type ShellCompleter struct{}

// Do implements the readline.AutoComplete interface
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	case fields[0] == "turn" || (len(fields) >= 2 && fields[len(fields)-2] == "-side") ||
		(endsWithSpace && fields[len(fields)-1] == "-side"):
		completions = sideValues
	case fields[0] == "tile" && (len(fields) == 1 || (len(fields) == 2 && !endsWithSpace)):
		completions = tokenValues
	}
	if !endsWithSpace && len(fields) > 1 {
		prefix = fields[len(fields)-1]
	}

	matches := lo.Filter(completions, func(s string, _ int) bool {
		return strings.HasPrefix(s, prefix)
	})
	sort.Strings(matches)
	return lo.Map(matches, func(s string, _ int) []rune {
		return []rune(s[len(prefix):])
	}), len(prefix)
}
