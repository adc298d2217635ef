package board

import (
	"strings"
	"unicode"
)

// Kind is the animal printed on a tile.
type Kind uint8

const (
	Bird Kind = iota
	Goat
	Horse
	Sloth
	Tiger
	Bear
	Snake
	MantisShrimp
)

var kindTokens = map[Kind]string{
	Goat:         "g",
	Horse:        "h",
	Sloth:        "s",
	Bird:         "r",
	Bear:         "b",
	Tiger:        "t",
	Snake:        "l",
	MantisShrimp: "m",
}

var tokenKinds = map[string]Kind{}

func init() {
	for k, t := range kindTokens {
		tokenKinds[t] = k
	}
}

func (k Kind) String() string {
	switch k {
	case Bird:
		return "bird"
	case Goat:
		return "goat"
	case Horse:
		return "horse"
	case Sloth:
		return "sloth"
	case Tiger:
		return "tiger"
	case Bear:
		return "bear"
	case Snake:
		return "snake"
	case MantisShrimp:
		return "mantis shrimp"
	}
	return "unknown"
}

// Passive kinds are grazers; they do not move any differently from the
// others yet.
func (k Kind) Passive() bool {
	return k == Goat || k == Horse || k == Sloth
}

func (k Kind) Aggressive() bool {
	return k == Tiger || k == Bear || k == Snake || k == MantisShrimp
}

// A Tile is a kind owned by a side.
type Tile struct {
	Kind  Kind
	Owner Side
}

// Token is the one-character form of the tile: lowercase for White,
// uppercase for Orange.
func (t Tile) Token() string {
	tok := kindTokens[t.Kind]
	if t.Owner == Orange {
		return strings.ToUpper(tok)
	}
	return tok
}

func (t Tile) String() string {
	return t.Owner.String() + " " + t.Kind.String()
}

// DecodeTile reads a token back into a tile. The owner comes from the
// case of the first character whether or not the token is known. An
// unknown token gives a Bird and ok == false; it never panics.
func DecodeTile(token string) (Tile, bool) {
	t := Tile{Kind: Bird, Owner: White}
	for _, r := range token {
		if unicode.IsUpper(r) {
			t.Owner = Orange
		}
		break
	}
	k, ok := tokenKinds[strings.ToLower(token)]
	if !ok {
		return t, false
	}
	t.Kind = k
	return t, true
}
