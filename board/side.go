package board

// Side is one of the two players, or Nil before the game has started.
type Side uint8

const (
	Nil Side = iota
	White
	Orange
)

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Orange:
		return "orange"
	}
	return "nil"
}

// Valid reports whether s is one of Nil, White or Orange.
func (s Side) Valid() bool {
	return s <= Orange
}

// Other returns the opposing side. Nil has no opponent.
func (s Side) Other() Side {
	switch s {
	case White:
		return Orange
	case Orange:
		return White
	}
	return Nil
}

// SideFromString accepts the long names and the single-letter forms
// used by hosts ("w", "o", "-").
func SideFromString(s string) (Side, bool) {
	switch s {
	case "white", "White", "w", "W":
		return White, true
	case "orange", "Orange", "o", "O":
		return Orange, true
	case "nil", "Nil", "-", "":
		return Nil, true
	}
	return Nil, false
}
