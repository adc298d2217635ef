package board

import (
	"strconv"
	"strings"
)

// ToFEN serializes the grid row by row. Occupied squares are written as
// their tile token and runs of empty squares as a count; rows are joined
// with "/".
func (b *Board) ToFEN() string {
	rows := make([]string, Dim)
	for i := 0; i < Dim; i++ {
		var sb strings.Builder
		empty := 0
		for j := 0; j < Dim; j++ {
			t := b.squares[i][j].Tile
			if t == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(t.Token())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		rows[i] = sb.String()
	}
	return strings.Join(rows, "/")
}
