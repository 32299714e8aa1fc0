package interpreter

import (
	"fmt"
	"io"
	"strings"
)

var facingGlyph = map[Direction]rune{
	North: '^',
	East:  '>',
	South: 'v',
	West:  '<',
}

// Render draws the table one row per string, highest y first so that
// north is at the top. An unconfigured table renders as no rows.
func Render(s State, b Bounds) []string {
	if !b.Configured() {
		return nil
	}
	rows := make([]string, 0, b.Rows)
	for y := b.Rows - 1; y >= 0; y-- {
		cells := make([]string, b.Cols)
		for x := 0; x < b.Cols; x++ {
			if s.Placed && s.X == x && s.Y == y {
				cells[x] = string(facingGlyph[s.Facing])
			} else {
				cells[x] = "."
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return rows
}

// Display writes the table and the robot status to w.
func Display(w io.Writer, s State, b Bounds) {
	for _, row := range Render(s, b) {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w, s)
}
