package interpreter

import "fmt"

// Bounds is the size of the table. A dimension of zero means it has not
// been configured; every position is outside an unconfigured table.
type Bounds struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

func (b Bounds) Configured() bool {
	return b.Rows > 0 && b.Cols > 0
}

// InBounds reports whether (x, y) is a cell of the table.
func (b Bounds) InBounds(x, y int) bool {
	return b.Configured() && x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

func (b Bounds) String() string {
	if !b.Configured() {
		return "unset"
	}
	return fmt.Sprintf("%dx%d", b.Cols, b.Rows)
}
