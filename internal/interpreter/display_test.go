package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	s := State{Placed: true, X: 1, Y: 0, Facing: West, Moves: 3}
	got := Render(s, Bounds{Rows: 2, Cols: 3})
	assert.Equal(t, []string{
		". . .",
		". < .",
	}, got)
}

func TestRenderNorthIsUp(t *testing.T) {
	s := State{Placed: true, X: 0, Y: 2, Facing: North}
	got := Render(s, Bounds{Rows: 3, Cols: 2})
	assert.Equal(t, "^ .", got[0])
}

func TestRenderUnsetBounds(t *testing.T) {
	assert.Empty(t, Render(NewState(DefaultBudget), Bounds{Rows: 3}))
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	Display(&buf, NewState(DefaultBudget), Bounds{Rows: 1, Cols: 2})
	assert.Equal(t, ". .\nunplaced moves=15\n", buf.String())
}
