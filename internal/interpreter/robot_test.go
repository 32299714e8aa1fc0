package interpreter

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fiveByFive = Bounds{Rows: 5, Cols: 5}

func mustParse(t *testing.T, line string) Command {
	t.Helper()
	cmd, err := Parse(line)
	require.NoError(t, err)
	return cmd
}

func placed(x, y int, f Direction) State {
	return State{Placed: true, X: x, Y: y, Facing: f, Moves: DefaultBudget}
}

func TestUnplacedRejectsEverythingButPlace(t *testing.T) {
	start := NewState(DefaultBudget)
	for _, k := range []CommandKind{Move, Left, Right} {
		got, err := Apply(start, fiveByFive, Command{Kind: k})
		assert.ErrorIs(t, err, ErrNotInitialized, k)
		assert.Equal(t, start, got)
	}
}

func TestPlace(t *testing.T) {
	got, err := Apply(NewState(DefaultBudget), fiveByFive, mustParse(t, "PLACE 1,2,NORTH"))
	require.NoError(t, err)
	assert.Equal(t, placed(1, 2, North), got)
}

func TestPlaceRoundTrip(t *testing.T) {
	for _, line := range []string{"PLACE 0,0,NORTH", "PLACE 4,4,WEST", "PLACE 2,3,SOUTH", "PLACE 3 1 EAST"} {
		cmd := mustParse(t, line)
		got, err := Apply(NewState(DefaultBudget), fiveByFive, cmd)
		require.NoError(t, err, line)
		assert.Equal(t, cmd.X, strconv.Itoa(got.X))
		assert.Equal(t, cmd.Y, strconv.Itoa(got.Y))
		assert.Equal(t, cmd.Facing, got.Facing.String())
	}
}

func TestPlaceErrors(t *testing.T) {
	tests := []struct {
		line   string
		bounds Bounds
		kind   ErrorKind
	}{
		{"PLACE 5,5,NORTH", fiveByFive, KindWrongPlace},
		{"PLACE 0,5,NORTH", fiveByFive, KindWrongPlace},
		{"PLACE 1,2,UP", fiveByFive, KindWrongDirection},
		{"PLACE X,2,NORTH", fiveByFive, KindWrongCoordinate},
		{"PLACE 1,-2,NORTH", fiveByFive, KindWrongCoordinate},
		{"PLACE 1.5,2,NORTH", fiveByFive, KindWrongCoordinate},
		// coordinates are checked before the direction, the direction before bounds
		{"PLACE -1,2,UP", fiveByFive, KindWrongCoordinate},
		{"PLACE 9,9,UP", fiveByFive, KindWrongDirection},
		{"PLACE 99999999999999999999,0,NORTH", fiveByFive, KindWrongPlace},
		{"PLACE 0,+99999999999999999999,NORTH", fiveByFive, KindWrongPlace},
		{"PLACE -99999999999999999999,0,NORTH", fiveByFive, KindWrongCoordinate},
		{"PLACE 99999999999999999999,0,UP", fiveByFive, KindWrongDirection},
		{"PLACE 0,0,NORTH", Bounds{}, KindWrongPlace},
		{"PLACE 0,0,NORTH", Bounds{Rows: 5}, KindWrongPlace},
		{"PLACE 0,0,NORTH", Bounds{Cols: 5}, KindWrongPlace},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			start := NewState(DefaultBudget)
			got, err := Apply(start, tt.bounds, mustParse(t, tt.line))
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.Equal(t, start, got)
		})
	}
}

func TestPlaceAgainRestoresBudget(t *testing.T) {
	s := placed(0, 0, North)
	s.Moves = 3
	got, err := Apply(s, fiveByFive, mustParse(t, "PLACE 2,2,EAST"))
	require.NoError(t, err)
	assert.Equal(t, placed(2, 2, East), got)
}

func TestMove(t *testing.T) {
	got, err := Apply(placed(0, 0, North), fiveByFive, Command{Kind: Move})
	require.NoError(t, err)
	assert.Equal(t, 0, got.X)
	assert.Equal(t, 1, got.Y)
	assert.Equal(t, North, got.Facing)
	assert.Equal(t, DefaultBudget-1, got.Moves)
}

func TestMoveUntilBudgetIsSpent(t *testing.T) {
	b := Bounds{Rows: 20, Cols: 20}
	s := placed(0, 0, North)
	var err error
	for i := 0; i < DefaultBudget; i++ {
		s, err = Apply(s, b, Command{Kind: Move})
		require.NoError(t, err, "move %d", i+1)
	}
	assert.Equal(t, 0, s.Moves)
	assert.Equal(t, DefaultBudget, s.Y)

	got, err := Apply(s, b, Command{Kind: Move})
	assert.ErrorIs(t, err, ErrEmptyMove)
	assert.Equal(t, s, got)
}

func TestMoveOffTheTable(t *testing.T) {
	tests := []struct {
		name   string
		start  State
		bounds Bounds
	}{
		{"north edge of one row", placed(0, 0, North), Bounds{Rows: 1, Cols: 5}},
		{"west edge", placed(0, 2, West), fiveByFive},
		{"south edge", placed(2, 0, South), fiveByFive},
		{"east edge", placed(4, 2, East), fiveByFive},
		{"unset bounds", placed(0, 0, North), Bounds{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.start, tt.bounds, Command{Kind: Move})
			assert.ErrorIs(t, err, ErrWrongMovingDirection)
			assert.Equal(t, tt.start, got)
		})
	}
}

func TestEmptyMoveCheckedBeforeEdge(t *testing.T) {
	s := placed(0, 0, South)
	s.Moves = 0
	_, err := Apply(s, fiveByFive, Command{Kind: Move})
	assert.ErrorIs(t, err, ErrEmptyMove)
}

func TestTurnsKeepPositionAndBudget(t *testing.T) {
	s := placed(2, 3, North)
	s.Moves = 7

	left, err := Apply(s, fiveByFive, Command{Kind: Left})
	require.NoError(t, err)
	assert.Equal(t, West, left.Facing)
	assert.Equal(t, 2, left.X)
	assert.Equal(t, 3, left.Y)
	assert.Equal(t, 7, left.Moves)

	right, err := Apply(s, fiveByFive, Command{Kind: Right})
	require.NoError(t, err)
	assert.Equal(t, East, right.Facing)
	assert.Equal(t, 7, right.Moves)
}

func TestFourLeftsAndFourRights(t *testing.T) {
	for _, k := range []CommandKind{Left, Right} {
		s := placed(1, 1, North)
		for i := 0; i < 4; i++ {
			var err error
			s, err = Apply(s, fiveByFive, Command{Kind: k})
			require.NoError(t, err)
		}
		assert.Equal(t, placed(1, 1, North), s, k)
	}
}

func TestMoveFollowsTurn(t *testing.T) {
	s := placed(1, 1, North)
	for _, line := range []string{"RIGHT", "MOVE", "MOVE", "LEFT", "MOVE"} {
		var err error
		s, err = Apply(s, fiveByFive, mustParse(t, line))
		require.NoError(t, err, line)
	}
	assert.Equal(t, 3, s.X)
	assert.Equal(t, 2, s.Y)
	assert.Equal(t, North, s.Facing)
	assert.Equal(t, DefaultBudget-3, s.Moves)
}

func TestMachineBudget(t *testing.T) {
	m := Machine{Budget: 2}
	assert.Equal(t, State{Moves: 2}, m.Reset())

	s, err := m.Apply(m.Reset(), fiveByFive, mustParse(t, "PLACE 0,0,EAST"))
	require.NoError(t, err)
	s, err = m.Apply(s, fiveByFive, Command{Kind: Move})
	require.NoError(t, err)
	s, err = m.Apply(s, fiveByFive, Command{Kind: Move})
	require.NoError(t, err)
	_, err = m.Apply(s, fiveByFive, Command{Kind: Move})
	assert.ErrorIs(t, err, ErrEmptyMove)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unplaced moves=15", NewState(DefaultBudget).String())
	assert.Equal(t, "1,2,NORTH moves=15", placed(1, 2, North).String())
}
