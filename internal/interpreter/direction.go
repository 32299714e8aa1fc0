package interpreter

import "fmt"

// Direction is the compass direction the robot faces.
type Direction int

const (
	NoDirection Direction = iota
	North
	East
	South
	West
)

var directionNames = map[Direction]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

// unit step for each direction, y grows to the north
var directionDelta = map[Direction][2]int{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

var directionDegrees = map[Direction]int{
	North: 0,
	East:  90,
	South: 180,
	West:  270,
}

var directionFromDegrees = map[int]Direction{
	0:   North,
	90:  East,
	180: South,
	270: West,
}

// ParseDirection looks up a direction by its upper-case name.
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name {
			return d, true
		}
	}
	return NoDirection, false
}

func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Delta returns the unit step taken by a MOVE in this direction.
func (d Direction) Delta() (dx, dy int) {
	v := directionDelta[d]
	return v[0], v[1]
}

// Degrees returns the compass angle, 0 for north and clockwise.
func (d Direction) Degrees() int {
	return directionDegrees[d]
}

// DirectionFromDegrees maps a compass angle back to a direction.
// The angle is normalised into [0, 360) first.
func DirectionFromDegrees(deg int) (Direction, bool) {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	d, ok := directionFromDegrees[deg]
	return d, ok
}

// Left is the direction after a 90 degree turn anticlockwise.
func (d Direction) Left() Direction {
	return d.rotate(-90)
}

// Right is the direction after a 90 degree turn clockwise.
func (d Direction) Right() Direction {
	return d.rotate(90)
}

func (d Direction) rotate(by int) Direction {
	if !d.Valid() {
		return d
	}
	next, _ := DirectionFromDegrees(d.Degrees() + by)
	return next
}
