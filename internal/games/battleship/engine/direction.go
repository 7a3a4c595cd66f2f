// Package engine implements the Battleship match rules: two fixed-size grids,
// ship placement, shot resolution, turn sequencing and the computer's targeting
// tactics. It has no dependency on the platform or on Bubble Tea so it can be
// driven from tests, the TUI, or any other front end.
package engine

// Direction is a ship orientation or a probe direction on the grid.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all directions in clockwise order starting from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Vector returns the unit step (dx, dy) for the direction.
// Y grows downwards, so Up is (0, -1).
func (d Direction) Vector() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// Clockwise returns the direction rotated 90 degrees clockwise.
func (d Direction) Clockwise() Direction {
	return (d + 1) % 4
}

// CounterClockwise returns the direction rotated 90 degrees counter-clockwise.
func (d Direction) CounterClockwise() Direction {
	return (d + 3) % 4
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Step returns the point n cells away in direction d.
func (p Point) Step(d Direction, n int) Point {
	dx, dy := d.Vector()
	return Point{X: p.X + dx*n, Y: p.Y + dy*n}
}

// Next returns the adjacent point in direction d.
func (p Point) Next(d Direction) Point {
	return p.Step(d, 1)
}
