package cubepath

import "fmt"

// Direction is a unit heading along one axis of the cube.
type Direction byte

// The six headings. East/West move along x, North/South along y,
// Up/Down along z.
const (
	East  Direction = 'E'
	West  Direction = 'W'
	North Direction = 'N'
	South Direction = 'S'
	Up    Direction = 'U'
	Down  Direction = 'D'
)

// Directions lists all headings in successor-generation order.
var Directions = [...]Direction{East, West, North, South, Up, Down}

// Vec is an integer 3D vector, used both for cells and for unit steps.
type Vec struct{ X, Y, Z int }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec) String() string { return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z) }

var unit = map[Direction]Vec{
	East:  {1, 0, 0},
	West:  {-1, 0, 0},
	North: {0, 1, 0},
	South: {0, -1, 0},
	Up:    {0, 0, 1},
	Down:  {0, 0, -1},
}

// Valid reports whether d is one of the six headings.
func (d Direction) Valid() bool {
	_, ok := unit[d]
	return ok
}

// Vector returns the unit step of d. It panics on an invalid direction.
func (d Direction) Vector() Vec {
	v, ok := unit[d]
	if !ok {
		panic(fmt.Sprintf("cubepath: invalid direction %q", byte(d)))
	}

	return v
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	case North:
		return South
	case South:
		return North
	case Up:
		return Down
	case Down:
		return Up
	}

	return d
}

// Perpendicular reports whether turning from d to o is a 90-degree turn:
// o is neither d nor its opposite.
func (d Direction) Perpendicular(o Direction) bool {
	return o != d && o != d.Opposite()
}

func (d Direction) String() string { return string(rune(d)) }

// ParseDirection maps a single letter (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if d := Direction(c); d.Valid() {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Letters returns the headings of p as one-letter strings.
func Letters(p Path) []string {
	out := make([]string, 0, p.Len())
	for _, d := range p.Tokens() {
		out = append(out, d.String())
	}

	return out
}
