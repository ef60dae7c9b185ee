package core

import (
	"fmt"
	"strings"
)

// Direction is the snake heading
type Direction uint8

const (
	Right Direction = iota
	Up
	Left
	Down
)

// Turn tables are fixed lookups, not arithmetic on the enum values
var (
	leftOf = [...]Direction{
		Right: Up,
		Up:    Left,
		Left:  Down,
		Down:  Right,
	}
	rightOf = [...]Direction{
		Right: Down,
		Down:  Left,
		Left:  Up,
		Up:    Right,
	}
	offsets = [...]Point{
		Right: {X: 1},
		Up:    {Y: -1},
		Left:  {X: -1},
		Down:  {Y: 1},
	}
	directionNames = [...]string{
		Right: "right",
		Up:    "up",
		Left:  "left",
		Down:  "down",
	}
)

// TurnLeft returns the heading after a counter-clockwise quarter turn
func (d Direction) TurnLeft() Direction {
	return leftOf[d]
}

// TurnRight returns the heading after a clockwise quarter turn
func (d Direction) TurnRight() Direction {
	return rightOf[d]
}

// Offset returns the unit step for one move along d
func (d Direction) Offset() Point {
	return offsets[d]
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return int(d) < len(directionNames)
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// ParseDirection converts a heading name (left, right, up, down) to a Direction
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return Right, fmt.Errorf("unknown direction %q", s)
}

// UnmarshalYAML decodes a heading name
func (d *Direction) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the heading name
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}
