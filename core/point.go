package core

import "fmt"

// Point is a grid coordinate. Values may go negative while a move is computed
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Visible reports whether p can be drawn on a character display
func (p Point) Visible() bool {
	return p.X >= 0 && p.Y >= 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
