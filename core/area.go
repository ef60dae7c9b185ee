package core

// Area represents a rectangular grid region anchored at X, Y
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Grid returns the play area for a width x height board anchored at the origin
func Grid(width, height int) Area {
	return Area{Width: width, Height: height}
}

// Contains reports whether p lies inside the area, edges inclusive on the
// top-left and exclusive on the bottom-right
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width &&
		p.Y >= a.Y && p.Y < a.Y+a.Height
}

// Cells returns the number of cells covered by the area
func (a Area) Cells() int {
	if a.Width <= 0 || a.Height <= 0 {
		return 0
	}
	return a.Width * a.Height
}
