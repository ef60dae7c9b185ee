package engine

import (
	"math"

	"github.com/pkg/errors"

	"github.com/lixenwraith/snake/core"
)

// ErrNoFreeCell reports that every grid cell is taken by the body or an apple
var ErrNoFreeCell = errors.New("no free cell")

// maxSampleAttempts bounds rejection sampling before falling back to enumerating free cells
const maxSampleAttempts = 64

// TargetCount is round((width + height - length) * density), never negative
func TargetCount(width, height, length int, density float64) int {
	n := int(math.Round(float64(width+height-length) * density))
	if n < 0 {
		return 0
	}
	return n
}

// AppleField is the set of uncollected apples
// No apple ever shares a cell with the snake body
type AppleField struct {
	grid    core.Area
	density float64
	rng     Random
	apples  map[core.Point]struct{}
}

// NewAppleField creates an empty field over grid
func NewAppleField(grid core.Area, density float64, rng Random) *AppleField {
	return &AppleField{
		grid:    grid,
		density: density,
		rng:     rng,
		apples:  make(map[core.Point]struct{}),
	}
}

// SpawnInitial fills the field with target distinct free cells
// On saturation it keeps what was placed and returns ErrNoFreeCell
func (f *AppleField) SpawnInitial(target int, snake *Snake) error {
	for len(f.apples) < target {
		if _, err := f.place(snake); err != nil {
			return err
		}
	}
	return nil
}

// Target returns the apple count wanted for the current body length
func (f *AppleField) Target(snake *Snake) int {
	return TargetCount(f.grid.Width, f.grid.Height, snake.Len(), f.density)
}

// Replenish adds at most one apple after a pickup
// Nothing is added while the field holds at least max(1, target) apples
// added is false with a nil error when the field is already full enough
func (f *AppleField) Replenish(snake *Snake) (p core.Point, added bool, err error) {
	want := max(1, f.Target(snake))
	if len(f.apples) >= want {
		return core.Point{}, false, nil
	}
	p, err = f.place(snake)
	if err != nil {
		return core.Point{}, false, err
	}
	return p, true, nil
}

// Remove drops the apple at p if present
func (f *AppleField) Remove(p core.Point) bool {
	if _, ok := f.apples[p]; !ok {
		return false
	}
	delete(f.apples, p)
	return true
}

// Has reports whether an apple sits at p
func (f *AppleField) Has(p core.Point) bool {
	_, ok := f.apples[p]
	return ok
}

// Len returns the number of apples on the field
func (f *AppleField) Len() int {
	return len(f.apples)
}

// Positions returns the apple cells in row-major order
func (f *AppleField) Positions() []core.Point {
	out := make([]core.Point, 0, len(f.apples))
	for y := f.grid.Y; y < f.grid.Y+f.grid.Height && len(out) < len(f.apples); y++ {
		for x := f.grid.X; x < f.grid.X+f.grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			if f.Has(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

func (f *AppleField) free(p core.Point, snake *Snake) bool {
	return !snake.Occupies(p) && !f.Has(p)
}

// place samples a uniformly random free cell and inserts it
func (f *AppleField) place(snake *Snake) (core.Point, error) {
	if f.grid.Cells() == 0 {
		return core.Point{}, ErrNoFreeCell
	}

	for i := 0; i < maxSampleAttempts; i++ {
		p := core.Point{
			X: f.grid.X + f.rng.Intn(f.grid.Width),
			Y: f.grid.Y + f.rng.Intn(f.grid.Height),
		}
		if f.free(p, snake) {
			f.apples[p] = struct{}{}
			return p, nil
		}
	}

	// Crowded board: pick uniformly among the cells that are actually free
	var cells []core.Point
	for y := f.grid.Y; y < f.grid.Y+f.grid.Height; y++ {
		for x := f.grid.X; x < f.grid.X+f.grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			if f.free(p, snake) {
				cells = append(cells, p)
			}
		}
	}
	if len(cells) == 0 {
		return core.Point{}, ErrNoFreeCell
	}
	p := cells[f.rng.Intn(len(cells))]
	f.apples[p] = struct{}{}
	return p, nil
}
