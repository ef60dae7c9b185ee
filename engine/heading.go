package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/snake/core"
)

// Heading is the single shared direction slot between the input goroutine and the game loop
// Turns are last-write-wins; a turn lands on whichever tick next reads the slot
type Heading struct {
	v atomic.Uint32
}

// NewHeading creates a heading slot holding d
func NewHeading(d core.Direction) *Heading {
	h := &Heading{}
	h.v.Store(uint32(d))
	return h
}

// Load returns an instantaneous snapshot of the heading
func (h *Heading) Load() core.Direction {
	return core.Direction(h.v.Load())
}

// TurnLeft rotates the heading a quarter turn counter-clockwise
func (h *Heading) TurnLeft() {
	h.turn(core.Direction.TurnLeft)
}

// TurnRight rotates the heading a quarter turn clockwise
func (h *Heading) TurnRight() {
	h.turn(core.Direction.TurnRight)
}

func (h *Heading) turn(fn func(core.Direction) core.Direction) {
	for {
		old := h.v.Load()
		next := uint32(fn(core.Direction(old)))
		if h.v.CompareAndSwap(old, next) {
			return
		}
	}
}
