package engine

import (
	"github.com/lixenwraith/snake/core"
)

// Snake is the ordered body, head at the front and tail at the back
// Cells are stored in a ring so both ends move in O(1)
type Snake struct {
	ring  []core.Point
	front int // index of the head in ring
	n     int

	// occupied counts body cells per position; the body may cross itself
	occupied map[core.Point]int
}

// NewSnake lays out length cells starting at tail and running along heading, the last cell being the head
func NewSnake(tail core.Point, length int, heading core.Direction) *Snake {
	s := &Snake{
		ring:     make([]core.Point, max(length, 1)*2),
		occupied: make(map[core.Point]int, length),
	}
	p := tail
	for i := 0; i < length; i++ {
		s.PushFront(p)
		p = p.Add(heading.Offset())
	}
	return s
}

// Len returns the number of body cells
func (s *Snake) Len() int {
	return s.n
}

// Head returns the front cell
func (s *Snake) Head() core.Point {
	return s.ring[s.front]
}

// Tail returns the back cell
func (s *Snake) Tail() core.Point {
	return s.ring[s.index(s.n-1)]
}

// At returns the i-th cell counted from the head
func (s *Snake) At(i int) core.Point {
	return s.ring[s.index(i)]
}

// Cells returns a head-to-tail copy of the body
func (s *Snake) Cells() []core.Point {
	out := make([]core.Point, s.n)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Occupies reports whether any body cell sits on p
func (s *Snake) Occupies(p core.Point) bool {
	return s.occupied[p] > 0
}

// NextHead returns the cell one step from the head along d
func (s *Snake) NextHead(d core.Direction) core.Point {
	return s.Head().Add(d.Offset())
}

// PushFront adds a new head
func (s *Snake) PushFront(p core.Point) {
	if s.n == len(s.ring) {
		s.grow()
	}
	s.front = (s.front - 1 + len(s.ring)) % len(s.ring)
	s.ring[s.front] = p
	s.n++
	s.occupied[p]++
}

// PushBack re-attaches a tail cell
func (s *Snake) PushBack(p core.Point) {
	if s.n == len(s.ring) {
		s.grow()
	}
	s.ring[s.index(s.n)] = p
	s.n++
	s.occupied[p]++
}

// PopBack removes and returns the tail. The body never empties through a move, callers keep n >= 1
func (s *Snake) PopBack() core.Point {
	tail := s.Tail()
	s.n--
	if c := s.occupied[tail] - 1; c > 0 {
		s.occupied[tail] = c
	} else {
		delete(s.occupied, tail)
	}
	return tail
}

// Step advances the body one cell along d and returns the removed tail
// When grow is set the tail stays and ok is false
// The new head is pushed even if it leaves the grid; bounds are judged afterwards
func (s *Snake) Step(d core.Direction, grow bool) (tail core.Point, ok bool) {
	next := s.NextHead(d)
	if !grow {
		tail, ok = s.PopBack(), true
	}
	s.PushFront(next)
	return tail, ok
}

func (s *Snake) index(i int) int {
	return (s.front + i) % len(s.ring)
}

func (s *Snake) grow() {
	ring := make([]core.Point, len(s.ring)*2)
	for i := 0; i < s.n; i++ {
		ring[i] = s.At(i)
	}
	s.ring = ring
	s.front = 0
}
