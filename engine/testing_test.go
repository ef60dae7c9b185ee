package engine

import (
	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/render"
)

// recordingRenderer keeps the last symbol drawn per cell
type recordingRenderer struct {
	x, y    int
	hidden  bool
	cells   map[core.Point]render.Symbol
	moves   []core.Point
	draws   int
	flushes int
	clears  int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{cells: make(map[core.Point]render.Symbol)}
}

func (r *recordingRenderer) Clear() {
	r.clears++
	r.cells = make(map[core.Point]render.Symbol)
	r.x, r.y = 0, 0
}

func (r *recordingRenderer) MoveCursor(x, y int) {
	r.x, r.y = x, y
	r.moves = append(r.moves, core.Point{X: x, Y: y})
}

func (r *recordingRenderer) HideCursor() { r.hidden = true }
func (r *recordingRenderer) ShowCursor() { r.hidden = false }

func (r *recordingRenderer) Draw(s render.Symbol) {
	r.cells[core.Point{X: r.x, Y: r.y}] = s
	r.x++
	r.draws++
}

func (r *recordingRenderer) Flush() { r.flushes++ }

func (r *recordingRenderer) count(s render.Symbol) int {
	n := 0
	for _, v := range r.cells {
		if v == s {
			n++
		}
	}
	return n
}

// scriptedRandom replays values modulo n, repeating the last one when exhausted
type scriptedRandom struct {
	vals  []int
	i     int
	calls int
}

func (s *scriptedRandom) Intn(n int) int {
	s.calls++
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v % n
}

// testConfig returns a small appleless board with the snake on row 5
func testConfig(width, height, length int) config.Config {
	cfg := config.Default()
	cfg.Width = width
	cfg.Height = height
	cfg.Length = length
	cfg.Start = core.Point{X: 0, Y: 5}
	cfg.Heading = core.Right
	cfg.Density = 0
	cfg.Seed = 1
	return cfg
}
