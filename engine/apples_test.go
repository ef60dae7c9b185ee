package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/snake/core"
)

func TestTargetCount(t *testing.T) {
	tests := []struct {
		w, h, length int
		density      float64
		want         int
	}{
		{10, 10, 7, 0.3, 4},   // 13 * 0.3 = 3.9
		{20, 20, 5, 0.3, 11},  // 35 * 0.3 = 10.5
		{100, 50, 7, 0.3, 43}, // 143 * 0.3 = 42.9
		{10, 10, 7, 0, 0},
		{3, 3, 9, 0.5, 0}, // negative base clamps to zero
	}
	for _, tt := range tests {
		if got := TargetCount(tt.w, tt.h, tt.length, tt.density); got != tt.want {
			t.Errorf("TargetCount(%d, %d, %d, %g) = %d, want %d", tt.w, tt.h, tt.length, tt.density, got, tt.want)
		}
	}
}

func assertDisjoint(t *testing.T, f *AppleField, s *Snake) {
	t.Helper()
	for _, p := range f.Positions() {
		if s.Occupies(p) {
			t.Fatalf("apple %v overlaps the snake", p)
		}
	}
}

func TestAppleField_SpawnInitialDisjoint(t *testing.T) {
	grid := core.Grid(20, 20)
	for seed := uint64(1); seed <= 25; seed++ {
		s := NewSnake(core.Point{X: 0, Y: 10}, 5, core.Right)
		f := NewAppleField(grid, 0.3, NewRandom(seed))

		if err := f.SpawnInitial(11, s); err != nil {
			t.Fatalf("seed %d: SpawnInitial: %v", seed, err)
		}
		if f.Len() != 11 {
			t.Fatalf("seed %d: %d apples, want 11", seed, f.Len())
		}
		assertDisjoint(t, f, s)

		for i := 0; i < 5; i++ {
			f.Remove(f.Positions()[0])
			s.Step(core.Right, true)
			if _, _, err := f.Replenish(s); err != nil {
				t.Fatalf("seed %d: Replenish: %v", seed, err)
			}
			assertDisjoint(t, f, s)
		}
	}
}

func TestAppleField_RemoveIsExact(t *testing.T) {
	f := NewAppleField(core.Grid(5, 5), 0, &scriptedRandom{})
	f.apples[core.Point{X: 1, Y: 1}] = struct{}{}
	f.apples[core.Point{X: 2, Y: 2}] = struct{}{}

	if f.Remove(core.Point{X: 3, Y: 3}) {
		t.Error("Remove of absent apple reported true")
	}
	if !f.Remove(core.Point{X: 1, Y: 1}) {
		t.Error("Remove of present apple reported false")
	}
	if f.Len() != 1 || !f.Has(core.Point{X: 2, Y: 2}) {
		t.Errorf("field after remove = %v", f.Positions())
	}
}

func TestAppleField_SamplingFallsBackToFreeCells(t *testing.T) {
	// Sampler is stuck on (0,0), which the snake holds
	rng := &scriptedRandom{vals: []int{0}}
	s := NewSnake(core.Point{X: 0, Y: 0}, 2, core.Right)
	f := NewAppleField(core.Grid(3, 1), 1, rng)

	p, added, err := f.Replenish(s)
	if err != nil || !added {
		t.Fatalf("Replenish = %v, %v, %v", p, added, err)
	}
	if p != (core.Point{X: 2, Y: 0}) {
		t.Errorf("placed at %v, want the only free cell (2,0)", p)
	}
	if rng.calls > maxSampleAttempts*2+1 {
		t.Errorf("sampling was not bounded: %d draws", rng.calls)
	}
}

func TestAppleField_SaturationReportsNoFreeCell(t *testing.T) {
	s := NewSnake(core.Point{X: 0, Y: 0}, 2, core.Right)
	f := NewAppleField(core.Grid(3, 1), 1, NewRandom(7))

	err := f.SpawnInitial(5, s)
	if !errors.Is(err, ErrNoFreeCell) {
		t.Fatalf("SpawnInitial error = %v, want ErrNoFreeCell", err)
	}
	if f.Len() != 1 {
		t.Errorf("placed %d apples, want the single free cell filled", f.Len())
	}

	// Force a refill attempt on the now-full board
	f.density = 10
	if _, added, err := f.Replenish(s); added || !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Replenish on full board = %v, %v", added, err)
	}
}

func TestAppleField_ReplenishPolicy(t *testing.T) {
	grid := core.Grid(10, 10)

	t.Run("target not above count adds nothing", func(t *testing.T) {
		s := NewSnake(core.Point{X: 0, Y: 5}, 3, core.Right)
		// (20 - 3) * 0.1 = 1.7 -> 2
		f := NewAppleField(grid, 0.1, NewRandom(3))
		f.apples[core.Point{X: 1, Y: 1}] = struct{}{}
		f.apples[core.Point{X: 2, Y: 2}] = struct{}{}

		if _, added, err := f.Replenish(s); added || err != nil {
			t.Errorf("Replenish = %v, %v; want nothing added", added, err)
		}
		if f.Len() != 2 {
			t.Errorf("Len() = %d, want 2", f.Len())
		}
	})

	t.Run("target above count adds exactly one", func(t *testing.T) {
		s := NewSnake(core.Point{X: 0, Y: 5}, 3, core.Right)
		// (20 - 3) * 0.3 = 5.1 -> 5
		f := NewAppleField(grid, 0.3, NewRandom(3))
		f.apples[core.Point{X: 1, Y: 1}] = struct{}{}

		p, added, err := f.Replenish(s)
		if !added || err != nil {
			t.Fatalf("Replenish = %v, %v; want one added", added, err)
		}
		if f.Len() != 2 || !f.Has(p) {
			t.Errorf("Len() = %d, has new apple = %v", f.Len(), f.Has(p))
		}
		assertDisjoint(t, f, s)
	})

	t.Run("zero target still keeps one apple", func(t *testing.T) {
		s := NewSnake(core.Point{X: 0, Y: 5}, 3, core.Right)
		f := NewAppleField(grid, 0, NewRandom(3))

		if _, added, _ := f.Replenish(s); !added {
			t.Error("empty field with zero target should still receive one apple")
		}
		if _, added, _ := f.Replenish(s); added {
			t.Error("second replenish should be a no-op")
		}
	})
}
