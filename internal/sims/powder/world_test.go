package powder

import (
	"slices"
	"testing"

	"powder-ca/internal/core"
)

func TestNewWorldStartsEmpty(t *testing.T) {
	w := New(8, 6)
	if w.Width() != 8 || w.Height() != 6 {
		t.Fatalf("dimensions = %dx%d, want 8x6", w.Width(), w.Height())
	}
	cells := w.Cells()
	if len(cells) != 48 {
		t.Fatalf("display buffer length = %d, want 48", len(cells))
	}
	for i, b := range cells {
		if b != uint8(Empty) {
			t.Fatalf("cell %d starts as %d, want Empty", i, b)
		}
	}
}

func TestSetCellAtUpdatesDisplay(t *testing.T) {
	w := New(5, 5)
	if !w.SetCellAt(2, 3, Cell{Water, 5}) {
		t.Fatal("in-bounds SetCellAt rejected")
	}
	if got := w.CellAt(2, 3); got.Mat != Water || got.Life != 5 {
		t.Fatalf("CellAt = %+v, want charged water", got)
	}
	want := uint8(Water) | displayChargedBit
	if got := w.Cells()[3*5+2]; got != want {
		t.Fatalf("display byte = %#x, want %#x", got, want)
	}
	if w.SetCellAt(-1, 0, Cell{Mat: Sand}) || w.SetCellAt(5, 0, Cell{Mat: Sand}) {
		t.Fatal("out-of-bounds SetCellAt accepted")
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	w := New(3, 3)
	w.SetCellAt(0, 0, Cell{Mat: Wall})
	if got := w.CellAt(-1, 0); got != (Cell{}) {
		t.Fatalf("out-of-bounds CellAt = %+v, want zero cell", got)
	}
	if got := w.CellAt(0, 3); got != (Cell{}) {
		t.Fatalf("out-of-bounds CellAt = %+v, want zero cell", got)
	}
}

func TestResetClearsState(t *testing.T) {
	w := New(6, 6)
	w.PlaceBrush(3, 1, 1, Sand)
	for i := 0; i < 4; i++ {
		w.Step()
	}
	if w.Tick() == 0 {
		t.Fatal("steps did not advance the tick counter")
	}

	w.Reset(0)
	if w.Tick() != 0 {
		t.Fatalf("tick after reset = %d, want 0", w.Tick())
	}
	if got := w.Census().NonEmpty(); got != 0 {
		t.Fatalf("%d occupied cells after reset, want 0", got)
	}
}

func TestResizeReallocates(t *testing.T) {
	w := New(8, 8)
	w.SetCellAt(7, 7, Cell{Mat: Stone})
	w.Resize(4, 3)
	if s := w.Size(); s.W != 4 || s.H != 3 {
		t.Fatalf("size after resize = %+v, want 4x3", s)
	}
	if len(w.Cells()) != 12 {
		t.Fatalf("display length = %d, want 12", len(w.Cells()))
	}
	if got := w.Census().NonEmpty(); got != 0 {
		t.Fatalf("resize should discard content, found %d cells", got)
	}
}

func TestZeroSizedWorldSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = -3
	cfg.Height = 10
	w := NewWithConfig(cfg)
	if w.Width() != 0 {
		t.Fatalf("negative width clamps to 0, got %d", w.Width())
	}
	w.Step()
	if w.CellAt(0, 0) != (Cell{}) {
		t.Fatal("zero-sized world should stay empty")
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["powder"]
	if !ok {
		t.Fatal("powder sim not registered")
	}
	sim := factory(map[string]string{"w": "10", "h": "12", "seed": "7"})
	if s := sim.Size(); s.W != 10 || s.H != 12 {
		t.Fatalf("factory size = %+v, want 10x12", s)
	}
	if sim.Name() != "powder" {
		t.Fatalf("factory name = %q", sim.Name())
	}
}

func TestStepDeterminism(t *testing.T) {
	build := func() *World {
		cfg := DefaultConfig()
		cfg.Width = 48
		cfg.Height = 32
		cfg.Seed = 99
		w := NewWithConfig(cfg)
		w.Reset(0)
		for x := 0; x < w.Width(); x++ {
			w.PlaceBrush(x, w.Height()-2, 0, Sand)
		}
		w.PlaceBrush(10, 2, 3, Water)
		w.PlaceBrush(24, 2, 2, Fire)
		w.PlaceBrush(36, 2, 2, Oil)
		w.PlaceBrush(18, 20, 1, Human)
		w.PlaceBrush(30, 20, 1, Zombie)
		return w
	}

	a, b := build(), build()
	for i := 0; i < 60; i++ {
		a.Step()
		b.Step()
	}

	cellsA := make([]Cell, a.Width()*a.Height())
	cellsB := make([]Cell, b.Width()*b.Height())
	a.Export(cellsA)
	b.Export(cellsB)
	if !slices.Equal(cellsA, cellsB) {
		t.Fatal("identical seeds and input diverged")
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("display buffers diverged")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	build := func(seed int64) *World {
		cfg := DefaultConfig()
		cfg.Width = 32
		cfg.Height = 24
		cfg.Seed = seed
		w := NewWithConfig(cfg)
		w.Reset(0)
		w.PlaceBrush(16, 2, 4, Sand)
		w.PlaceBrush(16, 10, 4, Water)
		return w
	}

	a, b := build(1), build(2)
	for i := 0; i < 40; i++ {
		a.Step()
		b.Step()
	}

	cellsA := make([]Cell, a.Width()*a.Height())
	cellsB := make([]Cell, b.Width()*b.Height())
	a.Export(cellsA)
	b.Export(cellsB)
	if slices.Equal(cellsA, cellsB) {
		t.Fatal("different seeds should diverge")
	}
}
