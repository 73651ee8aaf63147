package powder

import "testing"

func TestSandFallsOneCellPerTick(t *testing.T) {
	w := New(5, 5)
	w.SetCellAt(2, 0, Cell{Mat: Sand})

	w.Step()
	if w.CellAt(2, 0).Mat != Empty || w.CellAt(2, 1).Mat != Sand {
		t.Fatal("sand should fall exactly one cell on the first tick")
	}
	w.Step()
	if w.CellAt(2, 1).Mat != Empty || w.CellAt(2, 2).Mat != Sand {
		t.Fatal("sand should fall exactly one cell on the second tick")
	}
}

func TestSandRestsOnFloor(t *testing.T) {
	w := New(1, 4)
	w.SetCellAt(0, 0, Cell{Mat: Sand})
	for i := 0; i < 10; i++ {
		w.Step()
	}
	if w.CellAt(0, 3).Mat != Sand {
		t.Fatal("sand should settle on the bottom row")
	}
	if got := w.Census().Count(Sand); got != 1 {
		t.Fatalf("sand count = %d, want 1", got)
	}
}

func TestPowderSinksThroughLiquid(t *testing.T) {
	w := New(1, 3)
	w.SetCellAt(0, 1, Cell{Mat: Sand})
	w.SetCellAt(0, 2, Cell{Mat: Water})

	w.Step()
	if w.CellAt(0, 2).Mat != Sand {
		t.Fatalf("sand should displace the water below, got %s", w.CellAt(0, 2).Mat.Name())
	}
	if w.CellAt(0, 1).Mat != Water {
		t.Fatalf("water should surface, got %s", w.CellAt(0, 1).Mat.Name())
	}
}

func TestLiquidDensitySorting(t *testing.T) {
	w := New(1, 3)
	w.SetCellAt(0, 1, Cell{Mat: Water})
	w.SetCellAt(0, 2, Cell{Mat: Oil})

	w.Step()
	if w.CellAt(0, 2).Mat != Water || w.CellAt(0, 1).Mat != Oil {
		t.Fatalf("water should sink below oil, got %s over %s",
			w.CellAt(0, 1).Mat.Name(), w.CellAt(0, 2).Mat.Name())
	}
}

func TestGasRisesToCeiling(t *testing.T) {
	w := New(1, 4)
	w.SetCellAt(0, 3, Cell{Smoke, 200})

	for i := 0; i < 3; i++ {
		w.Step()
	}
	if w.CellAt(0, 0).Mat != Smoke {
		t.Fatalf("smoke should reach the top row, got %s", w.CellAt(0, 0).Mat.Name())
	}
}

func TestGasExpiresAtSource(t *testing.T) {
	w := New(1, 1)
	w.SetCellAt(0, 0, Cell{Chlorine, 2})

	w.Step()
	if w.CellAt(0, 0).Mat != Chlorine {
		t.Fatal("chlorine should survive while its lifetime is positive")
	}
	w.Step()
	if got := w.CellAt(0, 0).Mat; got != Empty {
		t.Fatalf("expired chlorine = %s, want Empty", got.Name())
	}
}

func TestWaterExtinguishesFire(t *testing.T) {
	w := New(3, 3)
	for x := 0; x < 3; x++ {
		w.SetCellAt(x, 2, Cell{Mat: Wall})
	}
	w.SetCellAt(0, 1, Cell{Mat: Water})
	w.SetCellAt(1, 1, Cell{Fire, 30})

	w.Step()
	if got := w.Census().Count(Fire); got != 0 {
		t.Fatalf("fire cells after contact with water = %d, want 0", got)
	}
}

func TestWaterLavaMakesStone(t *testing.T) {
	w := New(3, 3)
	for x := 0; x < 3; x++ {
		w.SetCellAt(x, 2, Cell{Mat: Wall})
	}
	w.SetCellAt(0, 1, Cell{Mat: Water})
	w.SetCellAt(1, 1, Cell{Mat: Lava})

	w.Step()
	if got := w.CellAt(1, 1).Mat; got != Stone {
		t.Fatalf("lava touched by water = %s, want Stone", got.Name())
	}
	if got := w.CellAt(0, 1).Mat; got != Steam && got != Stone {
		t.Fatalf("quenching water = %s, want Steam or Stone", got.Name())
	}
}

func TestAcidDissolvesWood(t *testing.T) {
	w := New(3, 3)
	for x := 0; x < 3; x++ {
		w.SetCellAt(x, 2, Cell{Mat: Wall})
	}
	w.SetCellAt(0, 1, Cell{Mat: Acid})
	w.SetCellAt(1, 1, Cell{Mat: Wood})

	w.Step()
	if got := w.CellAt(1, 1).Mat; got == Wood {
		t.Fatal("acid should dissolve the adjacent wood in one tick")
	} else if got != Empty && got != ToxicGas {
		t.Fatalf("dissolved wood = %s, want Empty or ToxicGas", got.Name())
	}
}

func TestLavaCoolsToStone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 1
	cfg.Height = 1
	cfg.Params.LavaCoolTicks = 3
	w := NewWithConfig(cfg)
	w.SetCellAt(0, 0, Cell{Mat: Lava})

	for i := 0; i < 3; i++ {
		w.Step()
		if w.CellAt(0, 0).Mat != Lava {
			t.Fatalf("lava hardened after %d ticks, want 4", i+1)
		}
	}
	w.Step()
	if got := w.CellAt(0, 0).Mat; got != Stone {
		t.Fatalf("cooled lava = %s, want Stone", got.Name())
	}
}

func TestLavaVitrifiesSand(t *testing.T) {
	w := New(3, 3)
	for x := 0; x < 3; x++ {
		w.SetCellAt(x, 2, Cell{Mat: Wall})
	}
	w.SetCellAt(0, 1, Cell{Mat: Lava})
	w.SetCellAt(1, 1, Cell{Mat: Wall})
	w.SetCellAt(0, 0, Cell{Mat: Sand})

	// The sand sits on the lava and cannot move, so the lava's neighbor
	// pass turns it to glass.
	w.Step()
	if got := w.CellAt(0, 0).Mat; got != Glass {
		t.Fatalf("sand above lava = %s, want Glass", got.Name())
	}
}

func TestWaterHydratesDirt(t *testing.T) {
	w := New(2, 1)
	w.SetCellAt(0, 0, Cell{Mat: Dirt})
	w.SetCellAt(1, 0, Cell{Mat: Water})

	w.Step()
	got := w.CellAt(0, 0)
	if got.Mat != WetDirt {
		t.Fatalf("dirt next to water = %s, want WetDirt", got.Mat.Name())
	}
	if got.Life != int32(w.cfg.Params.WetDirtLife) {
		t.Fatalf("wet dirt life = %d, want %d", got.Life, w.cfg.Params.WetDirtLife)
	}
}

func TestElectrifiedWaterChargeGradient(t *testing.T) {
	w := New(3, 1)
	w.SetCellAt(0, 0, Cell{Water, 9})
	w.SetCellAt(1, 0, Cell{Mat: Water})
	w.SetCellAt(2, 0, Cell{Mat: Water})

	w.Step()
	wantLives := [3]int32{8, 7, 6}
	for x, want := range wantLives {
		got := w.CellAt(x, 0)
		if got.Mat != Water || got.Life != want {
			t.Fatalf("cell %d = %s life %d, want Water life %d", x, got.Mat.Name(), got.Life, want)
		}
		if w.Cells()[x]&displayChargedBit == 0 {
			t.Fatalf("cell %d should carry the charged display bit", x)
		}
	}
}

func TestElectrifiedWaterKillsActors(t *testing.T) {
	w := New(3, 1)
	w.SetCellAt(0, 0, Cell{Water, 5})
	w.SetCellAt(1, 0, Cell{Mat: Human})

	w.Step()
	if got := w.CellAt(1, 0).Mat; got != Ash {
		t.Fatalf("human in charged water = %s, want Ash", got.Name())
	}
}

func TestSnowMeltsNearHeat(t *testing.T) {
	w := New(2, 1)
	w.SetCellAt(0, 0, Cell{Mat: Snow})
	w.SetCellAt(1, 0, Cell{Fire, 50})

	w.Step()
	if got := w.CellAt(0, 0).Mat; got != Water {
		t.Fatalf("snow next to fire = %s, want Water", got.Name())
	}
}

func TestSandSeedsSeaweedUnderWater(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 1
	cfg.Height = 2
	cfg.Params.SeaweedSoakTicks = 3
	w := NewWithConfig(cfg)
	w.SetCellAt(0, 0, Cell{Mat: Water})
	w.SetCellAt(0, 1, Cell{Mat: Sand})

	for i := 0; i < 4; i++ {
		w.Step()
	}
	if got := w.CellAt(0, 0).Mat; got != Seaweed {
		t.Fatalf("cell above soaked sand = %s, want Seaweed", got.Name())
	}
	if got := w.CellAt(0, 1).Mat; got != Sand {
		t.Fatalf("soaked sand = %s, want Sand", got.Name())
	}
}
