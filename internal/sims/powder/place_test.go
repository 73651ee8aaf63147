package powder

import "testing"

func TestBrushFillsCircle(t *testing.T) {
	w := New(9, 9)
	w.PlaceBrush(4, 4, 2, Sand)

	if got := w.Census().Count(Sand); got != 13 {
		t.Fatalf("sand cells = %d, want 13", got)
	}
	if w.CellAt(2, 2).Mat != Empty {
		t.Fatal("brush should not reach outside its radius")
	}
	if w.Cells()[4*9+4] != uint8(Sand) {
		t.Fatal("brush did not refresh the display buffer")
	}
}

func TestBrushClipsAtEdges(t *testing.T) {
	w := New(4, 4)
	w.PlaceBrush(0, 0, 3, Stone)
	if got := w.Census().Count(Stone); got == 0 || got > 16 {
		t.Fatalf("clipped brush placed %d cells", got)
	}
}

func TestBrushAssignsLifetimes(t *testing.T) {
	w := New(5, 5)
	w.PlaceBrush(2, 2, 0, Fire)
	if got := w.CellAt(2, 2); got.Mat != Fire || got.Life != int32(w.cfg.Params.BrushFireLife) {
		t.Fatalf("brushed fire = %+v", got)
	}

	w.Clear()
	w.PlaceBrush(2, 2, 0, Steam)
	if got := w.CellAt(2, 2); got.Mat != Steam || got.Life != int32(w.cfg.Params.BrushGasLife) {
		t.Fatalf("brushed steam = %+v", got)
	}

	w.Clear()
	w.PlaceBrush(2, 2, 0, Stone)
	if got := w.CellAt(2, 2); got.Mat != Stone || got.Life != 0 {
		t.Fatalf("brushed stone = %+v", got)
	}
}

func TestExplosionSparesBlastProofMaterials(t *testing.T) {
	w := New(7, 1)
	proof := []Material{Wall, Stone, Glass, Metal, Wire, Ice}
	for i, m := range proof {
		w.SetCellAt(i, 0, Cell{Mat: m})
	}
	w.SetCellAt(6, 0, Cell{Mat: Sand})

	w.explode(3, 0, 6)

	for i, m := range proof {
		if got := w.CellAt(i, 0).Mat; got != m {
			t.Fatalf("blast-proof %s became %s", m.Name(), got.Name())
		}
	}
	if got := w.CellAt(6, 0).Mat; got != Fire && got != Smoke && got != Gas {
		t.Fatalf("sand in blast = %s, want Fire, Smoke or Gas", got.Name())
	}
}

func TestExplosionProductMix(t *testing.T) {
	w := New(21, 21)
	w.explode(10, 10, 9)

	c := w.Census()
	fire, smoke, gas := c.Count(Fire), c.Count(Smoke), c.Count(Gas)
	if fire == 0 || smoke == 0 || gas == 0 {
		t.Fatalf("explosion mix fire=%d smoke=%d gas=%d, want all present", fire, smoke, gas)
	}
	if fire+smoke+gas != c.NonEmpty() {
		t.Fatal("explosion should only produce fire, smoke and gas")
	}
	if w.CellAt(0, 0).Mat != Empty {
		t.Fatal("explosion reached outside its radius")
	}
}
