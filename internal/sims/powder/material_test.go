package powder

import "testing"

func TestMaterialCategoriesDisjoint(t *testing.T) {
	for m := Material(0); m < materialCount; m++ {
		n := 0
		if m.IsPowder() {
			n++
		}
		if m.IsLiquid() {
			n++
		}
		if m.IsGas() {
			n++
		}
		if n > 1 {
			t.Fatalf("%s belongs to %d movement categories", m.Name(), n)
		}
	}
}

func TestDensityOrdering(t *testing.T) {
	liquids := []Material{Ethanol, Oil, Water, SaltWater, Acid, Lava, Mercury}
	for i := 1; i < len(liquids); i++ {
		lo, hi := liquids[i-1], liquids[i]
		if lo.Density() >= hi.Density() {
			t.Fatalf("%s (%d) should be lighter than %s (%d)",
				lo.Name(), lo.Density(), hi.Name(), hi.Density())
		}
	}
	// ToxicGas keeps the 999 default; gases never consult density for
	// their own movement, only liquids do.
	gasDensities := map[Material]int{
		Gas:      1,
		Hydrogen: 1,
		Steam:    2,
		Smoke:    3,
		Chlorine: 5,
		ToxicGas: 999,
	}
	for m, want := range gasDensities {
		if got := m.Density(); got != want {
			t.Fatalf("%s density = %d, want %d", m.Name(), got, want)
		}
	}
}

func TestMaterialNames(t *testing.T) {
	for m := Material(0); m < materialCount; m++ {
		if m.Name() == "" {
			t.Fatalf("material %d has no name", m)
		}
	}
	if got := Material(200).Name(); got != "Unknown" {
		t.Fatalf("out-of-range material name = %q", got)
	}
}

func TestPaletteIndexChargedWater(t *testing.T) {
	if got := PaletteIndex(Water, 0); got != 3 {
		t.Fatalf("plain water palette index = %d, want 3", got)
	}
	if got := PaletteIndex(Water, 4); got != 9 {
		t.Fatalf("charged water palette index = %d, want 9", got)
	}
	if got := PaletteIndex(SaltWater, 1); got != 9 {
		t.Fatalf("charged salt water palette index = %d, want 9", got)
	}
}

func TestGlyphActorAnimation(t *testing.T) {
	if got := Glyph(Human, 0); got != 'Y' {
		t.Fatalf("human frame 0 glyph = %q", got)
	}
	if got := Glyph(Human, 6); got != 'y' {
		t.Fatalf("human frame 1 glyph = %q", got)
	}
	if got := Glyph(Zombie, 0); got != 'T' {
		t.Fatalf("zombie frame 0 glyph = %q", got)
	}
	if got := Glyph(Zombie, 6); got != 't' {
		t.Fatalf("zombie frame 1 glyph = %q", got)
	}
	if got := Glyph(Empty, 0); got != ' ' {
		t.Fatalf("empty glyph = %q", got)
	}
}
