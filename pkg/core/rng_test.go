package core

import "testing"

func TestNextU32ReferenceSequence(t *testing.T) {
	cases := []struct {
		seed uint64
		want []uint32
	}{
		{seed: 1, want: []uint32{15496, 24272520, 3754852630, 1074902131, 3993832688, 2370592408, 3615278678, 114855522}},
		{seed: 99, want: []uint32{17985, 4167385627, 1782029068, 2965853469, 3052690750, 3048056106, 2328691762, 620648148}},
	}

	for _, tc := range cases {
		rng := NewRNG(tc.seed)
		for i, want := range tc.want {
			if got := rng.NextU32(); got != want {
				t.Fatalf("seed %d output %d: got %d, want %d", tc.seed, i, got, want)
			}
		}
	}
}

func TestZeroSeedRemapped(t *testing.T) {
	zero := NewRNG(0)
	remapped := NewRNG(rngZeroSeed)
	for i := 0; i < 16; i++ {
		a, b := zero.NextU32(), remapped.NextU32()
		if a != b {
			t.Fatalf("output %d: zero seed produced %d, remapped constant %d", i, a, b)
		}
		if a == 0 && i == 0 {
			t.Fatal("zero seed must not yield the degenerate all-zero sequence")
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := NewRNG(1337)
	b := NewRNG(1337)
	for i := 0; i < 64; i++ {
		if va, vb := a.NextU32(), b.NextU32(); va != vb {
			t.Fatalf("output %d diverged: %d vs %d", i, va, vb)
		}
	}
}

func TestRangeIntBounds(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 200; i++ {
		v := rng.RangeInt(-3, 5)
		if v < -3 || v > 5 {
			t.Fatalf("RangeInt(-3, 5) returned %d", v)
		}
	}
	// Inverted range collapses to min without dividing by zero.
	if v := rng.RangeInt(9, 2); v != 9 {
		t.Fatalf("RangeInt(9, 2) = %d, want 9", v)
	}
}

func TestChanceEdges(t *testing.T) {
	rng := NewRNG(7)
	before := rng.state
	if rng.Chance(0) {
		t.Fatal("Chance(0) must be false")
	}
	if !rng.Chance(100) {
		t.Fatal("Chance(100) must be true")
	}
	if !rng.Chance(150) {
		t.Fatal("Chance(>=100) must be true")
	}
	if rng.state != before {
		t.Fatal("edge-case Chance calls must not advance the state")
	}

	// Mid-range probabilities follow the raw sequence: seed 1 yields
	// next%100 values 96, 20, 30, ...
	rng = NewRNG(1)
	if rng.Chance(50) {
		t.Fatal("first draw for seed 1 is 96, Chance(50) should fail")
	}
	if !rng.Chance(50) {
		t.Fatal("second draw for seed 1 is 20, Chance(50) should pass")
	}
}
