package core

// rngZeroSeed replaces a zero seed, which would otherwise collapse the
// low bits of this LCG into a degenerate cycle.
const rngZeroSeed = 0xDEADBEEFCAFEBABE

// RNG is a small self-contained linear-congruential generator. The engine
// depends on the exact output sequence for reproducible simulations, so the
// generator is hand-rolled rather than delegated to math/rand.
type RNG struct {
	state uint64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint64) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// Seed resets the generator state. A zero seed is remapped to a fixed
// non-zero constant.
func (r *RNG) Seed(seed uint64) {
	if seed == 0 {
		seed = rngZeroSeed
	}
	r.state = seed
}

// NextU32 advances the state once and returns its upper bits.
func (r *RNG) NextU32() uint32 {
	r.state = r.state*1664525 + 1013904223
	return uint32(r.state >> 16)
}

// RangeInt returns a value in the inclusive range [min, max].
func (r *RNG) RangeInt(min, max int) int {
	span := max - min + 1
	if span < 1 {
		span = 1
	}
	return min + int(r.NextU32()%uint32(span))
}

// Chance reports true with the given percentage probability. Values of 0 and
// >=100 short-circuit without advancing the state.
func (r *RNG) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return r.NextU32()%100 < uint32(pct)
}
