package ssa

// RNG is the 32-bit multiplicative-congruential (Lehmer/Park-Miller)
// generator of spec.md §4.7, grounded on
// _examples/original_source/src/random.py's RANDOM subroutine. It is
// reproduced exactly, including its branchless-modulo structure, so
// that a run seeded identically to the original reproduces the same
// reaction sequence bit for bit (spec.md §9's reproducibility note).
type RNG struct {
	seed int32
}

const (
	lcgA = 16807
	lcgM = 2147483647
	lcgQ = 127773
	lcgR = 2836
)

// NewRNG seeds the generator. A seed of 0 is replaced with 1: the LCG's
// fixed point at 0 would otherwise generate an all-zero stream forever.
func NewRNG(seed int32) *RNG {
	if seed == 0 {
		seed = 1
	}
	return &RNG{seed: seed}
}

// Float64 returns the next value in (0,1], advancing the generator's
// internal state.
func (g *RNG) Float64() float64 {
	hi := g.seed / lcgQ
	lo := g.seed % lcgQ
	test := lcgA*lo - lcgR*hi
	if test > 0 {
		g.seed = test
	} else {
		g.seed = test + lcgM
	}
	return float64(g.seed) / float64(lcgM)
}

// Seed returns the generator's current internal state, for checkpointing.
func (g *RNG) Seed() int32 { return g.seed }
