// randomgen.go

package main

// Linear congruential generator parameters (Borland/Delphi constants,
// modulus 2^32). The generator is fully deterministic for a given seed.
const (
	lcgMultiplier uint64 = 134775813
	lcgIncrement  uint64 = 1
	lcgModulus    uint64 = 1 << 32
)

// RandomGen is a deterministic pseudo-random integer generator. A single
// instance should live for the whole lifetime of its owner; reseeding per
// call collapses the sequence to a function of the seed alone.
type RandomGen struct {
	seed uint64
}

// NewRandomGen returns a generator starting from the given seed.
func NewRandomGen(seed uint64) *RandomGen {
	return &RandomGen{seed: seed % lcgModulus}
}

func (r *RandomGen) next() uint64 {
	r.seed = (lcgMultiplier*r.seed + lcgIncrement) % lcgModulus
	return r.seed
}

// Randint returns a value uniformly distributed in [1, k]. It draws five
// raw values, keeps the 16 most significant of each value's low 32 bits,
// and takes the bitwise majority of the five 16-bit words before reducing
// modulo k. Cost is constant and independent of k.
func (r *RandomGen) Randint(k int) int {
	var draws [5]uint64
	for i := range draws {
		draws[i] = r.next() >> 16
	}

	majority := 0
	for bit := 0; bit < 16; bit++ {
		ones := 0
		for i := range draws {
			if draws[i]&1 == 1 {
				ones++
			}
			draws[i] >>= 1
		}
		if ones >= 3 {
			majority |= 1 << bit
		}
	}

	return majority%k + 1
}
