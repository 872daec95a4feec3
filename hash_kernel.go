package gobloom

import (
	"fmt"

	"github.com/dchest/siphash"
	"github.com/decred/dcrd/crypto/rand"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Kernel selects the seeded hash family used to derive bit positions.
type Kernel int

const (
	// Murmur3 is 64-bit MurmurHash3 seeded with the low 32 bits of the seed.
	Murmur3 Kernel = iota

	// XXH3 is 64-bit XXH3 seeded with the first seed word.
	XXH3

	// SipHash is SipHash-2-4 keyed with the full 128-bit seed.
	SipHash
)

// Seed is the 128-bit key of one seeded hasher. Kernels with a narrower
// seed use its low bits.
type Seed struct {
	K0, K1 uint64
}

func randomSeed() Seed {
	return Seed{K0: rand.Uint64(), K1: rand.Uint64()}
}

func (k Kernel) valid() bool {
	return k >= Murmur3 && k <= SipHash
}

// Hash data with a fresh digest keyed by seed.
func (k Kernel) sum64(seed Seed, data []byte) uint64 {
	switch k {
	case XXH3:
		return xxh3.HashSeed(data, seed.K0)
	case SipHash:
		return siphash.Hash(seed.K0, seed.K1, data)
	default:
		return murmur3.Sum64WithSeed(data, uint32(seed.K0))
	}
}

func (k Kernel) String() string {
	switch k {
	case Murmur3:
		return "murmur3"
	case XXH3:
		return "xxh3"
	case SipHash:
		return "siphash"
	}
	return fmt.Sprintf("Kernel(%d)", int(k))
}
