package wolff

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext/prng"
)

// DefaultSeed is the seed a Sampler starts from when WithSeed is not given.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed uint64 = 1

// MT19937 returns a 64-bit-output Mersenne Twister seeded with seed, wrapped
// in a math/rand/v2 Rand for bounded integer and float draws.
// The wrapper holds no state of its own, so the stream is fully determined
// by seed.
//
// Complexity: O(1) amortized per draw; seeding is O(624).
func MT19937(seed uint64) Source {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return rand.New(mt)
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed,
// so that parallel workers get decorrelated streams from one base seed.
//
// The mix is the SplitMix64 finalizer: small changes in either input produce
// large, well-distributed output changes.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
