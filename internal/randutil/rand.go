// Package randutil builds the seedable random sources used for shuffling.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Two sources
// built from the same seed produce the same shuffles.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Resolve returns a source for the optional seed. When seed is nil a seed is
// derived from the clock. The seed actually used is returned so a session can
// be replayed.
func Resolve(seed *int64, clock quartz.Clock) (*rand.Rand, int64) {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = clock.Now().UnixNano()
	}
	return New(s), s
}

// Derive returns the seed for the i-th independent run of a batch.
func Derive(base int64, i int) int64 {
	return int64(splitmix(uint64(base) + uint64(i)*goldenRatio64))
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
