package influence

import (
	"math/rand/v2"
)

// Source supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// golden is the 64-bit golden ratio, used to spread stream numbers apart.
const golden = 0x9E3779B97F4A7C15

// NewRand returns a seeded PCG generator
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^golden))
}

// TrialRand returns the generator for one trial of one stream. The result only
// depends on (base, stream, trial), so trial outcomes do not depend on which
// worker runs them or in which order.
func TrialRand(base, stream uint64, trial int) *rand.Rand {
	return rand.New(rand.NewPCG(base^(stream*golden), uint64(trial)))
}
