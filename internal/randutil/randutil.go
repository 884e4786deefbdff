package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every seeded source in the module goes through here so that a seed printed
// in a log line always replays the same deck.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Default returns a *rand.Rand backed by the runtime's unseeded global
// generator. Used when no seed is configured.
func Default() *rand.Rand {
	return rand.New(runtimeSource{})
}

// Seed picks a fresh seed from the global generator, so that an unseeded run
// can still log the seed it used.
func Seed() int64 {
	return rand.Int64()
}

type runtimeSource struct{}

func (runtimeSource) Uint64() uint64 { return rand.Uint64() }

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
