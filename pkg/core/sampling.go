package core

import "math/rand"

// Sampler provides random sampling for rendering algorithms.
// Each render worker owns its own Sampler; implementations need not be
// safe for concurrent use. Can be swapped out for deterministic testing.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// maxDiskAttempts bounds the rejection loop in RandomInUnitDisk
const maxDiskAttempts = 64

// RandomInUnitDisk rejection-samples a point in the unit disk (z = 0).
// A sampler that keeps landing outside the disk gets the center after
// maxDiskAttempts tries.
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for range maxDiskAttempts {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
	return Vec3{}
}
