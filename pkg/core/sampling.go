package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get2D() Vec2
	Get3D() Vec3
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

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	x := r.random.Float32()
	y := r.random.Float32()
	return Vec2{x, y}
}

// Get3D returns three random float32 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	x := r.random.Float32()
	y := r.random.Float32()
	z := r.random.Float32()
	return Vec3{x, y, z}
}

// UniformFloat returns a scalar in [0, 1)
func UniformFloat(s Sampler) float32 {
	return s.Get1D()
}

// UniformFloatRange returns a scalar in [minVal, maxVal)
func UniformFloatRange(s Sampler, minVal, maxVal float32) float32 {
	return minVal + (maxVal-minVal)*s.Get1D()
}

// UniformVec2 returns a vector with both components in [0, 1)
func UniformVec2(s Sampler) Vec2 {
	return s.Get2D()
}

// UniformVec2Range returns a vector with both components in [minVal, maxVal)
func UniformVec2Range(s Sampler, minVal, maxVal float32) Vec2 {
	x := UniformFloatRange(s, minVal, maxVal)
	y := UniformFloatRange(s, minVal, maxVal)
	return Vec2{x, y}
}

// UniformVec3 returns a vector with every component in [0, 1)
func UniformVec3(s Sampler) Vec3 {
	return s.Get3D()
}

// UniformVec3Range returns a vector with every component in [minVal, maxVal)
func UniformVec3Range(s Sampler, minVal, maxVal float32) Vec3 {
	x := UniformFloatRange(s, minVal, maxVal)
	y := UniformFloatRange(s, minVal, maxVal)
	z := UniformFloatRange(s, minVal, maxVal)
	return Vec3{x, y, z}
}

// SampleOnUnitSphere generates a direction uniformly distributed on the unit sphere.
// Candidates are drawn from the [-1,1]³ cube and rejected until their squared
// length falls in (MinNormalFloat, 1]. About 52% of candidates are accepted.
func SampleOnUnitSphere(s Sampler) Vec3 {
	for {
		if v, ok := tryUnitSphere(s); ok {
			return v
		}
	}
}

// SampleOnUnitSphereBounded is SampleOnUnitSphere with an attempt cap.
// It returns the accepted direction and the number of candidates drawn, or
// fallback after maxAttempts rejections.
func SampleOnUnitSphereBounded(s Sampler, maxAttempts int, fallback Vec3) (Vec3, int) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if v, ok := tryUnitSphere(s); ok {
			return v, attempt
		}
	}
	return fallback, maxAttempts
}

func tryUnitSphere(s Sampler) (Vec3, bool) {
	p := UniformVec3Range(s, -1, 1)
	l := p.Dot(p)
	if MinNormalFloat < l && l <= 1 {
		return p.Mul(1 / sqrt32(l)), true
	}
	return Vec3{}, false
}
