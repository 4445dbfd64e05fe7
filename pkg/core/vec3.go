package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3D vector or RGB color. Arithmetic comes from mgl32.
type Vec3 = mgl32.Vec3

// Vec2 is a 2D vector
type Vec2 = mgl32.Vec2

// FloatEpsilon is the float32 machine epsilon (2^-23)
const FloatEpsilon float32 = 0x1p-23

// MinNormalFloat is the smallest positive normal float32 (2^-126)
const MinNormalFloat float32 = 0x1p-126

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// MultiplyVec returns the component-wise product of two vectors
func MultiplyVec(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Reflect mirrors v about the surface normal n: v - 2*dot(v,n)*n
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// NearZero reports whether every component is within FloatEpsilon of zero
func NearZero(v Vec3) bool {
	return mgl32.Abs(v[0]) < FloatEpsilon &&
		mgl32.Abs(v[1]) < FloatEpsilon &&
		mgl32.Abs(v[2]) < FloatEpsilon
}

// Sqrt returns the component-wise square root
func Sqrt(v Vec3) Vec3 {
	return Vec3{sqrt32(v[0]), sqrt32(v[1]), sqrt32(v[2])}
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func Clamp(v Vec3, minVal, maxVal float32) Vec3 {
	return Vec3{
		mgl32.Clamp(v[0], minVal, maxVal),
		mgl32.Clamp(v[1], minVal, maxVal),
		mgl32.Clamp(v[2], minVal, maxVal),
	}
}

// Luminance returns the perceptual luminance of an RGB color
// Uses Rec. 709 weights: 0.2126*R + 0.7152*G + 0.0722*B
func Luminance(c Vec3) float32 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}
