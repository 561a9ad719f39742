package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec4 is a four component vector. Colors use it with W as the alpha channel.
type Vec4 struct {
	X, Y, Z, W float64
}

// Color is an RGBA color with components nominally in [0, 1]
type Color = Vec4

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewColor creates an RGBA color
func NewColor(r, g, b, a float64) Color {
	return Vec4{X: r, Y: g, Z: b, W: a}
}

// Black is opaque black, the contribution of absorbed or terminated paths
var Black = NewColor(0, 0, 0, 1)

// White is opaque white
var White = NewColor(1, 1, 1, 1)

// Add returns the sum of two vectors
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Subtract returns the difference of two vectors
func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Multiply returns the vector scaled by a scalar
func (v Vec4) Multiply(scalar float64) Vec4 {
	return Vec4{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec4) Divide(scalar float64) Vec4 {
	return Vec4{v.X / scalar, v.Y / scalar, v.Z / scalar, v.W / scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec4) MultiplyVec(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Dot returns the dot product of two vectors
func (v Vec4) Dot(other Vec4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Equals compares two vectors component by component without tolerance
func (v Vec4) Equals(other Vec4) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec4) Clamp(minVal, maxVal float64) Vec4 {
	return Vec4{
		X: Clamp(v.X, minVal, maxVal),
		Y: Clamp(v.Y, minVal, maxVal),
		Z: Clamp(v.Z, minVal, maxVal),
		W: Clamp(v.W, minVal, maxVal),
	}
}

// GammaSqrt applies gamma 2 correction to the color channels, leaving alpha alone
func (v Vec4) GammaSqrt() Vec4 {
	return Vec4{
		X: math.Sqrt(math.Max(0, v.X)),
		Y: math.Sqrt(math.Max(0, v.Y)),
		Z: math.Sqrt(math.Max(0, v.Z)),
		W: v.W,
	}
}

// Lerp linearly interpolates from v (t=0) to other (t=1)
func (v Vec4) Lerp(other Vec4, t float64) Vec4 {
	return v.Multiply(1 - t).Add(other.Multiply(t))
}

// RGB drops the alpha channel
func (v Vec4) RGB() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Clamp returns value limited to [low, high]
func Clamp[T constraints.Ordered](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
