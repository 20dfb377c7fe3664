package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Unit directions, Y up.
var (
	Up    = mgl64.Vec2{0, 1}
	Down  = mgl64.Vec2{0, -1}
	Left  = mgl64.Vec2{-1, 0}
	Right = mgl64.Vec2{1, 0}
)

// Lerp interpolates between a and b without clamping t.
func Lerp(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// SafeNormalize returns v scaled to unit length, or false for a zero vector.
func SafeNormalize(v mgl64.Vec2) (mgl64.Vec2, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) {
		return mgl64.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// InverseLerp returns where v lies between a and b, clamped to [0, 1].
// It returns 0 when a == b.
func InverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return Clamp01((v - a) / (b - a))
}

// LerpScalar interpolates between a and b with t clamped to [0, 1].
func LerpScalar(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// MoveTowards moves current towards target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + Sign(target-current)*maxDelta
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return mgl64.Clamp(v, 0, 1)
}

// Sign returns 1 for v >= 0 and -1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
