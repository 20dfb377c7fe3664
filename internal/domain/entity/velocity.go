package entity

import "github.com/go-gl/mathgl/mgl64"

// VelocityState is the motion integrator's persistent state, in world units
// per second.
type VelocityState struct {
	Horizontal float64
	Vertical   float64
	ApexFactor float64 // 0 far from the jump apex, 1 at it
	FallSpeed  float64 // current gravity acceleration while airborne
}

// Vec returns (Horizontal, Vertical).
func (v VelocityState) Vec() mgl64.Vec2 {
	return mgl64.Vec2{v.Horizontal, v.Vertical}
}

// Frame is the read-only per-tick signal for cosmetic consumers
// (animation, particles, audio).
type Frame struct {
	Grounded        bool
	JustLanded      bool
	JustJumped      bool
	RawVelocity     mgl64.Vec2
	HorizontalInput float64
}
