package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// cornerBufferMargin keeps every ray range at least this wide on each side
	// of the box center.
	cornerBufferMargin = 0.01
	maxExtraRays       = 50
)

// ErrInvalidSize is returned when the collider has no area.
var ErrInvalidSize = errors.New("config: collider size must be positive")

// Clamp limits the ray-fan settings to ranges that always produce a valid
// sampling range: corner buffers to [0, half extent - margin], ray distance
// to [0, 1], extra rays to [0, 50].
func (c *ColliderConfig) Clamp() {
	halfX := math.Max(c.Size.X*0.5-cornerBufferMargin, 0)
	halfY := math.Max(c.Size.Y*0.5-cornerBufferMargin, 0)

	c.JumpCornerBuffer = mgl64.Clamp(c.JumpCornerBuffer, 0, halfX)
	c.GroundCornerBuffer = mgl64.Clamp(c.GroundCornerBuffer, 0, halfX)
	c.HeadCornerBuffer = mgl64.Clamp(c.HeadCornerBuffer, 0, halfY)
	c.StairsCornerBuffer = mgl64.Clamp(c.StairsCornerBuffer, 0, halfY)
	c.RayDistance = mgl64.Clamp(c.RayDistance, 0, 1)
	if c.ExtraRays < 0 {
		c.ExtraRays = 0
	}
	if c.ExtraRays > maxExtraRays {
		c.ExtraRays = maxExtraRays
	}
}

// Validate reports problems that cannot be clamped away.
func (c *ControllerConfig) Validate() error {
	if c.Collider.Size.X <= 0 || c.Collider.Size.Y <= 0 {
		return fmt.Errorf("%w: got %vx%v", ErrInvalidSize, c.Collider.Size.X, c.Collider.Size.Y)
	}
	if c.Gravity.MinFallSpeed < 0 || c.Gravity.MaxFallSpeed < 0 {
		return fmt.Errorf("config: fall speeds must not be negative (min %v, max %v)",
			c.Gravity.MinFallSpeed, c.Gravity.MaxFallSpeed)
	}
	if c.Input.JumpBuffer < 0 || c.Input.CoyoteTime < 0 {
		return fmt.Errorf("config: input windows must not be negative (buffer %v, coyote %v)",
			c.Input.JumpBuffer, c.Input.CoyoteTime)
	}
	return nil
}

// Normalize clamps every recoverable setting and then validates the rest.
func (c *ControllerConfig) Normalize() error {
	c.Collider.Clamp()
	if c.Move.Iterations < 1 {
		c.Move.Iterations = 1
	}
	c.Gravity.FallClamp = math.Abs(c.Gravity.FallClamp)
	return c.Validate()
}
