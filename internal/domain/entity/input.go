package entity

import "math"

// RawInput is one tick of raw button and axis state from the input source.
type RawInput struct {
	JumpPressed  bool    // jump went down this tick
	JumpReleased bool    // jump went up this tick
	JumpHeld     bool    // jump is currently down
	DashPressed  bool    // dash went down this tick
	Horizontal   float64 // [-1, 1]
	Vertical     float64 // [-1, 1]
}

// Intent is the debounced, immutable per-tick request consumed by the motion
// integrator.
type Intent struct {
	MoveX         float64
	MoveY         float64
	JumpTriggered bool
	JumpHeld      bool
	DashTriggered bool
}

// JumpBufferState is the input buffer's memory across ticks.
type JumpBufferState struct {
	LastPressedAt float64 // -Inf until the first press
	Held          bool
}

// NewJumpBufferState returns a buffer with no recorded press.
func NewJumpBufferState() JumpBufferState {
	return JumpBufferState{LastPressedAt: math.Inf(-1)}
}
