package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// IntentBuffer turns raw per-tick input into an Intent, applying the jump
// buffer (press shortly before landing) and coyote time (press shortly after
// leaving ground).
type IntentBuffer struct {
	config config.InputConfig
	state  entity.JumpBufferState
}

// NewIntentBuffer creates a buffer with no recorded jump press.
func NewIntentBuffer(cfg config.InputConfig) *IntentBuffer {
	return &IntentBuffer{
		config: cfg,
		state:  entity.NewJumpBufferState(),
	}
}

// Gather produces this tick's intent. contacts must already reflect the
// current box pose.
func (b *IntentBuffer) Gather(raw entity.RawInput, contacts entity.ContactSet, now float64) entity.Intent {
	if raw.JumpPressed {
		b.state.LastPressedAt = now
		b.state.Held = true
	}
	if raw.JumpReleased {
		b.state.Held = false
	}

	var jump bool
	if contacts.Grounded() {
		jump = now-b.state.LastPressedAt <= b.config.JumpBuffer
	} else if raw.JumpPressed {
		jump = now-contacts.TimeLastGrounded() <= b.config.CoyoteTime
	}

	return entity.Intent{
		MoveX:         raw.Horizontal,
		MoveY:         raw.Vertical,
		JumpTriggered: jump,
		JumpHeld:      b.state.Held,
		DashTriggered: raw.DashPressed,
	}
}

// State returns the buffer memory.
func (b *IntentBuffer) State() entity.JumpBufferState {
	return b.state
}

// Reset forgets any recorded press.
func (b *IntentBuffer) Reset() {
	b.state = entity.NewJumpBufferState()
}
