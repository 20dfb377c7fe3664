package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// DashFunc is the dash extension point. It receives the velocity after the
// jump step and returns the velocity to keep.
type DashFunc func(v entity.VelocityState, intent entity.Intent) entity.VelocityState

// PassThroughDash is the default dash: velocity is returned unchanged.
func PassThroughDash(v entity.VelocityState, _ entity.Intent) entity.VelocityState {
	return v
}

// MotionIntegrator advances horizontal and vertical speed once per tick.
type MotionIntegrator struct {
	walk    config.WalkConfig
	jump    config.JumpConfig
	gravity config.GravityConfig
	dash    DashFunc

	state entity.VelocityState
}

// NewMotionIntegrator creates an integrator at rest.
func NewMotionIntegrator(cfg *config.ControllerConfig) *MotionIntegrator {
	return &MotionIntegrator{
		walk:    cfg.Walk,
		jump:    cfg.Jump,
		gravity: cfg.Gravity,
		dash:    PassThroughDash,
		state:   entity.VelocityState{FallSpeed: cfg.Gravity.MinFallSpeed},
	}
}

// SetDash replaces the dash step; nil restores PassThroughDash.
func (m *MotionIntegrator) SetDash(f DashFunc) {
	if f == nil {
		f = PassThroughDash
	}
	m.dash = f
}

// State returns the current velocity state.
func (m *MotionIntegrator) State() entity.VelocityState {
	return m.state
}

// SetState overwrites the velocity state (used after movement resolution).
func (m *MotionIntegrator) SetState(v entity.VelocityState) {
	m.state = v
}

// Integrate runs walk, apex, gravity, jump and dash in that order.
// measured is the velocity observed from the last tick's displacement; the
// apex factor is derived from it.
func (m *MotionIntegrator) Integrate(intent entity.Intent, contacts entity.ContactSet, measured mgl64.Vec2, dt float64) entity.VelocityState {
	m.applyWalk(intent.MoveX, contacts, dt)
	m.applyApex(contacts.Grounded(), measured.Y())
	m.applyGravity(contacts.Grounded(), intent.JumpHeld, dt)
	m.applyJump(intent.JumpTriggered, contacts.Up)
	m.state = m.dash(m.state, intent)
	return m.state
}

func (m *MotionIntegrator) applyWalk(axis float64, contacts entity.ContactSet, dt float64) {
	s := &m.state
	if axis != 0 {
		s.Horizontal += axis * m.walk.Acceleration * dt
		s.Horizontal = mgl64.Clamp(s.Horizontal, -m.walk.MoveClamp, m.walk.MoveClamp)

		// Extra air control near the top of the jump
		s.Horizontal += geometry.Sign(axis) * m.walk.ApexBonus * s.ApexFactor * dt
	} else {
		s.Horizontal = geometry.MoveTowards(s.Horizontal, 0, m.walk.Deceleration*dt)
	}

	if s.Horizontal > 0 && contacts.Right || s.Horizontal < 0 && contacts.Left {
		s.Horizontal = 0
	}
}

func (m *MotionIntegrator) applyApex(grounded bool, measuredVertical float64) {
	if grounded {
		m.state.ApexFactor = 0
		return
	}
	m.state.ApexFactor = geometry.InverseLerp(m.jump.ApexThreshold, 0, math.Abs(measuredVertical))
	m.state.FallSpeed = geometry.LerpScalar(m.gravity.MinFallSpeed, m.gravity.MaxFallSpeed, m.state.ApexFactor)
}

func (m *MotionIntegrator) applyGravity(grounded, jumpHeld bool, dt float64) {
	s := &m.state
	if grounded {
		if s.Vertical < 0 {
			s.Vertical = 0
		}
		return
	}

	fall := s.FallSpeed
	if !jumpHeld && s.Vertical > 0 {
		// Released early while rising: cut the jump short
		fall *= m.jump.EarlyReleaseMultiplier
	}
	s.Vertical -= fall * dt

	if limit := math.Abs(m.gravity.FallClamp); s.Vertical < -limit {
		s.Vertical = -limit
	}
}

func (m *MotionIntegrator) applyJump(triggered, headBlocked bool) {
	if triggered {
		m.state.Vertical = m.jump.Height
	}
	if headBlocked && m.state.Vertical > 0 {
		m.state.Vertical = 0
	}
}
