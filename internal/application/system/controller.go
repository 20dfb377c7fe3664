package system

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

var (
	// ErrMissingConfig is reported by a controller created without configuration.
	ErrMissingConfig = errors.New("controller: missing configuration")
	// ErrMissingQuery is reported by a controller created without a world query.
	ErrMissingQuery = errors.New("controller: missing world query")
)

// DebugSnapshot is a read-only view of the controller for debug drawing.
type DebugSnapshot struct {
	Box         entity.Box
	Fans        [4]entity.RayFan
	Contacts    entity.ContactSet
	RayDistance float64
	ExtraRays   int
}

// Controller owns one character. Each Tick runs velocity estimation,
// contact detection, intent gathering, motion integration and movement
// resolution in that order.
type Controller struct {
	detector   *ContactDetector
	buffer     *IntentBuffer
	integrator *MotionIntegrator
	resolver   *MovementResolver
	query      geometry.Query
	spawn      mgl64.Vec2

	box          entity.Box
	lastPosition mgl64.Vec2
	estimate     mgl64.Vec2
	contacts     entity.ContactSet
	intent       entity.Intent
	frame        entity.Frame

	err error
}

// NewController creates a controller standing at spawn. A nil config, a nil
// query or an invalid config produce an inert controller: the problem is
// logged once, reported by Err, and Tick does nothing.
func NewController(cfg *config.ControllerConfig, query geometry.Query, spawn mgl64.Vec2) *Controller {
	c := &Controller{
		query:        query,
		spawn:        spawn,
		lastPosition: spawn,
		contacts:     entity.ContactSet{Ground: entity.Airborne()},
	}

	switch {
	case cfg == nil:
		c.err = ErrMissingConfig
	case query == nil:
		c.err = ErrMissingQuery
	}
	if c.err != nil {
		log.Printf("controller disabled: %v", c.err)
		return c
	}

	normalized := *cfg
	if err := normalized.Normalize(); err != nil {
		c.err = fmt.Errorf("controller: %w", err)
		log.Printf("controller disabled: %v", c.err)
		return c
	}

	c.box = entity.NewBox(spawn, normalized.Collider.Offset.Vec(), normalized.Collider.Size.Vec())
	c.detector = NewContactDetector(normalized.Collider, query)
	c.buffer = NewIntentBuffer(normalized.Input)
	c.integrator = NewMotionIntegrator(&normalized)
	c.resolver = NewMovementResolver(&normalized, query)
	return c
}

// Rebuild creates a controller from cfg in the same world, standing where c
// stands now and keeping c's spawn point. c itself is left unchanged.
func (c *Controller) Rebuild(cfg *config.ControllerConfig) *Controller {
	next := NewController(cfg, c.query, c.box.Position)
	next.spawn = c.spawn
	return next
}

// Spawn returns the position the controller was created at.
func (c *Controller) Spawn() mgl64.Vec2 {
	return c.spawn
}

// Err returns the reason the controller is inert, or nil.
func (c *Controller) Err() error {
	return c.err
}

// SetDash installs a dash step. It is ignored on an inert controller.
func (c *Controller) SetDash(f DashFunc) {
	if c.err != nil {
		return
	}
	c.integrator.SetDash(f)
}

// Tick advances the simulation by dt seconds. now is the elapsed simulation
// time and must not decrease between calls.
func (c *Controller) Tick(raw entity.RawInput, now, dt float64) entity.Frame {
	if c.err != nil {
		return entity.Frame{}
	}

	c.refreshEstimate(dt)
	c.contacts = c.detector.Detect(c.box, c.contacts.Ground, now)
	c.intent = c.buffer.Gather(raw, c.contacts, now)

	vel := c.integrator.Integrate(c.intent, c.contacts, c.estimate, dt)
	res := c.resolver.Resolve(c.box, vel, dt)
	c.box = res.Box
	c.integrator.SetState(res.Velocity)

	c.frame = entity.Frame{
		Grounded:        c.contacts.Grounded(),
		JustLanded:      c.contacts.JustLanded,
		JustJumped:      c.intent.JumpTriggered,
		RawVelocity:     vel.Vec(),
		HorizontalInput: c.intent.MoveX,
	}
	return c.frame
}

// refreshEstimate measures velocity from the displacement since the previous
// tick.
func (c *Controller) refreshEstimate(dt float64) {
	pos := c.box.Position
	if dt > 0 && !math.IsInf(dt, 0) {
		c.estimate = pos.Sub(c.lastPosition).Mul(1 / dt)
	} else {
		c.estimate = mgl64.Vec2{}
	}
	c.lastPosition = pos
}

// Reset places the character at position with no velocity, no contacts and
// no buffered jump.
func (c *Controller) Reset(position mgl64.Vec2) {
	if c.err != nil {
		return
	}
	c.box = c.box.MovedTo(position)
	c.lastPosition = position
	c.estimate = mgl64.Vec2{}
	c.contacts = entity.ContactSet{Ground: entity.Airborne()}
	c.intent = entity.Intent{}
	c.frame = entity.Frame{}
	c.buffer.Reset()
	c.integrator.SetState(entity.VelocityState{FallSpeed: c.integrator.gravity.MinFallSpeed})
}

// Box returns the current collision box.
func (c *Controller) Box() entity.Box {
	return c.box
}

// Position returns the current position.
func (c *Controller) Position() mgl64.Vec2 {
	return c.box.Position
}

// Velocity returns the velocity state after the last tick.
func (c *Controller) Velocity() entity.VelocityState {
	if c.err != nil {
		return entity.VelocityState{}
	}
	return c.integrator.State()
}

// Contacts returns the contact set computed by the last tick.
func (c *Controller) Contacts() entity.ContactSet {
	return c.contacts
}

// Estimate returns the measured velocity used by the last tick.
func (c *Controller) Estimate() mgl64.Vec2 {
	return c.estimate
}

// Intent returns the intent gathered by the last tick.
func (c *Controller) Intent() entity.Intent {
	return c.intent
}

// LastFrame returns the frame produced by the last tick.
func (c *Controller) LastFrame() entity.Frame {
	return c.frame
}

// Snapshot captures the data needed to draw the box and its ray fans.
func (c *Controller) Snapshot() DebugSnapshot {
	snap := DebugSnapshot{Box: c.box, Contacts: c.contacts}
	if c.err != nil {
		return snap
	}
	snap.Fans = c.detector.Fans(c.box)
	snap.RayDistance = c.detector.RayDistance()
	snap.ExtraRays = c.detector.ExtraRays()
	return snap
}
