package entity

import "math"

// GroundState is the sticky grounded flag plus the instant ground contact was
// last lost. Only the contact detector transitions it.
type GroundState struct {
	Grounded bool
	LostAt   float64 // last grounded->airborne transition; -Inf if never grounded
}

// Airborne returns the initial state: not grounded, never grounded before.
func Airborne() GroundState {
	return GroundState{LostAt: math.Inf(-1)}
}

// Next returns the state after observing down for the tick at now, and
// whether this tick is a landing.
func (g GroundState) Next(down bool, now float64) (next GroundState, landed bool) {
	switch {
	case g.Grounded && !down:
		return GroundState{Grounded: false, LostAt: now}, false
	case !g.Grounded && down:
		return GroundState{Grounded: true, LostAt: g.LostAt}, true
	default:
		return g, false
	}
}

// ContactSet is the per-tick result of contact detection.
type ContactSet struct {
	Up, Down, Left, Right bool

	Ground     GroundState
	JustLanded bool
}

// Grounded reports whether the character stands on ground this tick.
func (c ContactSet) Grounded() bool {
	return c.Ground.Grounded
}

// TimeLastGrounded returns the instant ground contact was last lost.
func (c ContactSet) TimeLastGrounded() float64 {
	return c.Ground.LostAt
}

// Blocked reports the contact on one side.
func (c ContactSet) Blocked(side Side) bool {
	switch side {
	case SideUp:
		return c.Up
	case SideDown:
		return c.Down
	case SideLeft:
		return c.Left
	case SideRight:
		return c.Right
	default:
		return false
	}
}
