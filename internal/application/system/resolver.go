package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Resolution is the outcome of one movement step.
type Resolution struct {
	Box        entity.Box
	Velocity   entity.VelocityState
	Obstructed bool
	Nudged     bool
}

// MovementResolver moves the box by velocity*dt without ending in overlap.
// When the full move is blocked it walks toward the target in equal steps
// and stops at the last clear one.
type MovementResolver struct {
	query      geometry.Query
	mask       geometry.LayerMask
	iterations int
}

// NewMovementResolver creates a resolver for the given world.
func NewMovementResolver(cfg *config.ControllerConfig, query geometry.Query) *MovementResolver {
	iterations := cfg.Move.Iterations
	if iterations < 1 {
		iterations = 1
	}
	return &MovementResolver{
		query:      query,
		mask:       geometry.LayerMask(cfg.Collider.GroundLayer),
		iterations: iterations,
	}
}

// Resolve applies one tick of movement.
func (r *MovementResolver) Resolve(box entity.Box, vel entity.VelocityState, dt float64) Resolution {
	start := box.Position
	move := vel.Vec().Mul(dt)
	target := start.Add(move)

	hit, blocked := r.query.OverlapBox(box.CenterAt(target), box.Size, r.mask)
	if !blocked {
		return Resolution{Box: box.MovedTo(target), Velocity: vel}
	}

	res := Resolution{Box: box, Velocity: vel, Obstructed: true}
	for i := 1; i < r.iterations; i++ {
		t := float64(i) / float64(r.iterations)
		candidate := geometry.Lerp(start, target, t)
		if _, overlap := r.query.OverlapBox(box.CenterAt(candidate), box.Size, r.mask); overlap {
			break
		}
		res.Box = box.MovedTo(candidate)
	}

	if res.Box.Position == start {
		// Stuck on the first step: stop falling and push away from the
		// obstacle so the next tick can slide past a corner
		if res.Velocity.Vertical < 0 {
			res.Velocity.Vertical = 0
		}
		r.nudge(&res, hit, move.Len())
	}
	return res
}

func (r *MovementResolver) nudge(res *Resolution, hit geometry.Hit, distance float64) {
	dir, ok := geometry.SafeNormalize(res.Box.Position.Sub(hit.Center))
	if !ok || distance == 0 {
		return
	}
	pushed := res.Box.Position.Add(dir.Mul(distance))
	if _, overlap := r.query.OverlapBox(res.Box.CenterAt(pushed), res.Box.Size, r.mask); overlap {
		return
	}
	res.Box = res.Box.MovedTo(pushed)
	res.Nudged = true
}
