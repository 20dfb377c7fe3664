package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ContactDetector classifies the four sides of the character box as blocked
// or free by casting a fan of short rays from each side.
type ContactDetector struct {
	config config.ColliderConfig
	query  geometry.Query
	mask   geometry.LayerMask
}

// NewContactDetector creates a detector. Corner buffers are clamped so that
// every fan has a valid sampling range.
func NewContactDetector(cfg config.ColliderConfig, query geometry.Query) *ContactDetector {
	cfg.Clamp()
	return &ContactDetector{
		config: cfg,
		query:  query,
		mask:   geometry.LayerMask(cfg.GroundLayer),
	}
}

// Fans builds the ray fans for the box pose, indexed by entity.Side.
func (d *ContactDetector) Fans(box entity.Box) [4]entity.RayFan {
	min, max := box.Min(), box.Max()
	c := d.config

	var fans [4]entity.RayFan
	fans[entity.SideUp] = entity.RayFan{
		Horizontal: true,
		Start:      min.X() + c.JumpCornerBuffer,
		End:        max.X() - c.JumpCornerBuffer,
		Fixed:      max.Y(),
		Dir:        geometry.Up,
	}
	fans[entity.SideDown] = entity.RayFan{
		Horizontal: true,
		Start:      min.X() + c.GroundCornerBuffer,
		End:        max.X() - c.GroundCornerBuffer,
		Fixed:      min.Y(),
		Dir:        geometry.Down,
	}
	fans[entity.SideLeft] = entity.RayFan{
		Start: min.Y() + c.StairsCornerBuffer,
		End:   max.Y() - c.HeadCornerBuffer,
		Fixed: min.X(),
		Dir:   geometry.Left,
	}
	fans[entity.SideRight] = entity.RayFan{
		Start: min.Y() + c.StairsCornerBuffer,
		End:   max.Y() - c.HeadCornerBuffer,
		Fixed: max.X(),
		Dir:   geometry.Right,
	}
	return fans
}

// Probe reports, per side, whether any ray of the side's fan hits ground
// within the ray distance. It depends only on the box pose and the world.
func (d *ContactDetector) Probe(box entity.Box) [4]bool {
	var blocked [4]bool
	for side, fan := range d.Fans(box) {
		blocked[side] = d.blocked(fan)
	}
	return blocked
}

// Detect probes the box and advances the sticky ground state from prev.
// The result is a pure function of its arguments and the world.
func (d *ContactDetector) Detect(box entity.Box, prev entity.GroundState, now float64) entity.ContactSet {
	blocked := d.Probe(box)
	ground, landed := prev.Next(blocked[entity.SideDown], now)

	return entity.ContactSet{
		Up:         blocked[entity.SideUp],
		Down:       blocked[entity.SideDown],
		Left:       blocked[entity.SideLeft],
		Right:      blocked[entity.SideRight],
		Ground:     ground,
		JustLanded: landed,
	}
}

// RayDistance returns the clamped ray length.
func (d *ContactDetector) RayDistance() float64 {
	return d.config.RayDistance
}

// ExtraRays returns the clamped number of rays between a fan's end points.
func (d *ContactDetector) ExtraRays() int {
	return d.config.ExtraRays
}

func (d *ContactDetector) blocked(fan entity.RayFan) bool {
	for _, origin := range fan.Origins(d.config.ExtraRays) {
		if _, hit := d.query.Raycast(origin, fan.Dir, d.config.RayDistance, d.mask); hit {
			return true
		}
	}
	return false
}
