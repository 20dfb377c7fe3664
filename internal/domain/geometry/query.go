// Package geometry defines the contract between the character controller and
// the world's solid geometry.
package geometry

import "github.com/go-gl/mathgl/mgl64"

// LayerMask selects which solid layers a query considers.
// Bit n set means layer n participates.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

// Layer returns the mask with only layer n set.
func Layer(n uint) LayerMask {
	return LayerMask(1) << n
}

// Matches reports whether any bit of layers is selected by the mask.
func (m LayerMask) Matches(layers LayerMask) bool {
	return m&layers != 0
}

// Skin is the deepest penetration an overlap query still treats as touching.
// A box given by its center can sit a rounding error inside the surface it
// rests on.
const Skin = 1e-9

// Hit describes the first solid found by a query.
type Hit struct {
	Point    mgl64.Vec2 // contact point (raycast) or probe center (overlap)
	Normal   mgl64.Vec2 // surface normal at Point, zero for overlaps
	Center   mgl64.Vec2 // center of the obstructing solid
	Distance float64    // distance along the ray, zero for overlaps
}

// Query answers the two questions the controller asks about the world.
// A miss is reported with ok == false and is never an error.
type Query interface {
	// OverlapBox reports a solid overlapping the axis-aligned box centred at
	// center with the given size. Touching edges, and penetration shallower
	// than Skin, do not count as overlap.
	OverlapBox(center, size mgl64.Vec2, mask LayerMask) (hit Hit, ok bool)

	// Raycast reports the first solid along origin + dir*t for t in
	// [0, maxDistance]. dir must be a unit vector.
	Raycast(origin, dir mgl64.Vec2, maxDistance float64, mask LayerMask) (hit Hit, ok bool)
}
