// Package cpspace implements the geometry query on top of a Chipmunk2D space
// holding static box shapes.
package cpspace

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/tilemap"
)

const allCategories = ^uint(0)

var _ geometry.Query = (*Space)(nil)

// Space wraps a cp.Space. Queries are serialized: cp spaces are not safe for
// concurrent use, even read-only.
type Space struct {
	mu     sync.Mutex
	space  *cp.Space
	bounds map[*cp.Shape]cp.BB
}

// New creates an empty space.
func New() *Space {
	return &Space{
		space:  cp.NewSpace(),
		bounds: make(map[*cp.Shape]cp.BB),
	}
}

// AddBox adds a static solid box covering [min, max] on the given layers.
func (s *Space) AddBox(min, max mgl64.Vec2, layers geometry.LayerMask) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bb := cp.BB{L: min.X(), B: min.Y(), R: max.X(), T: max.Y()}
	shape := s.space.AddShape(cp.NewBox2(s.space.StaticBody, bb, 0))
	shape.SetFilter(cp.NewShapeFilter(0, uint(layers), allCategories))
	s.bounds[shape] = bb
}

// Len returns the number of solid shapes.
func (s *Space) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bounds)
}

// FromGrid creates one box per solid tile, plus a solid frame one tile thick
// around the grid so the space matches the grid's solid outside.
func FromGrid(g *tilemap.Grid) *Space {
	s := New()
	g.EachSolid(func(tx, ty int, tile tilemap.Tile) {
		min, max := g.TileBounds(tx, ty)
		s.AddBox(min, max, tile.Layer)
	})

	lo, _ := g.TileBounds(-1, -1)
	_, hi := g.TileBounds(g.Width, g.Height)
	inLo, _ := g.TileBounds(0, 0)
	_, inHi := g.TileBounds(g.Width-1, g.Height-1)

	// bottom, top, left, right
	s.AddBox(lo, mgl64.Vec2{hi.X(), inLo.Y()}, geometry.AllLayers)
	s.AddBox(mgl64.Vec2{lo.X(), inHi.Y()}, hi, geometry.AllLayers)
	s.AddBox(mgl64.Vec2{lo.X(), inLo.Y()}, mgl64.Vec2{inLo.X(), inHi.Y()}, geometry.AllLayers)
	s.AddBox(mgl64.Vec2{inHi.X(), inLo.Y()}, mgl64.Vec2{hi.X(), inHi.Y()}, geometry.AllLayers)
	return s
}

// OverlapBox reports a shape whose interior intersects the box, ignoring
// penetration shallower than geometry.Skin. cp bounding box queries include
// touching boxes, so those are filtered out here.
func (s *Space) OverlapBox(center, size mgl64.Vec2, mask geometry.LayerMask) (geometry.Hit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	half := size.Mul(0.5).Sub(mgl64.Vec2{geometry.Skin, geometry.Skin})
	probe := cp.BB{
		L: center.X() - half.X(),
		B: center.Y() - half.Y(),
		R: center.X() + half.X(),
		T: center.Y() + half.Y(),
	}

	var (
		found bool
		hit   geometry.Hit
	)
	s.space.BBQuery(probe, queryFilter(mask), func(shape *cp.Shape, _ interface{}) {
		if found {
			return
		}
		bb, ok := s.bounds[shape]
		if !ok || !strictOverlap(bb, probe) {
			return
		}
		found = true
		hit = geometry.Hit{Point: center, Center: bbCenter(bb)}
	}, nil)

	return hit, found
}

// Raycast reports the first shape along the segment origin -> origin+dir*maxDistance.
func (s *Space) Raycast(origin, dir mgl64.Vec2, maxDistance float64, mask geometry.LayerMask) (geometry.Hit, bool) {
	if maxDistance <= 0 {
		return geometry.Hit{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	end := origin.Add(dir.Mul(maxDistance))
	info := s.space.SegmentQueryFirst(
		cp.Vector{X: origin.X(), Y: origin.Y()},
		cp.Vector{X: end.X(), Y: end.Y()},
		0,
		queryFilter(mask),
	)
	if info.Shape == nil {
		return geometry.Hit{}, false
	}

	hit := geometry.Hit{
		Point:    mgl64.Vec2{info.Point.X, info.Point.Y},
		Normal:   mgl64.Vec2{info.Normal.X, info.Normal.Y},
		Distance: info.Alpha * maxDistance,
	}
	if bb, ok := s.bounds[info.Shape]; ok {
		hit.Center = bbCenter(bb)
	}
	return hit, true
}

func queryFilter(mask geometry.LayerMask) cp.ShapeFilter {
	return cp.NewShapeFilter(0, allCategories, uint(mask))
}

func strictOverlap(a, b cp.BB) bool {
	return a.L < b.R && b.L < a.R && a.B < b.T && b.B < a.T
}

func bbCenter(bb cp.BB) mgl64.Vec2 {
	return mgl64.Vec2{(bb.L + bb.R) * 0.5, (bb.B + bb.T) * 0.5}
}
