package tilemap

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/platformer/internal/domain/geometry"
)

var _ geometry.Query = (*Grid)(nil)

// OverlapBox checks every tile the box overlaps. Boxes that only touch a
// tile's edge, or sink into it by less than geometry.Skin, do not overlap it.
func (g *Grid) OverlapBox(center, size mgl64.Vec2, mask geometry.LayerMask) (geometry.Hit, bool) {
	half := size.Mul(0.5).Sub(mgl64.Vec2{geometry.Skin, geometry.Skin})
	min := center.Sub(half).Sub(g.Origin).Mul(1 / g.TileSize)
	max := center.Add(half).Sub(g.Origin).Mul(1 / g.TileSize)

	startTX := int(math.Floor(min.X()))
	endTX := int(math.Ceil(max.X())) - 1
	startTY := int(math.Floor(min.Y()))
	endTY := int(math.Ceil(max.Y())) - 1

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if g.solidAt(tx, ty, mask) {
				return geometry.Hit{Point: center, Center: g.TileCenter(tx, ty)}, true
			}
		}
	}
	return geometry.Hit{}, false
}

// Raycast walks the tiles along the ray (Amanatides-Woo traversal) and
// reports the first solid one within maxDistance. A ray that starts inside a
// solid tile, or on the face it is heading into, hits at distance 0.
func (g *Grid) Raycast(origin, dir mgl64.Vec2, maxDistance float64, mask geometry.LayerMask) (geometry.Hit, bool) {
	local := origin.Sub(g.Origin).Mul(1 / g.TileSize)
	maxT := maxDistance / g.TileSize

	tx, ty := int(math.Floor(local.X())), int(math.Floor(local.Y()))
	stepX, tMaxX, tDeltaX := traverseAxis(local.X(), dir.X(), tx)
	stepY, tMaxY, tDeltaY := traverseAxis(local.Y(), dir.Y(), ty)

	var normal mgl64.Vec2
	t := 0.0
	for {
		if g.solidAt(tx, ty, mask) {
			return geometry.Hit{
				Point:    origin.Add(dir.Mul(t * g.TileSize)),
				Normal:   normal,
				Center:   g.TileCenter(tx, ty),
				Distance: t * g.TileSize,
			}, true
		}

		if tMaxX < tMaxY {
			if tMaxX > maxT {
				break
			}
			t = tMaxX
			tx += stepX
			tMaxX += tDeltaX
			normal = mgl64.Vec2{float64(-stepX), 0}
		} else {
			if tMaxY > maxT {
				break
			}
			t = tMaxY
			ty += stepY
			tMaxY += tDeltaY
			normal = mgl64.Vec2{0, float64(-stepY)}
		}
	}
	return geometry.Hit{}, false
}

// traverseAxis returns the cell step, the ray parameter of the first cell
// boundary crossing and the parameter distance between crossings.
func traverseAxis(pos, d float64, cell int) (step int, tMax, tDelta float64) {
	switch {
	case d > 0:
		return 1, (float64(cell+1) - pos) / d, 1 / d
	case d < 0:
		return -1, (pos - float64(cell)) / -d, -1 / d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}
