// Package render draws the world and controller debug data. It only reads
// snapshots and never changes simulation state.
package render

import "github.com/go-gl/mathgl/mgl64"

// Camera maps world units (Y up) to screen pixels (Y down).
type Camera struct {
	PixelsPerUnit float64
	ScreenWidth   int
	ScreenHeight  int
	Center        mgl64.Vec2
}

// WorldToScreen converts a world point to screen pixels.
func (c Camera) WorldToScreen(p mgl64.Vec2) (x, y float32) {
	d := p.Sub(c.Center).Mul(c.PixelsPerUnit)
	return float32(float64(c.ScreenWidth)/2 + d.X()), float32(float64(c.ScreenHeight)/2 - d.Y())
}

// RectToScreen converts a world rectangle to a screen rectangle given by its
// top-left corner and size.
func (c Camera) RectToScreen(min, max mgl64.Vec2) (x, y, w, h float32) {
	x, y = c.WorldToScreen(mgl64.Vec2{min.X(), max.Y()})
	size := max.Sub(min).Mul(c.PixelsPerUnit)
	return x, y, float32(size.X()), float32(size.Y())
}

// Follow centers the camera on target while keeping the view inside
// [boundsMin, boundsMax]. An axis whose bounds are smaller than the view is
// centered on the bounds.
func (c *Camera) Follow(target, boundsMin, boundsMax mgl64.Vec2) {
	halfW := float64(c.ScreenWidth) / 2 / c.PixelsPerUnit
	halfH := float64(c.ScreenHeight) / 2 / c.PixelsPerUnit

	c.Center = mgl64.Vec2{
		followAxis(target.X(), boundsMin.X(), boundsMax.X(), halfW),
		followAxis(target.Y(), boundsMin.Y(), boundsMax.Y(), halfH),
	}
}

func followAxis(target, lo, hi, half float64) float64 {
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	if target < lo+half {
		return lo + half
	}
	if target > hi-half {
		return hi - half
	}
	return target
}
