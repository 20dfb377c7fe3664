package entity

import "github.com/go-gl/mathgl/mgl64"

// Side names one of the four cardinal sides of a Box.
type Side int

const (
	SideUp Side = iota
	SideDown
	SideLeft
	SideRight
)

// Sides lists every side in detection order.
var Sides = [4]Side{SideUp, SideDown, SideLeft, SideRight}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideUp:
		return "Up"
	case SideDown:
		return "Down"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// RayFan is a set of parallel rays sampled along one side of a Box.
// It is derived from the box pose every tick and never stored.
type RayFan struct {
	Horizontal bool       // sampled coordinate is X (Up/Down fans)
	Start      float64    // first sampled coordinate
	End        float64    // last sampled coordinate
	Fixed      float64    // the box edge on this side
	Dir        mgl64.Vec2 // unit cast direction
}

// Origins returns 2+extraRays evenly spaced ray origins from Start to End,
// both inclusive. A zero-width or inverted range still yields both endpoints.
func (f RayFan) Origins(extraRays int) []mgl64.Vec2 {
	if extraRays < 0 {
		extraRays = 0
	}
	count := 2 + extraRays
	step := (f.End - f.Start) / float64(1+extraRays)

	origins := make([]mgl64.Vec2, 0, count)
	for i := 0; i < count; i++ {
		value := f.Start + step*float64(i)
		if i == count-1 {
			value = f.End
		}
		origins = append(origins, f.point(value))
	}
	return origins
}

func (f RayFan) point(value float64) mgl64.Vec2 {
	if f.Horizontal {
		return mgl64.Vec2{value, f.Fixed}
	}
	return mgl64.Vec2{f.Fixed, value}
}
