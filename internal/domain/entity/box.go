package entity

import "github.com/go-gl/mathgl/mgl64"

// Box is the character's axis-aligned collision box.
// Position is the character anchor; Offset and Size are fixed for the life of
// a controller.
type Box struct {
	Position mgl64.Vec2
	Offset   mgl64.Vec2
	Size     mgl64.Vec2
}

// NewBox creates a box anchored at position.
func NewBox(position, offset, size mgl64.Vec2) Box {
	return Box{Position: position, Offset: offset, Size: size}
}

// Center returns the world-space center of the box.
func (b Box) Center() mgl64.Vec2 {
	return b.Position.Add(b.Offset)
}

// CenterAt returns the center the box would have if anchored at position.
func (b Box) CenterAt(position mgl64.Vec2) mgl64.Vec2 {
	return position.Add(b.Offset)
}

// Min returns the bottom-left corner. The offset to the corner is summed
// before the position so an anchor on a surface yields that surface exactly.
func (b Box) Min() mgl64.Vec2 {
	return b.Position.Add(b.Offset.Sub(b.Size.Mul(0.5)))
}

// Max returns the top-right corner.
func (b Box) Max() mgl64.Vec2 {
	return b.Position.Add(b.Offset.Add(b.Size.Mul(0.5)))
}

// MovedTo returns a copy of the box anchored at position.
func (b Box) MovedTo(position mgl64.Vec2) Box {
	b.Position = position
	return b
}
