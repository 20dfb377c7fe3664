// Package tilemap implements the geometry query over a uniform tile grid.
package tilemap

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/platformer/internal/domain/geometry"
)

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileWater
)

// Tile represents a single tile in the grid
type Tile struct {
	Type  TileType
	Solid bool
	Layer geometry.LayerMask
}

// boundary is returned for coordinates outside the grid.
var boundary = Tile{Type: TileWall, Solid: true, Layer: geometry.AllLayers}

// Grid is a solid tile map in world units with Y up. Tiles[0] is the bottom
// row. Tile (tx, ty) covers [Origin + (tx,ty)*TileSize, Origin + (tx+1,ty+1)*TileSize].
type Grid struct {
	Width    int
	Height   int
	TileSize float64
	Origin   mgl64.Vec2
	Tiles    [][]Tile
	Spawn    mgl64.Vec2
}

// NewGrid creates an empty grid.
func NewGrid(width, height int, tileSize float64) *Grid {
	if tileSize <= 0 {
		tileSize = 1
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &Grid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    tiles,
	}
}

// GetTile returns the tile at the given tile coordinates.
// Everything outside the grid is solid on every layer.
func (g *Grid) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= g.Width || ty < 0 || ty >= g.Height {
		return boundary
	}
	return g.Tiles[ty][tx]
}

// Set replaces one tile; out-of-range coordinates are ignored.
func (g *Grid) Set(tx, ty int, tile Tile) {
	if tx < 0 || tx >= g.Width || ty < 0 || ty >= g.Height {
		return
	}
	g.Tiles[ty][tx] = tile
}

// Fill sets every tile in the inclusive rectangle.
func (g *Grid) Fill(x0, y0, x1, y1 int, tile Tile) {
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			g.Set(tx, ty, tile)
		}
	}
}

// Wall returns a solid tile on the given layer.
func Wall(layer geometry.LayerMask) Tile {
	return Tile{Type: TileWall, Solid: true, Layer: layer}
}

// TileAt returns the coordinates of the tile containing a world point.
func (g *Grid) TileAt(p mgl64.Vec2) (tx, ty int) {
	local := p.Sub(g.Origin)
	return int(math.Floor(local.X() / g.TileSize)), int(math.Floor(local.Y() / g.TileSize))
}

// TileBounds returns the world-space corners of a tile.
func (g *Grid) TileBounds(tx, ty int) (min, max mgl64.Vec2) {
	min = g.Origin.Add(mgl64.Vec2{float64(tx), float64(ty)}.Mul(g.TileSize))
	return min, min.Add(mgl64.Vec2{g.TileSize, g.TileSize})
}

// TileCenter returns the world-space center of a tile.
func (g *Grid) TileCenter(tx, ty int) mgl64.Vec2 {
	min, max := g.TileBounds(tx, ty)
	return min.Add(max).Mul(0.5)
}

// EachSolid calls f for every solid tile inside the grid, bottom row first.
func (g *Grid) EachSolid(f func(tx, ty int, tile Tile)) {
	for ty := 0; ty < g.Height; ty++ {
		for tx := 0; tx < g.Width; tx++ {
			if t := g.Tiles[ty][tx]; t.Solid {
				f(tx, ty, t)
			}
		}
	}
}

func (g *Grid) solidAt(tx, ty int, mask geometry.LayerMask) bool {
	t := g.GetTile(tx, ty)
	return t.Solid && mask.Matches(t.Layer)
}
