package tilemap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/geometry"
)

var ground = geometry.Layer(0)

// createTestGrid builds a 10x8 room: floor row 0, walls at columns 0 and 9,
// a one-tile block at (5, 3) and a water tile on layer 4 at (7, 1).
func createTestGrid() *Grid {
	g := NewGrid(10, 8, 1)
	g.Fill(0, 0, 9, 0, Wall(ground))
	g.Fill(0, 0, 0, 7, Wall(ground))
	g.Fill(9, 0, 9, 7, Wall(ground))
	g.Set(5, 3, Wall(ground))
	g.Set(7, 1, Tile{Type: TileWater, Solid: true, Layer: geometry.Layer(4)})
	return g
}

func TestGrid_GetTile(t *testing.T) {
	g := createTestGrid()

	assert.True(t, g.GetTile(3, 0).Solid)
	assert.False(t, g.GetTile(3, 1).Solid)
	assert.True(t, g.GetTile(-1, 3).Solid, "outside the grid is solid")
	assert.True(t, g.GetTile(3, 100).Solid)
	assert.Equal(t, geometry.AllLayers, g.GetTile(-5, -5).Layer)
}

func TestGrid_TileAt(t *testing.T) {
	g := createTestGrid()
	g.Origin = mgl64.Vec2{-2, 0}

	tx, ty := g.TileAt(mgl64.Vec2{-1.5, 2.5})
	assert.Equal(t, 0, tx)
	assert.Equal(t, 2, ty)

	assert.Equal(t, mgl64.Vec2{-1.5, 2.5}, g.TileCenter(0, 2))
}

func TestGrid_OverlapBox(t *testing.T) {
	g := createTestGrid()

	tests := []struct {
		name   string
		center mgl64.Vec2
		size   mgl64.Vec2
		mask   geometry.LayerMask
		want   bool
	}{
		{"empty air", mgl64.Vec2{3, 3}, mgl64.Vec2{1, 1}, ground, false},
		{"resting exactly on floor", mgl64.Vec2{3, 2}, mgl64.Vec2{1, 2}, ground, false},
		{"sunk into floor", mgl64.Vec2{3, 1.95}, mgl64.Vec2{1, 2}, ground, true},
		{"anchor on floor rounds below it", mgl64.Vec2{3, 1 + 0.65}, mgl64.Vec2{1, 1.3}, ground, false},
		{"within skin of floor", mgl64.Vec2{3, 2 - 1e-12}, mgl64.Vec2{1, 2}, ground, false},
		{"deeper than skin", mgl64.Vec2{3, 2 - 1e-6}, mgl64.Vec2{1, 2}, ground, true},
		{"touching wall side", mgl64.Vec2{1.5, 3}, mgl64.Vec2{1, 1}, ground, false},
		{"into wall", mgl64.Vec2{1.4, 3}, mgl64.Vec2{1, 1}, ground, true},
		{"overlapping block", mgl64.Vec2{5.9, 3.5}, mgl64.Vec2{1, 1}, ground, true},
		{"water ignored by ground mask", mgl64.Vec2{7.5, 1.5}, mgl64.Vec2{0.5, 0.5}, ground, false},
		{"water found by its mask", mgl64.Vec2{7.5, 1.5}, mgl64.Vec2{0.5, 0.5}, geometry.Layer(4), true},
		{"outside the grid", mgl64.Vec2{-3, 3}, mgl64.Vec2{1, 1}, ground, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := g.OverlapBox(tt.center, tt.size, tt.mask)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGrid_OverlapBoxReportsObstructionCenter(t *testing.T) {
	g := createTestGrid()

	hit, ok := g.OverlapBox(mgl64.Vec2{5.2, 3.5}, mgl64.Vec2{0.5, 0.5}, ground)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec2{5.5, 3.5}, hit.Center)
	assert.Equal(t, mgl64.Vec2{5.2, 3.5}, hit.Point)
}

func TestGrid_Raycast(t *testing.T) {
	g := createTestGrid()

	tests := []struct {
		name       string
		origin     mgl64.Vec2
		dir        mgl64.Vec2
		maxDist    float64
		wantHit    bool
		wantDist   float64
		wantNormal mgl64.Vec2
	}{
		{"down onto floor", mgl64.Vec2{3.5, 1.05}, geometry.Down, 0.1, true, 0.05, mgl64.Vec2{0, 1}},
		{"down from floor surface", mgl64.Vec2{3.5, 1}, geometry.Down, 0.1, true, 0, mgl64.Vec2{0, 1}},
		{"down out of range", mgl64.Vec2{3.5, 1.2}, geometry.Down, 0.1, false, 0, mgl64.Vec2{}},
		{"hit exactly at max distance", mgl64.Vec2{3.5, 1.25}, geometry.Down, 0.25, true, 0.25, mgl64.Vec2{0, 1}},
		{"right into block", mgl64.Vec2{4.2, 3.5}, geometry.Right, 1, true, 0.8, mgl64.Vec2{-1, 0}},
		{"left into wall", mgl64.Vec2{1, 5}, geometry.Left, 0.1, true, 0, mgl64.Vec2{1, 0}},
		{"up under block", mgl64.Vec2{5.5, 3}, geometry.Up, 0.1, true, 0, mgl64.Vec2{}},
		{"up in open air", mgl64.Vec2{2.5, 2}, geometry.Up, 2, false, 0, mgl64.Vec2{}},
		{"start inside solid", mgl64.Vec2{5.5, 3.5}, geometry.Left, 1, true, 0, mgl64.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := g.Raycast(tt.origin, tt.dir, tt.maxDist, ground)
			require.Equal(t, tt.wantHit, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.wantDist, hit.Distance, 1e-9)
			assert.InDelta(t, tt.wantNormal.X(), hit.Normal.X(), 1e-9)
			assert.InDelta(t, tt.wantNormal.Y(), hit.Normal.Y(), 1e-9)
		})
	}
}

func TestGrid_RaycastDiagonal(t *testing.T) {
	g := createTestGrid()
	dir := mgl64.Vec2{1, 1}.Normalize()

	hit, ok := g.Raycast(mgl64.Vec2{3.5, 1.5}, dir, 5, ground)
	require.True(t, ok)

	tx, ty := g.TileAt(hit.Point.Add(dir.Mul(1e-6)))
	assert.Equal(t, 5, tx)
	assert.Equal(t, 3, ty)
	assert.Equal(t, mgl64.Vec2{5.5, 3.5}, hit.Center)
}

func TestGrid_RaycastRespectsMask(t *testing.T) {
	g := createTestGrid()

	_, ok := g.Raycast(mgl64.Vec2{6.5, 1.5}, geometry.Right, 1, ground)
	assert.False(t, ok, "water is not on the ground layer")

	hit, ok := g.Raycast(mgl64.Vec2{6.5, 1.5}, geometry.Right, 1, geometry.Layer(4))
	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.Distance, 1e-9)
}
