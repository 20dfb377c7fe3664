package tilemap

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func TestFromStage(t *testing.T) {
	cfg := &config.StageConfig{
		ID:          "test",
		TileSize:    2,
		PlayerSpawn: config.PositionConfig{X: 3, Y: 2},
		Layers: config.LayersConfig{
			Collision: []string{
				"#..~",
				"#...",
				"####",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall", Solid: true, Layer: 0},
			"~": {Type: "water", Solid: true, Layer: 4},
		},
	}

	grid, err := FromStage(cfg)
	require.NoError(t, err)

	assert.Equal(t, 4, grid.Width)
	assert.Equal(t, 3, grid.Height)
	assert.Equal(t, 2.0, grid.TileSize)
	assert.Equal(t, mgl64.Vec2{3, 2}, grid.Spawn)

	// Bottom config row becomes ty = 0
	for tx := 0; tx < 4; tx++ {
		assert.True(t, grid.GetTile(tx, 0).Solid)
	}
	assert.True(t, grid.GetTile(0, 2).Solid)
	assert.False(t, grid.GetTile(1, 2).Solid)

	water := grid.GetTile(3, 2)
	assert.Equal(t, TileWater, water.Type)
	assert.Equal(t, geometry.Layer(4), water.Layer)
}

func TestFromStage_Empty(t *testing.T) {
	_, err := FromStage(&config.StageConfig{ID: "void"})
	assert.Error(t, err)
}

func TestFromStage_Demo(t *testing.T) {
	stageCfg, err := config.NewLoader("../../../cmd/platformer/configs").LoadStage("demo")
	require.NoError(t, err)

	grid, err := FromStage(stageCfg)
	require.NoError(t, err)

	// Spawn stands on the floor without overlapping it
	_, overlaps := grid.OverlapBox(grid.Spawn.Add(mgl64.Vec2{0, 0.65}), mgl64.Vec2{1, 1.3}, geometry.Layer(0))
	assert.False(t, overlaps)
	hit, ok := grid.Raycast(grid.Spawn, geometry.Down, 0.1, geometry.Layer(0))
	require.True(t, ok)
	assert.Equal(t, 0.0, hit.Distance)
}

func TestGrid_EachSolid(t *testing.T) {
	g := NewGrid(3, 2, 1)
	g.Set(0, 0, Wall(ground))
	g.Set(2, 1, Wall(ground))
	g.Set(5, 5, Wall(ground)) // ignored

	var got [][2]int
	g.EachSolid(func(tx, ty int, _ Tile) {
		got = append(got, [2]int{tx, ty})
	})

	assert.Equal(t, [][2]int{{0, 0}, {2, 1}}, got)
}
