package tilemap

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// FromStage converts a StageConfig into a Grid. Collision rows are listed top
// to bottom in the config and stored bottom to top in the grid.
func FromStage(cfg *config.StageConfig) (*Grid, error) {
	height := len(cfg.Layers.Collision)
	if height == 0 {
		return nil, fmt.Errorf("stage %s: empty collision layer", cfg.ID)
	}
	width := 0
	for _, row := range cfg.Layers.Collision {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}

	grid := NewGrid(width, height, cfg.TileSize)
	for row, line := range cfg.Layers.Collision {
		ty := height - 1 - row
		for tx, char := range []rune(line) {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			var tileType TileType
			switch mapping.Type {
			case "wall":
				tileType = TileWall
			case "water":
				tileType = TileWater
			default:
				tileType = TileEmpty
			}

			grid.Tiles[ty][tx] = Tile{
				Type:  tileType,
				Solid: mapping.Solid,
				Layer: geometry.Layer(mapping.Layer),
			}
		}
	}

	grid.Spawn = mgl64.Vec2{cfg.PlayerSpawn.X, cfg.PlayerSpawn.Y}
	return grid, nil
}
