package config

// StageConfig is the root config for stage JSON files.
// Collision rows are listed top to bottom; one character per tile.
type StageConfig struct {
	ID          string                       `json:"id"`
	Name        string                       `json:"name"`
	TileSize    float64                      `json:"tileSize"` // world units per tile
	PlayerSpawn PositionConfig               `json:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping"`
}

// PositionConfig is a world-space position (Y up).
type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision"`
}

type TileMappingConfig struct {
	Type  string `json:"type"`
	Solid bool   `json:"solid"`
	Layer uint   `json:"layer"` // layer index, 0 = ground
}
