package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/tilemap"
)

const testDT = 1.0 / 60.0

// createTestWorld builds a 20x10 room whose floor surface is the line y=0.
// The world spans x in [-10, 10]; a wall column covers x in [5, 6] and a
// ceiling block covers x in [-4, -3], y in [3, 4].
func createTestWorld() *tilemap.Grid {
	g := tilemap.NewGrid(20, 10, 1)
	g.Origin = mgl64.Vec2{-10, -1}
	g.Fill(0, 0, 19, 0, tilemap.Wall(geometry.Layer(0)))
	g.Fill(15, 1, 15, 9, tilemap.Wall(geometry.Layer(0)))
	g.Set(6, 4, tilemap.Wall(geometry.Layer(0)))
	return g
}

// createTestConfig returns the default tuning with a 1x2 box whose position
// is its bottom center.
func createTestConfig() *config.ControllerConfig {
	cfg := config.DefaultControllerConfig()
	cfg.Collider.Size = config.Vec2{X: 1, Y: 2}
	cfg.Collider.Offset = config.Vec2{X: 0, Y: 1}
	cfg.Collider.GroundLayer = uint32(geometry.Layer(0))
	return cfg
}

func createTestBox(x, y float64) entity.Box {
	cfg := createTestConfig()
	return entity.NewBox(mgl64.Vec2{x, y}, cfg.Collider.Offset.Vec(), cfg.Collider.Size.Vec())
}

func groundedContacts() entity.ContactSet {
	return entity.ContactSet{Down: true, Ground: entity.GroundState{Grounded: true, LostAt: -1}}
}

func airborneContacts(lostAt float64) entity.ContactSet {
	return entity.ContactSet{Ground: entity.GroundState{LostAt: lostAt}}
}
