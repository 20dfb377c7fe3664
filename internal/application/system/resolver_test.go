package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/tilemap"
)

func createTestResolver(world *tilemap.Grid) *MovementResolver {
	return NewMovementResolver(createTestConfig(), world)
}

func overlaps(world *tilemap.Grid, box entity.Box) bool {
	_, hit := world.OverlapBox(box.Center(), box.Size, geometry.Layer(0))
	return hit
}

func TestMovementResolver_Unobstructed(t *testing.T) {
	world := createTestWorld()
	r := createTestResolver(world)
	box := createTestBox(0, 3)
	vel := entity.VelocityState{Horizontal: 6, Vertical: -12, FallSpeed: 80}

	got := r.Resolve(box, vel, testDT)

	assert.Equal(t, box.Position.Add(vel.Vec().Mul(testDT)), got.Box.Position)
	assert.Equal(t, vel, got.Velocity)
	assert.False(t, got.Obstructed)
	assert.False(t, got.Nudged)
}

func TestMovementResolver_ZeroVelocityOnSurface(t *testing.T) {
	world := createTestWorld()
	r := createTestResolver(world)
	box := createTestBox(0, 0)

	got := r.Resolve(box, entity.VelocityState{}, testDT)

	assert.Equal(t, box, got.Box)
	assert.False(t, got.Obstructed)
}

func TestMovementResolver_StopsBeforeFloor(t *testing.T) {
	world := createTestWorld()
	r := createTestResolver(world)
	box := createTestBox(0, 0.3)

	got := r.Resolve(box, entity.VelocityState{Vertical: -30}, testDT)

	require.True(t, got.Obstructed)
	assert.False(t, got.Nudged)
	assert.False(t, overlaps(world, got.Box))
	assert.GreaterOrEqual(t, got.Box.Position.Y(), 0.0)
	assert.LessOrEqual(t, got.Box.Position.Y(), 0.05+1e-9)
	assert.Equal(t, -30.0, got.Velocity.Vertical, "only a stuck first step clears fall speed")
}

func TestMovementResolver_StopsBeforeWall(t *testing.T) {
	world := createTestWorld()
	r := createTestResolver(world)
	box := createTestBox(4.2, 1)

	got := r.Resolve(box, entity.VelocityState{Horizontal: 60}, testDT)

	require.True(t, got.Obstructed)
	assert.False(t, overlaps(world, got.Box))
	assert.Greater(t, got.Box.Position.X(), 4.2)
	assert.LessOrEqual(t, got.Box.Max().X(), 5.0+1e-9)
}

func TestMovementResolver_CornerNudge(t *testing.T) {
	world := createTestWorld()
	r := createTestResolver(world)
	box := createTestBox(0.5, 0)
	vel := entity.VelocityState{Horizontal: 12, Vertical: -30}

	got := r.Resolve(box, vel, testDT)

	require.True(t, got.Obstructed)
	require.True(t, got.Nudged)
	assert.Equal(t, 0.0, got.Velocity.Vertical)
	assert.Equal(t, 12.0, got.Velocity.Horizontal)

	// Pushed straight up, away from the floor tile under the box
	want := math.Sqrt(0.2*0.2 + 0.5*0.5)
	assert.InDelta(t, 0.5, got.Box.Position.X(), 1e-9)
	assert.InDelta(t, want, got.Box.Position.Y(), 1e-9)
	assert.False(t, overlaps(world, got.Box))
}

func TestMovementResolver_NudgeRejectedWhenBlocked(t *testing.T) {
	world := createTestWorld()
	// Close the gap above the box so the push has nowhere to go
	world.Fill(0, 3, 19, 3, tilemap.Wall(geometry.Layer(0)))
	r := createTestResolver(world)
	box := createTestBox(0.5, 0)

	got := r.Resolve(box, entity.VelocityState{Horizontal: 12, Vertical: -60}, testDT)

	require.True(t, got.Obstructed)
	assert.False(t, got.Nudged)
	assert.Equal(t, box.Position, got.Box.Position)
	assert.Equal(t, 0.0, got.Velocity.Vertical)
}

func TestMovementResolver_SingleIteration(t *testing.T) {
	world := createTestWorld()
	cfg := createTestConfig()
	cfg.Move.Iterations = 0
	r := NewMovementResolver(cfg, world)
	box := createTestBox(0, 0.3)

	got := r.Resolve(box, entity.VelocityState{Vertical: -30}, testDT)

	require.True(t, got.Obstructed)
	assert.False(t, overlaps(world, got.Box))
	assert.Equal(t, 0.0, got.Velocity.Vertical)
}

func TestMovementResolver_NeverEndsInOverlap(t *testing.T) {
	world := createTestWorld()
	r := createTestResolver(world)

	velocities := []mgl64.Vec2{
		{13, -40}, {-13, -40}, {13, 30}, {-13, 30}, {0, -40}, {13, 0}, {-13, 0},
	}
	starts := []mgl64.Vec2{
		{0, 0}, {4.5, 0}, {4.9, 2}, {-3.5, 0.9}, {0.5, 0.05}, {-9.4, 1},
	}

	for _, start := range starts {
		for _, v := range velocities {
			box := createTestBox(start.X(), start.Y())
			if overlaps(world, box) {
				continue
			}
			got := r.Resolve(box, entity.VelocityState{Horizontal: v.X(), Vertical: v.Y()}, testDT)
			assert.False(t, overlaps(world, got.Box), "start %v velocity %v", start, v)
		}
	}
}
