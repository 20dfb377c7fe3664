package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayFan_Origins(t *testing.T) {
	tests := []struct {
		name      string
		fan       RayFan
		extraRays int
		want      []mgl64.Vec2
	}{
		{
			name:      "no extra rays samples both ends",
			fan:       RayFan{Horizontal: true, Start: -0.5, End: 0.5, Fixed: -1, Dir: mgl64.Vec2{0, -1}},
			extraRays: 0,
			want:      []mgl64.Vec2{{-0.5, -1}, {0.5, -1}},
		},
		{
			name:      "one extra ray hits the middle",
			fan:       RayFan{Horizontal: true, Start: -0.5, End: 0.5, Fixed: 1, Dir: mgl64.Vec2{0, 1}},
			extraRays: 1,
			want:      []mgl64.Vec2{{-0.5, 1}, {0, 1}, {0.5, 1}},
		},
		{
			name:      "vertical fan samples Y",
			fan:       RayFan{Horizontal: false, Start: 0, End: 3, Fixed: 2, Dir: mgl64.Vec2{1, 0}},
			extraRays: 2,
			want:      []mgl64.Vec2{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		},
		{
			name:      "zero width range still yields both endpoints",
			fan:       RayFan{Horizontal: true, Start: 0.25, End: 0.25, Fixed: 0, Dir: mgl64.Vec2{0, -1}},
			extraRays: 0,
			want:      []mgl64.Vec2{{0.25, 0}, {0.25, 0}},
		},
		{
			name:      "inverted range keeps its endpoints",
			fan:       RayFan{Horizontal: true, Start: 1, End: 0, Fixed: 0, Dir: mgl64.Vec2{0, -1}},
			extraRays: 1,
			want:      []mgl64.Vec2{{1, 0}, {0.5, 0}, {0, 0}},
		},
		{
			name:      "negative extra rays treated as zero",
			fan:       RayFan{Horizontal: true, Start: 0, End: 1, Fixed: 0, Dir: mgl64.Vec2{0, -1}},
			extraRays: -3,
			want:      []mgl64.Vec2{{0, 0}, {1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fan.Origins(tt.extraRays)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i].X(), got[i].X(), 1e-9, "origin %d x", i)
				assert.InDelta(t, tt.want[i].Y(), got[i].Y(), 1e-9, "origin %d y", i)
			}
		})
	}
}

func TestRayFan_OriginsCount(t *testing.T) {
	fan := RayFan{Horizontal: true, Start: 0, End: 0.9, Fixed: 0}
	for extra := 0; extra <= 10; extra++ {
		origins := fan.Origins(extra)
		assert.Len(t, origins, 2+extra)
		assert.Equal(t, 0.9, origins[len(origins)-1].X(), "last origin must be exactly End")
	}
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "Up", SideUp.String())
	assert.Equal(t, "Down", SideDown.String())
	assert.Equal(t, "Left", SideLeft.String())
	assert.Equal(t, "Right", SideRight.String())
	assert.Equal(t, "Unknown", Side(99).String())
}
