package render

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/tilemap"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorWall    = color.RGBA{80, 80, 100, 255}
	colorWater   = color.RGBA{40, 90, 160, 200}
	colorBox     = color.RGBA{100, 200, 100, 255}
	colorRayFree = colornames.Limegreen
	colorRayHit  = colornames.Red
)

// Segment is one debug ray in world space.
type Segment struct {
	From, To mgl64.Vec2
	Side     entity.Side
	Blocked  bool
}

// RaySegments expands the snapshot's ray fans into drawable segments.
// Segments of a blocked side are flagged.
func RaySegments(snap system.DebugSnapshot) []Segment {
	var segs []Segment
	for _, side := range entity.Sides {
		fan := snap.Fans[side]
		blocked := snap.Contacts.Blocked(side)
		for _, origin := range fan.Origins(snap.ExtraRays) {
			segs = append(segs, Segment{
				From:    origin,
				To:      origin.Add(fan.Dir.Mul(snap.RayDistance)),
				Side:    side,
				Blocked: blocked,
			})
		}
	}
	return segs
}

// Renderer draws tiles and controller snapshots through a camera.
type Renderer struct {
	Camera Camera
}

// NewRenderer creates a renderer for the given screen size.
func NewRenderer(screenW, screenH int, pixelsPerUnit float64) *Renderer {
	return &Renderer{Camera: Camera{
		PixelsPerUnit: pixelsPerUnit,
		ScreenWidth:   screenW,
		ScreenHeight:  screenH,
	}}
}

// Clear fills the background.
func (r *Renderer) Clear(screen *ebiten.Image) {
	screen.Fill(colorBG)
}

// DrawGrid draws every solid tile.
func (r *Renderer) DrawGrid(screen *ebiten.Image, g *tilemap.Grid) {
	g.EachSolid(func(tx, ty int, tile tilemap.Tile) {
		min, max := g.TileBounds(tx, ty)
		x, y, w, h := r.Camera.RectToScreen(min, max)
		c := colorWall
		if tile.Type == tilemap.TileWater {
			c = colorWater
		}
		vector.FillRect(screen, x, y, w, h, c, false)
	})
}

// DrawSnapshot draws the collision box and its ray fans.
func (r *Renderer) DrawSnapshot(screen *ebiten.Image, snap system.DebugSnapshot) {
	x, y, w, h := r.Camera.RectToScreen(snap.Box.Min(), snap.Box.Max())
	vector.StrokeRect(screen, x, y, w, h, 1, colorBox, false)

	for _, seg := range RaySegments(snap) {
		x0, y0 := r.Camera.WorldToScreen(seg.From)
		x1, y1 := r.Camera.WorldToScreen(seg.To)
		c := colorRayFree
		if seg.Blocked {
			c = colorRayHit
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
	}
}

// DrawHUD prints the controller state in the top-left corner.
func (r *Renderer) DrawHUD(screen *ebiten.Image, frame entity.Frame, vel entity.VelocityState, extra string) {
	msg := fmt.Sprintf("grounded: %v\nvel: %.2f, %.2f\napex: %.2f\n%s",
		frame.Grounded, vel.Horizontal, vel.Vertical, vel.ApexFactor, extra)
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
