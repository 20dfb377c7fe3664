package config

import "github.com/go-gl/mathgl/mgl64"

// ControllerConfig is the root tuning config (controller.json / controller.yaml).
// Every value is constant for the life of a controller instance.
type ControllerConfig struct {
	Display  DisplayConfig  `json:"display" yaml:"display"`
	Collider ColliderConfig `json:"collider" yaml:"collider"`
	Walk     WalkConfig     `json:"walk" yaml:"walk"`
	Jump     JumpConfig     `json:"jump" yaml:"jump"`
	Gravity  GravityConfig  `json:"gravity" yaml:"gravity"`
	Move     MoveConfig     `json:"move" yaml:"move"`
	Input    InputConfig    `json:"input" yaml:"input"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight" yaml:"screenHeight"`
	Scale         int     `json:"scale" yaml:"scale"`
	Framerate     int     `json:"framerate" yaml:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit" yaml:"pixelsPerUnit"` // world unit -> screen pixels
}

// Vec2 is a JSON/YAML friendly 2D vector.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec converts to mgl64.
func (v Vec2) Vec() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// ColliderConfig configures the character box and the contact ray fans.
type ColliderConfig struct {
	Offset             Vec2    `json:"offset" yaml:"offset"`
	Size               Vec2    `json:"size" yaml:"size"`
	JumpCornerBuffer   float64 `json:"jumpCornerBuffer" yaml:"jumpCornerBuffer"`     // Up fan, X inset
	GroundCornerBuffer float64 `json:"groundCornerBuffer" yaml:"groundCornerBuffer"` // Down fan, X inset
	HeadCornerBuffer   float64 `json:"headCornerBuffer" yaml:"headCornerBuffer"`     // Left/Right fans, top inset
	StairsCornerBuffer float64 `json:"stairsCornerBuffer" yaml:"stairsCornerBuffer"` // Left/Right fans, bottom inset
	RayDistance        float64 `json:"rayDistance" yaml:"rayDistance"`
	ExtraRays          int     `json:"extraRays" yaml:"extraRays"`
	GroundLayer        uint32  `json:"groundLayer" yaml:"groundLayer"` // layer mask
}

type WalkConfig struct {
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
	MoveClamp    float64 `json:"moveClamp" yaml:"moveClamp"`
	Deceleration float64 `json:"deceleration" yaml:"deceleration"`
	ApexBonus    float64 `json:"apexBonus" yaml:"apexBonus"`
}

type JumpConfig struct {
	Height                 float64 `json:"height" yaml:"height"` // launch speed
	ApexThreshold          float64 `json:"apexThreshold" yaml:"apexThreshold"`
	EarlyReleaseMultiplier float64 `json:"earlyReleaseMultiplier" yaml:"earlyReleaseMultiplier"`
}

type GravityConfig struct {
	FallClamp    float64 `json:"fallClamp" yaml:"fallClamp"` // terminal speed, magnitude
	MinFallSpeed float64 `json:"minFallSpeed" yaml:"minFallSpeed"`
	MaxFallSpeed float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"`
}

type MoveConfig struct {
	Iterations int `json:"iterations" yaml:"iterations"` // free-move interpolation steps
}

type InputConfig struct {
	JumpBuffer float64 `json:"jumpBuffer" yaml:"jumpBuffer"` // seconds
	CoyoteTime float64 `json:"coyoteTime" yaml:"coyoteTime"` // seconds
}

// DefaultControllerConfig returns the stock tuning.
func DefaultControllerConfig() *ControllerConfig {
	return &ControllerConfig{
		Display: DisplayConfig{
			ScreenWidth:   480,
			ScreenHeight:  270,
			Scale:         2,
			Framerate:     60,
			PixelsPerUnit: 16,
		},
		Collider: ColliderConfig{
			Size:               Vec2{X: 1, Y: 1.3},
			JumpCornerBuffer:   0.15,
			GroundCornerBuffer: 0.05,
			StairsCornerBuffer: 0.2,
			RayDistance:        0.1,
			ExtraRays:          1,
			GroundLayer:        1,
		},
		Walk: WalkConfig{
			Acceleration: 90,
			MoveClamp:    13,
			Deceleration: 60,
			ApexBonus:    2,
		},
		Jump: JumpConfig{
			Height:                 30,
			ApexThreshold:          10,
			EarlyReleaseMultiplier: 3,
		},
		Gravity: GravityConfig{
			FallClamp:    40,
			MinFallSpeed: 80,
			MaxFallSpeed: 120,
		},
		Move: MoveConfig{
			Iterations: 10,
		},
		Input: InputConfig{
			JumpBuffer: 0.1,
			CoyoteTime: 0.1,
		},
	}
}

// FrameDT returns the fixed tick length implied by the framerate.
func (c *ControllerConfig) FrameDT() float64 {
	if c.Display.Framerate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.Display.Framerate)
}
