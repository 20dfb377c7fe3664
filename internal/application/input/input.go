// Package input polls the keyboard and produces per-tick controller input.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platformer/internal/domain/entity"
)

// KeySource reports key state for the current tick.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsKeyJustReleased(key ebiten.Key) bool
}

// EbitenKeys reads the live ebiten keyboard state.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool      { return ebiten.IsKeyPressed(key) }
func (EbitenKeys) IsKeyJustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (EbitenKeys) IsKeyJustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

// Bindings maps actions to keys. Any key of an action triggers it.
type Bindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Up    []ebiten.Key
	Down  []ebiten.Key
	Jump  []ebiten.Key
	Dash  []ebiten.Key
}

// DefaultBindings returns WASD/arrows movement, Space or W to jump and
// Shift to dash.
func DefaultBindings() Bindings {
	return Bindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Jump:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyW},
		Dash:  []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	}
}

// Poller turns key state into entity.RawInput.
type Poller struct {
	keys     KeySource
	bindings Bindings
}

// NewPoller creates a poller. A nil source reads the live keyboard.
func NewPoller(keys KeySource, bindings Bindings) *Poller {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &Poller{keys: keys, bindings: bindings}
}

// Poll reads this tick's input. Call once per tick.
func (p *Poller) Poll() entity.RawInput {
	b := p.bindings
	return entity.RawInput{
		JumpPressed:  p.any(p.keys.IsKeyJustPressed, b.Jump),
		JumpReleased: p.released(b.Jump),
		JumpHeld:     p.any(p.keys.IsKeyPressed, b.Jump),
		DashPressed:  p.any(p.keys.IsKeyJustPressed, b.Dash),
		Horizontal:   p.axis(b.Left, b.Right),
		Vertical:     p.axis(b.Down, b.Up),
	}
}

func (p *Poller) any(check func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}

// released is true when a bound key went up and no other bound key is
// still down.
func (p *Poller) released(keys []ebiten.Key) bool {
	return p.any(p.keys.IsKeyJustReleased, keys) && !p.any(p.keys.IsKeyPressed, keys)
}

func (p *Poller) axis(negative, positive []ebiten.Key) float64 {
	v := 0.0
	if p.any(p.keys.IsKeyPressed, negative) {
		v--
	}
	if p.any(p.keys.IsKeyPressed, positive) {
		v++
	}
	return v
}
