// Package playing provides the scene that drives one character controller,
// either from the keyboard or from a recorded session.
package playing

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/platformer/internal/application/input"
	"github.com/younwookim/platformer/internal/application/render"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/tilemap"
)

// Control keys, read through the same key source as movement.
const (
	keyPause = ebiten.KeyEscape
	keyReset = ebiten.KeyR
	keyDebug = ebiten.KeyTab
	keySave  = ebiten.KeyF5
)

// Options configures a Playing scene.
type Options struct {
	Config     *config.ControllerConfig
	ConfigName string
	StageName  string
	Grid       *tilemap.Grid
	Query      geometry.Query // world used for collision; nil means Grid
	Keys       input.KeySource
	RecordPath string
	Replay     *replay.ReplayData
	Reloads    <-chan *config.ControllerConfig
}

// Playing is the main scene
type Playing struct {
	cfg      *config.ControllerConfig
	grid     *tilemap.Grid
	ctrl     *system.Controller
	keys     input.KeySource
	poller   *input.Poller
	renderer *render.Renderer
	state    state.GameState
	tick     int
	frame    entity.Frame
	debug    bool

	// Input recording
	recorder   *replay.Recorder
	recordPath string

	replayer *replay.Replayer
	reloads  <-chan *config.ControllerConfig
}

// New creates a new Playing scene.
// If opts.RecordPath is not empty, input will be recorded.
// If opts.Replay is set, input comes from the recording instead of the keyboard.
func New(opts Options) *Playing {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultControllerConfig()
	}
	query := opts.Query
	if query == nil {
		query = opts.Grid
	}
	keys := opts.Keys
	if keys == nil {
		keys = input.EbitenKeys{}
	}

	p := &Playing{
		cfg:        cfg,
		grid:       opts.Grid,
		ctrl:       system.NewController(cfg, query, opts.Grid.Spawn),
		keys:       keys,
		poller:     input.NewPoller(keys, input.DefaultBindings()),
		renderer:   render.NewRenderer(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.PixelsPerUnit),
		state:      state.StatePlaying,
		debug:      true,
		recordPath: opts.RecordPath,
		reloads:    opts.Reloads,
	}

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.state = state.StateReplaying
	} else if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(opts.StageName, opts.ConfigName, cfg.FrameDT())
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p
}

// Update advances one tick (implements scene.Scene). A replay runs at its
// recorded tick length whatever dt the game loop passes.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.drainReloads()
	p.handleKeys()

	if !p.state.Simulating() {
		return nil, nil
	}

	if p.replayer == nil {
		p.Step(p.poller.Poll(), dt)
		return nil, nil // nil = stay on this scene
	}

	fi, ok := p.replayer.Next()
	if !ok {
		p.state = state.StateReplayDone
		log.Printf("Replay finished: %d frames, final position %v", p.replayer.TotalFrames(), p.ctrl.Position())
		return nil, nil
	}
	p.ctrl = fi.Apply(p.ctrl)
	p.Step(fi.RawInput(), p.replayer.DT())
	return nil, nil
}

// Step records raw if recording and ticks the controller. Tick i runs at
// time i*dt so a recording replays identically.
func (p *Playing) Step(raw entity.RawInput, dt float64) entity.Frame {
	if p.recorder != nil {
		p.recorder.RecordFrame(raw)
	}
	p.frame = p.ctrl.Tick(raw, float64(p.tick)*dt, dt)
	p.tick++
	return p.frame
}

func (p *Playing) handleKeys() {
	if p.keys.IsKeyJustPressed(keyPause) {
		switch p.state {
		case state.StatePlaying:
			p.state = state.StatePaused
		case state.StatePaused:
			p.state = state.StatePlaying
		}
	}
	if p.keys.IsKeyJustPressed(keyDebug) {
		p.debug = !p.debug
	}
	if p.keys.IsKeyJustPressed(keySave) && p.recorder != nil {
		p.saveRecording()
	}
	if p.keys.IsKeyJustPressed(keyReset) && p.replayer == nil {
		p.ResetCharacter()
	}
}

// ResetCharacter moves the character back to its spawn point and notes the
// reset in the recording.
func (p *Playing) ResetCharacter() {
	p.ctrl.Reset(p.ctrl.Spawn())
	if p.recorder != nil {
		p.recorder.RecordReset()
	}
}

// drainReloads applies the newest pending config, if any.
func (p *Playing) drainReloads() {
	var latest *config.ControllerConfig
	for {
		select {
		case cfg, ok := <-p.reloads:
			if !ok {
				p.reloads = nil
				p.Reload(latest)
				return
			}
			latest = cfg
		default:
			p.Reload(latest)
			return
		}
	}
}

// Reload replaces the controller with a new instance built from cfg at the
// current position and notes it in the recording. An unusable config is
// logged and ignored, as is any reload during a replay.
func (p *Playing) Reload(cfg *config.ControllerConfig) {
	if cfg == nil {
		return
	}
	if p.replayer != nil {
		log.Printf("Config reload ignored during replay")
		return
	}
	next := p.ctrl.Rebuild(cfg)
	if err := next.Err(); err != nil {
		log.Printf("Config reload rejected: %v", err)
		return
	}
	p.cfg = cfg
	p.ctrl = next
	if p.recorder != nil {
		p.recorder.RecordReload(cfg)
	}
	log.Printf("Config reloaded at %v", p.ctrl.Position())
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// OnEnter is called when the scene becomes active
func (p *Playing) OnEnter() {
	if err := p.ctrl.Err(); err != nil {
		log.Printf("Controller unavailable: %v", err)
	}
}

// OnExit saves any pending recording
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// Draw renders the scene
func (p *Playing) Draw(screen *ebiten.Image) {
	r := p.renderer
	r.Clear(screen)

	snap := p.ctrl.Snapshot()
	min := p.grid.Origin
	max := min.Add(mgl64.Vec2{float64(p.grid.Width), float64(p.grid.Height)}.Mul(p.grid.TileSize))
	r.Camera.Follow(snap.Box.Center(), min, max)

	r.DrawGrid(screen, p.grid)
	if p.debug {
		r.DrawSnapshot(screen, snap)
	} else {
		r.DrawSnapshot(screen, system.DebugSnapshot{Box: snap.Box})
	}
	r.DrawHUD(screen, p.frame, p.ctrl.Velocity(), p.status())
}

func (p *Playing) status() string {
	switch {
	case p.replayer != nil:
		return fmt.Sprintf("%s %d/%d", p.state, p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	case p.recorder != nil:
		return fmt.Sprintf("%s REC %d", p.state, p.recorder.FrameCount())
	default:
		return p.state.String()
	}
}

// Controller returns the active controller
func (p *Playing) Controller() *system.Controller {
	return p.ctrl
}

// State returns the run state
func (p *Playing) State() state.GameState {
	return p.state
}

// Ticks returns the number of simulated ticks
func (p *Playing) Ticks() int {
	return p.tick
}

// Recorder returns the active recorder, or nil
func (p *Playing) Recorder() *replay.Recorder {
	return p.recorder
}

// Debug reports whether ray fans are drawn
func (p *Playing) Debug() bool {
	return p.debug
}
