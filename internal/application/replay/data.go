package replay

import (
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Version is written into every recording.
const Version = "2.0"

// FrameInput records raw input for a single tick
type FrameInput struct {
	F   int     `json:"f"`             // Tick number
	H   float64 `json:"h,omitempty"`   // Horizontal axis
	V   float64 `json:"v,omitempty"`   // Vertical axis
	J   bool    `json:"j,omitempty"`   // JumpHeld
	JP  bool    `json:"jp,omitempty"`  // JumpPressed
	JR  bool    `json:"jr,omitempty"`  // JumpReleased
	Dsh bool    `json:"dsh,omitempty"` // DashPressed

	// Controller events that happened before this tick
	Rst bool                     `json:"rst,omitempty"` // reset to spawn
	Cfg *config.ControllerConfig `json:"cfg,omitempty"` // rebuilt with this config
}

// ReplayData contains everything needed to re-run a session
type ReplayData struct {
	Version    string       `json:"version"`
	Stage      string       `json:"stage"`
	Controller string       `json:"controller"` // controller config file name
	DT         float64      `json:"dt"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}

func toFrameInput(frame int, raw entity.RawInput) FrameInput {
	return FrameInput{
		F:   frame,
		H:   raw.Horizontal,
		V:   raw.Vertical,
		J:   raw.JumpHeld,
		JP:  raw.JumpPressed,
		JR:  raw.JumpReleased,
		Dsh: raw.DashPressed,
	}
}

// RawInput converts the recorded tick back to controller input.
func (fi FrameInput) RawInput() entity.RawInput {
	return entity.RawInput{
		JumpPressed:  fi.JP,
		JumpReleased: fi.JR,
		JumpHeld:     fi.J,
		DashPressed:  fi.Dsh,
		Horizontal:   fi.H,
		Vertical:     fi.V,
	}
}

// Apply performs the controller events recorded with this tick, a reload
// before a reset, and returns the controller the tick runs on. A recorded
// config that no longer validates keeps the current controller.
func (fi FrameInput) Apply(ctrl *system.Controller) *system.Controller {
	if fi.Cfg != nil {
		if next := ctrl.Rebuild(fi.Cfg); next.Err() == nil {
			ctrl = next
		}
	}
	if fi.Rst {
		ctrl.Reset(ctrl.Spawn())
	}
	return ctrl
}
