package replay

import (
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
)

// Result is the outcome of a headless re-run.
type Result struct {
	Frames   []entity.Frame
	Final    entity.Box
	Velocity entity.VelocityState
	Landings int
	Jumps    int
}

// Simulate feeds every recorded tick to ctrl and collects the frames.
// Tick i runs at time i*DT. Recorded resets and reloads are replayed, so the
// result describes whichever controller was active at the end.
func Simulate(ctrl *system.Controller, data ReplayData) Result {
	r := NewReplayer(data)
	res := Result{Frames: make([]entity.Frame, 0, r.TotalFrames())}

	for tick := 0; ; tick++ {
		fi, ok := r.Next()
		if !ok {
			break
		}
		ctrl = fi.Apply(ctrl)
		frame := ctrl.Tick(fi.RawInput(), float64(tick)*data.DT, data.DT)
		if frame.JustLanded {
			res.Landings++
		}
		if frame.JustJumped {
			res.Jumps++
		}
		res.Frames = append(res.Frames, frame)
	}

	res.Final = ctrl.Box()
	res.Velocity = ctrl.Velocity()
	return res
}
