package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
	pending   FrameInput // events waiting for the next recorded tick
}

// NewRecorder creates a recorder for a session on stage with the given
// controller config and tick length.
func NewRecorder(stage, controller string, dt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:    Version,
			Stage:      stage,
			Controller: controller,
			DT:         dt,
			StartTime:  time.Now().Format(time.RFC3339),
			Frames:     make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single tick's input
func (r *Recorder) RecordFrame(raw entity.RawInput) {
	if !r.recording {
		return
	}
	fi := toFrameInput(r.frame, raw)
	fi.Rst, fi.Cfg = r.pending.Rst, r.pending.Cfg
	r.pending = FrameInput{}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// RecordReset notes that the controller was moved back to its spawn point.
// The event is stored with the next recorded tick.
func (r *Recorder) RecordReset() {
	if r.recording {
		r.pending.Rst = true
	}
}

// RecordReload notes that the controller was rebuilt from cfg. The event is
// stored with the next recorded tick.
func (r *Recorder) RecordReload(cfg *config.ControllerConfig) {
	if !r.recording || cfg == nil {
		return
	}
	snapshot := *cfg
	r.pending.Cfg = &snapshot
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded session
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
