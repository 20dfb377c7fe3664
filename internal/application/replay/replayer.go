package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.DT <= 0 {
		return nil, fmt.Errorf("invalid replay %s: tick length %v", filename, data.DT)
	}

	return &data, nil
}

// Next returns the current tick's record and advances. The caller applies
// its events before ticking with its input.
func (r *Replayer) Next() (FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return FrameInput{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi, true
}

// Done reports whether every recorded tick has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// DT returns the recorded tick length
func (r *Replayer) DT() float64 {
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
