package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"runtime"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geometry"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/cpspace"
	"github.com/younwookim/platformer/internal/infrastructure/tilemap"
)

// Collision backends selectable with -backend.
const (
	backendTilemap = "tilemap"
	backendCP      = "cp"
)

// newLoader reads from dir when set, otherwise from the embedded configs.
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// world is everything a controller needs from a loaded stage.
type world struct {
	controller *config.ControllerConfig
	stage      *config.StageConfig
	grid       *tilemap.Grid
	query      geometry.Query
}

func loadWorld(loader *config.Loader, controllerFile, stage, backend string) (*world, error) {
	ctrlCfg, err := loader.LoadController(controllerFile)
	if err != nil {
		return nil, err
	}
	stageCfg, err := loader.LoadStage(stage)
	if err != nil {
		return nil, err
	}
	grid, err := tilemap.FromStage(stageCfg)
	if err != nil {
		return nil, err
	}
	query, err := selectBackend(backend, grid)
	if err != nil {
		return nil, err
	}
	return &world{controller: ctrlCfg, stage: stageCfg, grid: grid, query: query}, nil
}

func selectBackend(name string, grid *tilemap.Grid) (geometry.Query, error) {
	switch name {
	case backendTilemap, "":
		return grid, nil
	case backendCP:
		return cpspace.FromGrid(grid), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", name, backendTilemap, backendCP)
	}
}

// tickLength is the simulation step for a window session: the recording's
// when replaying one, the configured framerate's otherwise.
func tickLength(cfg *config.ControllerConfig, data *replay.ReplayData) float64 {
	if data != nil && data.DT > 0 {
		return data.DT
	}
	return cfg.FrameDT()
}

// runReplay re-simulates data headless and prints a summary. With copies > 1
// the same recording is also stepped on that many controllers concurrently
// and every copy must end where the single run ended.
func runReplay(ctx context.Context, out io.Writer, w *world, data *replay.ReplayData, copies int) (replay.Result, error) {
	spawn := w.grid.Spawn
	res := replay.Simulate(system.NewController(w.controller, w.query, spawn), *data)
	_, _ = fmt.Fprintf(out, "frames=%d jumps=%d landings=%d final=(%.4f, %.4f)\n",
		len(res.Frames), res.Jumps, res.Landings, res.Final.Position.X(), res.Final.Position.Y())

	if copies <= 1 {
		return res, nil
	}

	crowd := system.NewCrowd(runtime.NumCPU())
	for i := 0; i < copies; i++ {
		crowd.Add(system.NewController(w.controller, w.query, spawn))
	}
	inputs := make([]entity.RawInput, copies)
	for tick, fi := range data.Frames {
		raw := fi.RawInput()
		for i := range inputs {
			crowd.Set(i, fi.Apply(crowd.Member(i)))
			inputs[i] = raw
		}
		if _, err := crowd.Step(ctx, inputs, float64(tick)*data.DT, data.DT); err != nil {
			return res, err
		}
	}
	for i := 0; i < crowd.Len(); i++ {
		if got := crowd.Member(i).Box(); got != res.Final {
			return res, fmt.Errorf("copy %d diverged: %v != %v", i, got.Position, res.Final.Position)
		}
	}
	_, _ = fmt.Fprintf(out, "crowd: %d copies match\n", copies)
	return res, nil
}

// watchController sends a freshly loaded config every time the named file
// changes. It returns when the watcher is closed.
func watchController(watcher *config.Watcher, loader *config.Loader, name string, out chan<- *config.ControllerConfig) {
	defer close(out)
	for {
		select {
		case path, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(path) != filepath.Base(name) {
				continue
			}
			cfg, err := loader.LoadController(name)
			if err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			out <- cfg
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher error: %v", err)
		}
	}
}
