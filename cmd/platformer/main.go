package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Re-run a recording without a window and print the result")
	copiesFlag := flag.Int("copies", 1, "With -replay: also step this many controllers concurrently and compare")
	viewFlag := flag.Bool("view", false, "With -replay: watch the recording in a window instead")
	backendFlag := flag.String("backend", backendTilemap, "Collision backend: tilemap or cp")
	configDir := flag.String("config-dir", "", "Read configs from this directory instead of the embedded set")
	controllerFlag := flag.String("controller", config.DefaultControllerFile, "Controller tuning file (.yaml, .yml or .json)")
	stageFlag := flag.String("stage", "demo", "Stage name")
	watchFlag := flag.Bool("watch", false, "Reload the controller when its tuning file changes (needs -config-dir)")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatal(err)
	}

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Controller != "" && *controllerFlag == config.DefaultControllerFile {
			*controllerFlag = data.Controller
		}
		if data.Stage != "" && *stageFlag == "demo" {
			*stageFlag = data.Stage
		}
	}

	w, err := loadWorld(loader, *controllerFlag, *stageFlag, *backendFlag)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	if data != nil && !*viewFlag {
		if _, err := runReplay(context.Background(), os.Stdout, w, data, *copiesFlag); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	opts := playing.Options{
		Config:     w.controller,
		ConfigName: *controllerFlag,
		StageName:  *stageFlag,
		Grid:       w.grid,
		Query:      w.query,
		Replay:     data,
	}
	if data == nil {
		opts.RecordPath = *recordFlag
	}

	if *watchFlag {
		if *configDir == "" {
			log.Printf("-watch ignored: embedded configs cannot change")
		} else {
			watcher, err := config.NewWatcher(*configDir)
			if err != nil {
				log.Fatalf("Failed to watch %s: %v", *configDir, err)
			}
			defer func() { _ = watcher.Close() }()

			reloads := make(chan *config.ControllerConfig, 1)
			go watchController(watcher, loader, *controllerFlag, reloads)
			opts.Reloads = reloads
			log.Printf("Watching %s for changes to %s", *configDir, *controllerFlag)
		}
	}

	display := w.controller.Display
	g := game.New(playing.New(opts), display.ScreenWidth, display.ScreenHeight, tickLength(w.controller, data))
	defer g.Close()

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Platformer Controller")
	tps := display.Framerate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(g); err != nil {
		log.Print(err)
	}
}
