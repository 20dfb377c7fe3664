package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultControllerFile is the tuning file LoadAll looks for.
const DefaultControllerFile = "controller.yaml"

// GameConfig holds all loaded configurations
type GameConfig struct {
	Controller *ControllerConfig
	Stage      *StageConfig
}

// Loader loads configuration files using the fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadController loads a tuning file (.json, .yaml or .yml) on top of
// DefaultControllerConfig and normalizes the result.
func (l *Loader) LoadController(name string) (*ControllerConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := ParseController(name, data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseController decodes tuning data, picking the codec from name's extension.
func ParseController(name string, data []byte) (*ControllerConfig, error) {
	cfg := DefaultControllerConfig()

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q for %s", ext, name)
	}

	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	p := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if cfg.TileSize <= 0 {
		cfg.TileSize = 1
	}

	return &cfg, nil
}

// LoadAll loads the default tuning file and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	controller, err := l.LoadController(DefaultControllerFile)
	if err != nil {
		return nil, err
	}

	stageCfg, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Controller: controller,
		Stage:      stageCfg,
	}, nil
}
