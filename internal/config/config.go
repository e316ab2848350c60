// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	"heightmap/internal/core"
	"heightmap/internal/render"
	"heightmap/internal/terrain"
)

// Config holds all program settings.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Camera   core.Camera    `yaml:"camera"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Window   WindowConfig   `yaml:"window"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// RenderConfig holds viewport and projection settings.
type RenderConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	FOV         float64 `yaml:"fov"`          // Radians
	RayDistance float64 `yaml:"ray_distance"` // Render-distance cutoff in terrain cells
	ScaleHeight float64 `yaml:"scale_height"`
	Workers     int     `yaml:"workers"` // 0 = one per CPU
	Background  string  `yaml:"background"`
}

// TerrainConfig selects where terrain comes from.
type TerrainConfig struct {
	Source    string `yaml:"source"` // "files" or "procedural"
	ColorMap  string `yaml:"color_map"`
	HeightMap string `yaml:"height_map"`
	Size      int    `yaml:"size"` // Procedural grid size
	Seed      int64  `yaml:"seed"`
}

// WindowConfig holds display settings for the GUI build.
type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"`
	TPS   int    `yaml:"tps"`
}

// SnapshotConfig holds screenshot output settings.
type SnapshotConfig struct {
	Dir   string  `yaml:"dir"`
	Scale float64 `yaml:"scale"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the classic renderer setup.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:       800,
			Height:      600,
			FOV:         math.Pi / 3,
			RayDistance: 2000,
			ScaleHeight: 620,
			Workers:     0,
			Background:  "#000000",
		},
		Camera: core.Camera{
			X:     -100,
			Y:     270,
			Z:     0,
			Angle: math.Pi / 4,
			Pitch: 40,
		},
		Terrain: TerrainConfig{
			Source:    "files",
			ColorMap:  "color_map.png",
			HeightMap: "height_map.png",
			Size:      1024,
			Seed:      42,
		},
		Window: WindowConfig{
			Title: "Heightmap",
			Scale: 1,
			TPS:   60,
		},
		Snapshot: SnapshotConfig{
			Dir:   "screenshots",
			Scale: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// RenderOptions converts the render section into renderer options.
func (c *Config) RenderOptions() (render.Options, error) {
	bg, err := core.ParseRGB(c.Render.Background)
	if err != nil {
		return render.Options{}, fmt.Errorf("render.background: %w", err)
	}
	opts := render.Options{
		Width:       c.Render.Width,
		Height:      c.Render.Height,
		FOV:         c.Render.FOV,
		RayDistance: c.Render.RayDistance,
		ScaleHeight: c.Render.ScaleHeight,
		Workers:     c.Render.Workers,
		Background:  bg,
	}
	if err := opts.Validate(); err != nil {
		return render.Options{}, fmt.Errorf("render: %w", err)
	}
	return opts, nil
}

// TerrainSource converts the terrain section into a source configuration.
func (c *Config) TerrainSource() terrain.SourceConfig {
	return terrain.SourceConfig{
		Kind:      c.Terrain.Source,
		ColorMap:  c.Terrain.ColorMap,
		HeightMap: c.Terrain.HeightMap,
		Size:      c.Terrain.Size,
		Seed:      c.Terrain.Seed,
	}
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.RenderOptions(); err != nil {
		errs = append(errs, err)
	}
	if _, ok := terrain.Sources()[c.Terrain.Source]; !ok {
		errs = append(errs, fmt.Errorf("terrain.source %q: expected one of %v", c.Terrain.Source, terrain.SourceNames()))
	}
	if c.Terrain.Source == "procedural" && c.Terrain.Size <= 0 {
		errs = append(errs, fmt.Errorf("terrain.size %d must be positive", c.Terrain.Size))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale %d must be positive", c.Window.Scale))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps %d must be positive", c.Window.TPS))
	}
	if c.Snapshot.Scale <= 0 {
		errs = append(errs, fmt.Errorf("snapshot.scale %v must be positive", c.Snapshot.Scale))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q: expected debug, info, warn or error", c.Logging.Level))
	}
	return errors.Join(errs...)
}
