package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"heightmap/internal/config"
	"heightmap/internal/logger"
	"heightmap/internal/render"
	"heightmap/internal/terrain"
)

// Scene is everything a front end needs to draw frames.
type Scene struct {
	Config   *config.Config
	Store    *terrain.Store
	Renderer *render.Renderer
}

// Bootstrap loads configuration, starts logging and opens the terrain.
// Callers own logger.Sync.
func Bootstrap(flags *config.Flags) (*Scene, error) {
	path := ""
	if flags != nil {
		path = flags.Config
	}
	cfg, err := config.Load(path, flags)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	logger.Debug("config loaded",
		zap.String("path", path),
		zap.Int("width", cfg.Render.Width),
		zap.Int("height", cfg.Render.Height),
		zap.String("terrain", cfg.Terrain.Source),
	)
	return Open(cfg)
}

// Open builds a scene from an already loaded configuration.
func Open(cfg *config.Config) (*Scene, error) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(opts)
	if err != nil {
		return nil, err
	}

	src := cfg.TerrainSource()
	start := time.Now()
	store, err := terrain.Open(src)
	if err != nil {
		logTerrainError(src, err)
		return nil, err
	}
	size := store.Size()
	logger.Info("terrain ready",
		zap.String("source", src.Kind),
		zap.Int("width", size.W),
		zap.Int("height", size.H),
		zap.Duration("took", time.Since(start)),
	)
	return &Scene{Config: cfg, Store: store, Renderer: renderer}, nil
}

func logTerrainError(src terrain.SourceConfig, err error) {
	var asset *terrain.AssetError
	if errors.As(err, &asset) {
		logger.Error("terrain asset failed to load",
			zap.String("asset", asset.Asset),
			zap.String("path", asset.Path),
			zap.Error(asset.Err),
		)
		return
	}
	logger.Error("terrain failed to open", zap.String("source", src.Kind), zap.Error(err))
}
