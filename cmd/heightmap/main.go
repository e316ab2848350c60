//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"heightmap/internal/app"
	"heightmap/internal/config"
	"heightmap/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := app.Bootstrap(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := scene.Config
	game := app.New(scene.Renderer, scene.Store, app.Options{
		Camera: cfg.Camera,
		Scale:  cfg.Window.Scale,
		Snapshot: app.SnapshotSettings{
			Dir:   cfg.Snapshot.Dir,
			Scale: cfg.Snapshot.Scale,
		},
	})

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(cfg.Render.Width*cfg.Window.Scale, cfg.Render.Height*cfg.Window.Scale)

	logger.Info("starting", zap.Stringer("camera", cfg.Camera), zap.Int("workers", cfg.Render.Workers))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run failed", zap.Error(err))
	}
}
