// Command snapshot renders terrain without a window and writes the last frame
// as a PNG. It doubles as a renderer benchmark.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"heightmap/internal/app"
	"heightmap/internal/config"
	"heightmap/internal/core"
	"heightmap/internal/logger"
	"heightmap/internal/render"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	frames := flag.Int("frames", 1, "number of frames to render")
	out := flag.String("out", "", "output PNG path (default: timestamped file in snapshot.dir)")
	spin := flag.Float64("spin", 0, "camera yaw change per frame in radians")
	flag.Parse()

	if err := run(flags, *frames, *out, *spin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(flags *config.Flags, frames int, out string, spin float64) error {
	if frames < 1 {
		return fmt.Errorf("frames %d must be at least 1", frames)
	}
	scene, err := app.Bootstrap(flags)
	if err != nil {
		return err
	}
	cfg := scene.Config

	frame := scene.Renderer.NewFrame()
	cam := cfg.Camera
	stats := benchmark(scene, frame, &cam, frames, spin)
	logger.Info("render finished",
		zap.Int("frames", stats.frames),
		zap.Duration("min", stats.min),
		zap.Duration("max", stats.max),
		zap.Duration("mean", stats.mean()),
		zap.Int("workers", cfg.Render.Workers),
		zap.Stringer("camera", cam),
	)

	if out == "" {
		out = render.SnapshotName(cfg.Snapshot.Dir, "heightmap", time.Now())
	}
	if err := render.WritePNG(out, frame, cfg.Snapshot.Scale); err != nil {
		return err
	}
	logger.Info("snapshot saved", zap.String("path", out), zap.Float64("scale", cfg.Snapshot.Scale))
	return nil
}

type frameStats struct {
	frames   int
	total    time.Duration
	min, max time.Duration
}

func (s frameStats) mean() time.Duration {
	if s.frames == 0 {
		return 0
	}
	return s.total / time.Duration(s.frames)
}

func benchmark(scene *app.Scene, frame *render.Frame, cam *core.Camera, frames int, spin float64) frameStats {
	var stats frameStats
	for i := 0; i < frames; i++ {
		if i > 0 {
			cam.Angle += spin
		}
		start := time.Now()
		scene.Renderer.Render(*cam, scene.Store, frame)
		elapsed := time.Since(start)

		stats.frames++
		stats.total += elapsed
		if stats.min == 0 || elapsed < stats.min {
			stats.min = elapsed
		}
		stats.max = max(stats.max, elapsed)
		logger.Debug("frame", zap.Int("index", i), zap.Duration("render", elapsed))
	}
	return stats
}
