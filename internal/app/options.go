package app

import (
	"time"

	"heightmap/internal/core"
)

// UpdateFunc mutates the camera before each frame. dt is the time since the
// previous frame.
type UpdateFunc func(cam *core.Camera, dt time.Duration)

// SnapshotSettings controls where screenshots go.
type SnapshotSettings struct {
	Dir   string
	Scale float64
}

// Options configures a Game.
type Options struct {
	Camera   core.Camera
	Scale    int
	Snapshot SnapshotSettings
}
