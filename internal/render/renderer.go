// Package render draws heightmapped terrain into a framebuffer by casting one
// ray per screen column ("voxel space").
package render

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"heightmap/internal/core"
	"heightmap/internal/terrain"
)

// minCorrectedDepth guards the projection divide. Samples whose perpendicular
// depth falls below it are ignored.
const minCorrectedDepth = 1e-6

// Options configures the viewport and projection.
type Options struct {
	Width       int
	Height      int
	FOV         float64
	RayDistance float64
	ScaleHeight float64
	// Workers bounds the number of goroutines rendering column ranges.
	// Zero uses runtime.NumCPU(); one renders serially.
	Workers    int
	Background core.RGB
}

// DefaultOptions returns the classic 800x600 setup.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		FOV:         math.Pi / 3,
		RayDistance: 2000,
		ScaleHeight: 620,
	}
}

// Validate reports options that would make rendering meaningless.
func (o Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", o.Width, o.Height))
	}
	if o.FOV <= 0 || math.IsNaN(o.FOV) || math.IsInf(o.FOV, 0) {
		errs = append(errs, fmt.Errorf("fov %v must be a positive angle", o.FOV))
	}
	if !(o.RayDistance > 1) || math.IsInf(o.RayDistance, 0) {
		errs = append(errs, fmt.Errorf("ray distance %v must be greater than 1", o.RayDistance))
	}
	if math.IsNaN(o.ScaleHeight) || math.IsInf(o.ScaleHeight, 0) {
		errs = append(errs, fmt.Errorf("scale height %v must be finite", o.ScaleHeight))
	}
	if o.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", o.Workers))
	}
	return errors.Join(errs...)
}

// Renderer owns the per-column horizon scratch buffer. A Renderer must not be
// used by more than one goroutine at a time; it parallelizes internally.
type Renderer struct {
	opts    Options
	horizon []int
}

// New constructs a renderer for the provided options.
func New(opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("render options: %w", err)
	}
	return &Renderer{opts: opts, horizon: make([]int, opts.Width)}, nil
}

// Options returns the renderer configuration.
func (r *Renderer) Options() Options { return r.opts }

// NewFrame allocates a frame matching the viewport.
func (r *Renderer) NewFrame() *Frame { return NewFrame(r.opts.Width, r.opts.Height) }

// Render fills dst with the terrain as seen from cam. dst must match the
// viewport size; a mismatched frame is only cleared.
func (r *Renderer) Render(cam core.Camera, store *terrain.Store, dst *Frame) {
	dst.Clear(r.opts.Background)
	for i := range r.horizon {
		r.horizon[i] = r.opts.Height
	}
	if store == nil || dst.W != r.opts.Width || dst.H != r.opts.Height {
		return
	}

	w := r.opts.Width
	workers := r.workers()
	if workers <= 1 {
		r.renderColumns(0, w, cam, store, dst)
		return
	}

	chunk := (w + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < w; start += chunk {
		start, end := start, min(start+chunk, w)
		g.Go(func() error {
			r.renderColumns(start, end, cam, store, dst)
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Renderer) workers() int {
	n := r.opts.Workers
	if n == 0 {
		n = runtime.NumCPU()
	}
	return min(n, r.opts.Width)
}

// renderColumns handles columns [start, end). Each call touches only its own
// horizon slots and pixel columns.
func (r *Renderer) renderColumns(start, end int, cam core.Camera, store *terrain.Store, dst *Frame) {
	var spans []Span
	for col := start; col < end; col++ {
		var res columnResult
		res, spans = castColumn(col, cam, store, &r.opts, spans[:0])
		r.horizon[col] = res.horizon
		for _, s := range spans {
			dst.fillColumn(col, s.Top, s.Bottom, s.Color)
		}
	}
}

// Horizon returns the per-column horizon rows left by the last Render.
func (r *Renderer) Horizon() []int { return r.horizon }

// Parameters describes the render settings for the HUD.
func (r *Renderer) Parameters() core.ParameterSnapshot {
	o := r.opts
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Render",
		Params: []core.Parameter{
			core.IntParam("width", "Width", o.Width),
			core.IntParam("height", "Height", o.Height),
			core.FloatParam("fov", "FOV (deg)", o.FOV*180/math.Pi, 1),
			core.FloatParam("ray_distance", "Ray distance", o.RayDistance, 0),
			core.FloatParam("scale_height", "Scale height", o.ScaleHeight, 0),
			core.IntParam("workers", "Workers", r.workers()),
			core.StringParam("background", "Background", o.Background.Hex()),
		},
	}}}
}
