// Package terrain holds the co-registered color and height rasters sampled by
// the renderer, plus the collaborators that produce them (file decoding and
// procedural generation).
package terrain

import (
	"errors"
	"fmt"

	"heightmap/internal/core"
)

var (
	// ErrDimensionsInvalid reports an empty input raster.
	ErrDimensionsInvalid = errors.New("terrain: raster dimensions invalid")
	// ErrOutOfBounds is returned by Sample outside the sampling bounds. It is
	// a control-flow signal, not a failure.
	ErrOutOfBounds = errors.New("terrain: sample out of bounds")
)

// Texel is one terrain cell as seen by the renderer.
type Texel struct {
	Color     core.RGB
	Elevation uint8
}

// Store owns the color and height rasters. Both are immutable after Load, so
// any number of goroutines may call Sample concurrently.
type Store struct {
	color  Raster
	height Raster
	w, h   int
}

// Load validates both rasters and takes private copies of them. The sampling
// bounds are the intersection of the two raster sizes.
func Load(color, height Raster) (*Store, error) {
	if err := checkRaster("color map", color); err != nil {
		return nil, err
	}
	if err := checkRaster("height map", height); err != nil {
		return nil, err
	}
	return &Store{
		color:  color.Clone(),
		height: height.Clone(),
		w:      min(color.W, height.W),
		h:      min(color.H, height.H),
	}, nil
}

func checkRaster(name string, r Raster) error {
	if r.Empty() {
		return fmt.Errorf("%w: %s is %dx%d", ErrDimensionsInvalid, name, r.W, r.H)
	}
	if want := r.W * r.H * 3; len(r.Pix) < want {
		return fmt.Errorf("%w: %s has %d bytes, need %d for %dx%d RGB", ErrDimensionsInvalid, name, len(r.Pix), want, r.W, r.H)
	}
	return nil
}

// Size returns the sampling bounds.
func (s *Store) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Sample looks up the cell at (x, z). Each raster is indexed with its own
// stride; elevation is the first channel of the height raster.
func (s *Store) Sample(x, z int) (Texel, error) {
	if x < 0 || x >= s.w || z < 0 || z >= s.h {
		return Texel{}, ErrOutOfBounds
	}
	ci := s.color.Index(x, z)
	return Texel{
		Color:     core.PackRGB(s.color.Pix[ci], s.color.Pix[ci+1], s.color.Pix[ci+2]),
		Elevation: s.height.Pix[s.height.Index(x, z)],
	}, nil
}
