package render

import (
	"image"
	"slices"

	"heightmap/internal/core"
)

// Frame is a W×H grid of packed RGB pixels in row-major order.
type Frame struct {
	W, H int
	pix  []core.RGB
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, pix: make([]core.RGB, w*h)}
}

// Pix exposes the backing slice.
func (f *Frame) Pix() []core.RGB { return f.pix }

// Size returns the frame dimensions.
func (f *Frame) Size() core.Size { return core.Size{W: f.W, H: f.H} }

// Clear fills every pixel with c.
func (f *Frame) Clear(c core.RGB) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// At returns the pixel at (x, y).
func (f *Frame) At(x, y int) core.RGB { return f.pix[y*f.W+x] }

// Set writes the pixel at (x, y).
func (f *Frame) Set(x, y int, c core.RGB) { f.pix[y*f.W+x] = c }

// fillColumn paints rows [top, bottom) of column x.
func (f *Frame) fillColumn(x, top, bottom int, c core.RGB) {
	for i := top*f.W + x; top < bottom; top++ {
		f.pix[i] = c
		i += f.W
	}
}

// Equal reports whether two frames have identical dimensions and pixels.
func (f *Frame) Equal(o *Frame) bool {
	return f.W == o.W && f.H == o.H && slices.Equal(f.pix, o.pix)
}

// Image copies the frame into an opaque RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	f.FillRGBA(img.Pix)
	return img
}
