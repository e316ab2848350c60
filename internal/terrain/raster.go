package terrain

import (
	"image"
	"image/color"

	"heightmap/internal/core"
)

// Raster is an 8-bit RGB image stored row-major, top to bottom, three bytes
// per cell.
type Raster struct {
	W, H int
	Pix  []uint8
}

// NewRaster allocates a zeroed raster. Non-positive dimensions yield an empty
// raster.
func NewRaster(w, h int) Raster {
	if w <= 0 || h <= 0 {
		return Raster{}
	}
	return Raster{W: w, H: h, Pix: make([]uint8, w*h*3)}
}

// Empty reports whether the raster has no cells.
func (r Raster) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Size returns the raster dimensions.
func (r Raster) Size() core.Size { return core.Size{W: r.W, H: r.H} }

// Index returns the byte offset of cell (x, y).
func (r Raster) Index(x, y int) int { return (y*r.W + x) * 3 }

// At returns the color of cell (x, y). The caller guarantees bounds.
func (r Raster) At(x, y int) core.RGB {
	i := r.Index(x, y)
	return core.PackRGB(r.Pix[i], r.Pix[i+1], r.Pix[i+2])
}

// Set writes the color of cell (x, y). The caller guarantees bounds.
func (r Raster) Set(x, y int, c core.RGB) {
	i := r.Index(x, y)
	r.Pix[i], r.Pix[i+1], r.Pix[i+2] = c.Channels()
}

// Fill paints every cell with c.
func (r Raster) Fill(c core.RGB) {
	cr, cg, cb := c.Channels()
	for i := 0; i+2 < len(r.Pix); i += 3 {
		r.Pix[i], r.Pix[i+1], r.Pix[i+2] = cr, cg, cb
	}
}

// Clone returns a deep copy.
func (r Raster) Clone() Raster {
	out := Raster{W: r.W, H: r.H}
	if r.Pix != nil {
		out.Pix = append([]uint8(nil), r.Pix...)
	}
	return out
}

// RasterFromImage converts any decoded image into an RGB raster. Alpha is
// discarded.
func RasterFromImage(img image.Image) Raster {
	b := img.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	if r.Empty() {
		return r
	}
	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < r.H; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < r.W; x++ {
				i := r.Index(x, y)
				copy(r.Pix[i:i+3], row[x*4:x*4+3])
			}
		}
	case *image.Gray:
		for y := 0; y < r.H; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < r.W; x++ {
				v := row[x]
				i := r.Index(x, y)
				r.Pix[i], r.Pix[i+1], r.Pix[i+2] = v, v, v
			}
		}
	default:
		for y := 0; y < r.H; y++ {
			for x := 0; x < r.W; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := r.Index(x, y)
				r.Pix[i], r.Pix[i+1], r.Pix[i+2] = c.R, c.G, c.B
			}
		}
	}
	return r
}

// Image returns the raster as an opaque RGBA image.
func (r Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.W, r.H))
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			i := r.Index(x, y)
			o := img.PixOffset(x, y)
			img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = r.Pix[i], r.Pix[i+1], r.Pix[i+2], 0xff
		}
	}
	return img
}
