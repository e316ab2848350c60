package terrain

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// AssetError names the terrain asset that failed to load.
type AssetError struct {
	Asset string
	Path  string
	Err   error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Asset, e.Path, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// DecodeFile reads a PNG, JPEG or BMP file into an RGB raster.
func DecodeFile(path string) (Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Raster{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Raster{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return RasterFromImage(img), nil
}

// LoadFiles decodes the color and height images and builds a Store. Errors
// are reported as *AssetError.
func LoadFiles(colorPath, heightPath string) (*Store, error) {
	color, err := DecodeFile(colorPath)
	if err != nil {
		return nil, &AssetError{Asset: "color map", Path: colorPath, Err: err}
	}
	height, err := DecodeFile(heightPath)
	if err != nil {
		return nil, &AssetError{Asset: "height map", Path: heightPath, Err: err}
	}
	if color.Empty() {
		return nil, &AssetError{Asset: "color map", Path: colorPath, Err: fmt.Errorf("%w: %dx%d", ErrDimensionsInvalid, color.W, color.H)}
	}
	if height.Empty() {
		return nil, &AssetError{Asset: "height map", Path: heightPath, Err: fmt.Errorf("%w: %dx%d", ErrDimensionsInvalid, height.W, height.H)}
	}
	return Load(color, height)
}
