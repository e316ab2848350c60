package terrain

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"heightmap/internal/core"
)

func uniformRaster(w, h int, c core.RGB) Raster {
	r := NewRaster(w, h)
	r.Fill(c)
	return r
}

func TestLoadIntersectsBounds(t *testing.T) {
	colorMap := uniformRaster(6, 3, core.PackRGB(1, 2, 3))
	heightMap := uniformRaster(4, 5, core.PackRGB(9, 9, 9))

	store, err := Load(colorMap, heightMap)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := store.Size(); got != (core.Size{W: 4, H: 3}) {
		t.Fatalf("expected 4x3 sampling bounds, got %+v", got)
	}

	if _, err := store.Sample(3, 2); err != nil {
		t.Fatalf("corner of intersection must be sampleable: %v", err)
	}
	for _, p := range [][2]int{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {5, 2}} {
		if _, err := store.Sample(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("sample %v: expected ErrOutOfBounds, got %v", p, err)
		}
	}
}

func TestLoadRejectsEmptyRasters(t *testing.T) {
	good := uniformRaster(2, 2, 0)
	tests := []struct {
		name          string
		color, height Raster
	}{
		{name: "empty color", color: Raster{}, height: good},
		{name: "empty height", color: good, height: Raster{}},
		{name: "zero width", color: Raster{W: 0, H: 4}, height: good},
		{name: "zero height", color: good, height: Raster{W: 4, H: 0, Pix: nil}},
		{name: "short pixels", color: Raster{W: 2, H: 2, Pix: make([]uint8, 5)}, height: good},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.color, tt.height)
			if !errors.Is(err, ErrDimensionsInvalid) {
				t.Fatalf("expected ErrDimensionsInvalid, got %v", err)
			}
		})
	}
}

func TestSampleUsesPerRasterStride(t *testing.T) {
	colorMap := NewRaster(3, 2)
	heightMap := NewRaster(5, 2)
	colorMap.Set(1, 1, core.PackRGB(10, 20, 30))
	heightMap.Set(1, 1, core.PackRGB(77, 0, 0))
	// Would be picked up if the height map were indexed with the color stride.
	heightMap.Set(4, 0, core.PackRGB(99, 0, 0))

	store, err := Load(colorMap, heightMap)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	texel, err := store.Sample(1, 1)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if texel.Color != core.PackRGB(10, 20, 30) {
		t.Fatalf("unexpected color %s", texel.Color.Hex())
	}
	if texel.Elevation != 77 {
		t.Fatalf("expected elevation 77 from the red channel, got %d", texel.Elevation)
	}
}

func TestLoadTakesOwnership(t *testing.T) {
	colorMap := uniformRaster(2, 2, core.PackRGB(5, 5, 5))
	heightMap := uniformRaster(2, 2, core.PackRGB(10, 10, 10))
	store, err := Load(colorMap, heightMap)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	colorMap.Fill(core.PackRGB(255, 0, 0))
	heightMap.Fill(core.PackRGB(200, 0, 0))

	texel, _ := store.Sample(0, 0)
	if texel.Color != core.PackRGB(5, 5, 5) || texel.Elevation != 10 {
		t.Fatalf("store must not alias caller buffers, got %+v", texel)
	}
}

func TestRasterFromImage(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(2, 1, color.Gray{Y: 180})
	r := RasterFromImage(gray)
	if r.W != 3 || r.H != 2 {
		t.Fatalf("unexpected size %dx%d", r.W, r.H)
	}
	if r.At(2, 1) != core.PackRGB(180, 180, 180) {
		t.Fatalf("gray should expand to equal channels, got %s", r.At(2, 1).Hex())
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	nrgba.SetNRGBA(1, 0, color.NRGBA{R: 12, G: 34, B: 56, A: 255})
	r = RasterFromImage(nrgba)
	if r.At(1, 0) != core.PackRGB(12, 34, 56) {
		t.Fatalf("unexpected converted color %s", r.At(1, 0).Hex())
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 4, 4))
	rgba.SetRGBA(3, 3, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	sub := rgba.SubImage(image.Rect(2, 2, 4, 4))
	r = RasterFromImage(sub)
	if r.W != 2 || r.H != 2 || r.At(1, 1) != core.PackRGB(1, 2, 3) {
		t.Fatalf("sub-image conversion misaligned: %dx%d %s", r.W, r.H, r.At(1, 1).Hex())
	}
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	colorPath := filepath.Join(dir, "color.png")
	heightPath := filepath.Join(dir, "height.png")

	writePNG(t, colorPath, uniformRaster(8, 8, core.PackRGB(200, 150, 50)).Image())
	writePNG(t, heightPath, uniformRaster(8, 6, core.PackRGB(64, 64, 64)).Image())

	store, err := LoadFiles(colorPath, heightPath)
	if err != nil {
		t.Fatalf("load files: %v", err)
	}
	if store.Size() != (core.Size{W: 8, H: 6}) {
		t.Fatalf("unexpected size %+v", store.Size())
	}
	texel, err := store.Sample(7, 5)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if texel.Color != core.PackRGB(200, 150, 50) || texel.Elevation != 64 {
		t.Fatalf("unexpected texel %+v", texel)
	}
}

func TestLoadFilesNamesFailingAsset(t *testing.T) {
	dir := t.TempDir()
	colorPath := filepath.Join(dir, "color.png")
	writePNG(t, colorPath, uniformRaster(2, 2, 0).Image())

	missing := filepath.Join(dir, "missing.png")
	_, err := LoadFiles(colorPath, missing)
	var assetErr *AssetError
	if !errors.As(err, &assetErr) {
		t.Fatalf("expected *AssetError, got %v", err)
	}
	if assetErr.Asset != "height map" || assetErr.Path != missing {
		t.Fatalf("wrong asset reported: %+v", assetErr)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFiles(garbage, colorPath)
	if !errors.As(err, &assetErr) || assetErr.Asset != "color map" {
		t.Fatalf("expected color map asset error, got %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Size = 64
	opts.Seed = 7

	c1, h1 := Generate(opts)
	c2, h2 := Generate(opts)
	if !slices.Equal(c1.Pix, c2.Pix) || !slices.Equal(h1.Pix, h2.Pix) {
		t.Fatal("same seed must generate identical terrain")
	}

	opts.Seed = 8
	_, h3 := Generate(opts)
	if slices.Equal(h1.Pix, h3.Pix) {
		t.Fatal("different seeds should generate different terrain")
	}

	for y := 0; y < h1.H; y++ {
		for x := 0; x < h1.W; x++ {
			i := h1.Index(x, y)
			if h1.Pix[i] < opts.WaterLevel {
				t.Fatalf("cell (%d,%d) below water level: %d", x, y, h1.Pix[i])
			}
			if h1.Pix[i] != h1.Pix[i+1] || h1.Pix[i] != h1.Pix[i+2] {
				t.Fatalf("height map must be grayscale at (%d,%d)", x, y)
			}
		}
	}
}

func TestRampColor(t *testing.T) {
	if rampColor(10, 70) != waterColor {
		t.Fatal("cells below the water level should be water")
	}
	if rampColor(255, 70) != colorRamp[len(colorRamp)-1].color {
		t.Fatal("peaks should use the top of the ramp")
	}
	if rampColor(120, 70) != colorRamp[1].color {
		t.Fatal("mid elevations should be grass")
	}
}

func TestOpenSources(t *testing.T) {
	names := SourceNames()
	if !slices.Contains(names, "files") || !slices.Contains(names, "procedural") {
		t.Fatalf("expected builtin sources, got %v", names)
	}

	store, err := Open(SourceConfig{Kind: "procedural", Size: 32, Seed: 3})
	if err != nil {
		t.Fatalf("open procedural: %v", err)
	}
	if store.Size() != (core.Size{W: 32, H: 32}) {
		t.Fatalf("unexpected procedural size %+v", store.Size())
	}

	if _, err := Open(SourceConfig{Kind: "nope"}); err == nil {
		t.Fatal("unknown source should fail")
	}

	_, err = Open(SourceConfig{Kind: "files", ColorMap: "does-not-exist.png", HeightMap: "also-missing.png"})
	var assetErr *AssetError
	if !errors.As(err, &assetErr) || assetErr.Asset != "color map" {
		t.Fatalf("expected color map asset error, got %v", err)
	}
}
