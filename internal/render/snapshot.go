package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"
)

// SnapshotName builds a timestamped PNG path inside dir.
func SnapshotName(dir, prefix string, t time.Time) string {
	name := fmt.Sprintf("%s_%s.png", prefix, t.Format("2006-01-02_15-04-05.000"))
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// WritePNG encodes the frame to path, creating parent directories. A scale
// other than 1 resizes the image with nearest-neighbor sampling.
func WritePNG(path string, f *Frame, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("snapshot scale %v must be positive", scale)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	var img image.Image = f.Image()
	if scale != 1 {
		w := max(1, int(float64(f.W)*scale))
		h := max(1, int(float64(f.H)*scale))
		img = resize.Resize(uint(w), uint(h), img, resize.NearestNeighbor)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return out.Close()
}
