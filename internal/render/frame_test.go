package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"heightmap/internal/core"
)

func TestFrameClearAndFill(t *testing.T) {
	f := NewFrame(3, 4)
	f.Clear(core.PackRGB(1, 2, 3))
	f.fillColumn(1, 1, 3, sand)

	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			want := core.PackRGB(1, 2, 3)
			if x == 1 && y >= 1 && y < 3 {
				want = sand
			}
			if f.At(x, y) != want {
				t.Fatalf("pixel (%d,%d) = %s, want %s", x, y, f.At(x, y).Hex(), want.Hex())
			}
		}
	}

	other := NewFrame(3, 4)
	if f.Equal(other) {
		t.Fatal("frames with different pixels must not be equal")
	}
	if NewFrame(4, 3).Equal(other) {
		t.Fatal("frames with different shapes must not be equal")
	}
}

func TestFillRGBA(t *testing.T) {
	f := NewFrame(2, 1)
	f.Set(0, 0, core.PackRGB(10, 20, 30))
	f.Set(1, 0, core.PackRGB(255, 0, 128))

	buf := make([]byte, 8)
	f.FillRGBA(buf)
	want := []byte{10, 20, 30, 255, 255, 0, 128, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}

	short := []byte{7, 7, 7}
	f.FillRGBA(short)
	if short[0] != 7 {
		t.Fatal("short buffers must be left untouched")
	}
}

func TestWritePNG(t *testing.T) {
	f := NewFrame(8, 6)
	f.Clear(sand)
	dir := filepath.Join(t.TempDir(), "nested")

	tests := []struct {
		name  string
		scale float64
		w, h  int
	}{
		{name: "native.png", scale: 1, w: 8, h: 6},
		{name: "half.png", scale: 0.5, w: 4, h: 3},
		{name: "double.png", scale: 2, w: 16, h: 12},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		if err := WritePNG(path, f, tt.scale); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("%s: open: %v", tt.name, err)
		}
		img, err := png.Decode(file)
		file.Close()
		if err != nil {
			t.Fatalf("%s: decode: %v", tt.name, err)
		}
		if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
			t.Fatalf("%s: size %dx%d, want %dx%d", tt.name, b.Dx(), b.Dy(), tt.w, tt.h)
		}
		r, g, b, a := img.At(tt.w/2, tt.h/2).RGBA()
		if r>>8 != 200 || g>>8 != 150 || b>>8 != 50 || a>>8 != 255 {
			t.Fatalf("%s: unexpected center pixel %d,%d,%d,%d", tt.name, r>>8, g>>8, b>>8, a>>8)
		}
	}

	if err := WritePNG(filepath.Join(dir, "bad.png"), f, 0); err == nil {
		t.Fatal("non-positive scale should fail")
	}
}

func TestSnapshotName(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 6, 7_000_000, time.UTC)
	got := SnapshotName("shots", "heightmap", ts)
	want := filepath.Join("shots", "heightmap_2024-03-09_14-05-06.007.png")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if name := SnapshotName("", "x", ts); strings.Contains(name, string(filepath.Separator)) {
		t.Fatalf("empty dir should yield a bare filename, got %q", name)
	}
}
