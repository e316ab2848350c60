package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Size describes the dimensions of a raster or viewport.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Camera is the viewer pose. X and Z address the terrain plane, Y is the
// altitude above the terrain datum. Rays travel along (cos Angle, sin Angle)
// in the (x, z) plane. Pitch shifts every projected row on screen.
//
// The frame loop owns the camera and may mutate it between renders; the
// renderer copies it once per frame.
type Camera struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Angle float64 `yaml:"angle"`
	Pitch float64 `yaml:"pitch"`
}

// String formats the pose for logs and the HUD.
func (c Camera) String() string {
	return fmt.Sprintf("x=%.1f y=%.1f z=%.1f angle=%.3f pitch=%.1f", c.X, c.Y, c.Z, c.Angle, c.Pitch)
}

// RGB is a packed 0xRRGGBB color.
type RGB uint32

// PackRGB packs three 8-bit channels.
func PackRGB(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels unpacks the color.
func (c RGB) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// ParseRGB parses "#rrggbb" or "rrggbb".
func ParseRGB(s string) (RGB, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return 0, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(n), nil
}
