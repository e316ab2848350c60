package render

import (
	"math"

	"heightmap/internal/core"
	"heightmap/internal/terrain"
)

// Span paints rows [Top, Bottom) of one column.
type Span struct {
	Top, Bottom int
	Color       core.RGB
}

type columnResult struct {
	// horizon is the topmost row claimed once the ray is exhausted.
	horizon int
	// firstContact is the horizon set by the nearest in-bounds sample; only
	// meaningful when hit is true.
	firstContact int
	hit          bool
}

// rayAngle returns the yaw of the ray through screen column col.
func rayAngle(col int, cam core.Camera, o *Options) float64 {
	return cam.Angle - o.FOV/2 + float64(col)*(o.FOV/float64(o.Width))
}

// castColumn walks one ray front to back and appends the spans it paints to
// dst. Spans come out in painting order, so their Top rows strictly decrease
// and each span ends where the previous one began.
func castColumn(col int, cam core.Camera, store *terrain.Store, o *Options, dst []Span) (columnResult, []Span) {
	res := columnResult{horizon: o.Height}

	angle := rayAngle(col, cam, o)
	sin, cos := math.Sincos(angle)
	fisheye := math.Cos(cam.Angle - angle)

	for depth := 1; float64(depth) < o.RayDistance; depth++ {
		d := float64(depth)
		texel, err := store.Sample(int(cam.X+d*cos), int(cam.Z+d*sin))
		if err != nil {
			continue
		}

		corrected := d * fisheye
		if corrected < minCorrectedDepth {
			continue
		}
		screenY := int((cam.Y-float64(texel.Elevation))/corrected*o.ScaleHeight + cam.Pitch)

		// Rows below the first visible sample belong to terrain under the
		// camera and stay unpainted.
		if !res.hit {
			res.hit = true
			res.horizon = min(screenY, o.Height)
			res.firstContact = res.horizon
		}

		screenY = max(screenY, 0)
		if screenY < res.horizon {
			dst = append(dst, Span{Top: screenY, Bottom: res.horizon, Color: texel.Color})
			res.horizon = screenY
		}
		if res.horizon <= 0 {
			break
		}
	}
	return res, dst
}
