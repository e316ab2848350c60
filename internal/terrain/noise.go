package terrain

import (
	"math"

	"heightmap/internal/core"
)

// simplex is seeded 2D simplex noise.
type simplex struct {
	perm [512]int
}

func newSimplex(seed int64) *simplex {
	s := &simplex{}
	p := core.NewRNG(seed).Permutation(256)
	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
	return s
}

func grad2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

const (
	skew2   = 0.3660254037844386  // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// noise returns simplex noise in [-1, 1].
func (s *simplex) noise(x, y float64) float64 {
	k := (x + y) * skew2
	i := math.Floor(x + k)
	j := math.Floor(y + k)

	t := (i + j) * unskew2
	x0 := x - (i - t)
	y0 := y - (j - t)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii := int(i) & 255
	jj := int(j) & 255

	var n float64
	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n += t0 * t0 * grad2(s.perm[ii+s.perm[jj]], x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n += t1 * t1 * grad2(s.perm[ii+i1+s.perm[jj+j1]], x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n += t2 * t2 * grad2(s.perm[ii+1+s.perm[jj+1]], x2, y2)
	}
	return 70 * n
}

// fractal sums octaves of noise and normalizes to [0, 1].
func (s *simplex) fractal(x, y, freq float64, octaves int, lacunarity, persistence float64) float64 {
	var total, maxAmp float64
	amp := 1.0
	for i := 0; i < octaves; i++ {
		total += s.noise(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= lacunarity
		amp *= persistence
	}
	if maxAmp == 0 {
		return 0.5
	}
	v := (total/maxAmp + 1) / 2
	return math.Min(1, math.Max(0, v))
}
