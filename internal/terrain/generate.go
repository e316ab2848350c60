package terrain

import (
	"heightmap/internal/core"
)

// GenerateOptions controls procedural terrain.
type GenerateOptions struct {
	Size        int
	Seed        int64
	Frequency   float64
	Octaves     int
	Lacunarity  float64
	Persistence float64
	WaterLevel  uint8
}

// DefaultGenerateOptions returns settings that give rolling hills with a
// few lakes on a 1024 grid.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Size:        1024,
		Seed:        42,
		Frequency:   1.0 / 256,
		Octaves:     6,
		Lacunarity:  2,
		Persistence: 0.5,
		WaterLevel:  70,
	}
}

type rampStop struct {
	limit uint8
	color core.RGB
}

var colorRamp = []rampStop{
	{limit: 90, color: core.PackRGB(194, 178, 128)},
	{limit: 150, color: core.PackRGB(86, 125, 70)},
	{limit: 200, color: core.PackRGB(110, 100, 90)},
	{limit: 255, color: core.PackRGB(240, 240, 245)},
}

var waterColor = core.PackRGB(40, 80, 150)

// Generate builds a deterministic color/height raster pair from seeded
// fractal noise. Water cells are flattened to the water level.
func Generate(opts GenerateOptions) (color, height Raster) {
	def := DefaultGenerateOptions()
	if opts.Size <= 0 {
		opts.Size = def.Size
	}
	if opts.Frequency <= 0 {
		opts.Frequency = def.Frequency
	}
	if opts.Octaves <= 0 {
		opts.Octaves = def.Octaves
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = def.Lacunarity
	}
	if opts.Persistence <= 0 {
		opts.Persistence = def.Persistence
	}

	n := newSimplex(opts.Seed)
	color = NewRaster(opts.Size, opts.Size)
	height = NewRaster(opts.Size, opts.Size)
	for z := 0; z < opts.Size; z++ {
		for x := 0; x < opts.Size; x++ {
			v := n.fractal(float64(x), float64(z), opts.Frequency, opts.Octaves, opts.Lacunarity, opts.Persistence)
			elev := uint8(v * 255)
			c := rampColor(elev, opts.WaterLevel)
			if elev < opts.WaterLevel {
				elev = opts.WaterLevel
			}
			height.Set(x, z, core.PackRGB(elev, elev, elev))
			color.Set(x, z, c)
		}
	}
	return color, height
}

func rampColor(elev, water uint8) core.RGB {
	if elev < water {
		return waterColor
	}
	for _, stop := range colorRamp {
		if elev <= stop.limit {
			return stop.color
		}
	}
	return colorRamp[len(colorRamp)-1].color
}
