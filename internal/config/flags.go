package config

import "flag"

// Flags holds command-line overrides. Zero values leave the loaded config
// untouched.
type Flags struct {
	Config    string
	Debug     bool
	Width     int
	Height    int
	Workers   int
	Source    string
	ColorMap  string
	HeightMap string
	Seed      int64
	LogFile   string
}

// NewFlags returns an empty override set.
func NewFlags() *Flags {
	return &Flags{Workers: -1, Seed: -1}
}

// Bind attaches the overrides to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", f.Config, "path to config file")
	fs.BoolVar(&f.Debug, "debug", f.Debug, "enable debug logging")
	fs.IntVar(&f.Width, "width", f.Width, "viewport width in pixels")
	fs.IntVar(&f.Height, "height", f.Height, "viewport height in pixels")
	fs.IntVar(&f.Workers, "workers", f.Workers, "render goroutines (0 = one per CPU)")
	fs.StringVar(&f.Source, "terrain", f.Source, "terrain source: files or procedural")
	fs.StringVar(&f.ColorMap, "color-map", f.ColorMap, "color map image")
	fs.StringVar(&f.HeightMap, "height-map", f.HeightMap, "height map image")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "procedural terrain seed")
	fs.StringVar(&f.LogFile, "log-file", f.LogFile, "write logs to this file as well")
}

// Apply applies the overrides to cfg.
func (f *Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Width > 0 {
		cfg.Render.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Render.Height = f.Height
	}
	if f.Workers >= 0 {
		cfg.Render.Workers = f.Workers
	}
	if f.Source != "" {
		cfg.Terrain.Source = f.Source
	}
	if f.ColorMap != "" {
		cfg.Terrain.ColorMap = f.ColorMap
	}
	if f.HeightMap != "" {
		cfg.Terrain.HeightMap = f.HeightMap
	}
	if f.Seed >= 0 {
		cfg.Terrain.Seed = f.Seed
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
