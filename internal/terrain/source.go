package terrain

import (
	"fmt"
	"sort"
)

// SourceConfig selects and parameterizes a terrain source.
type SourceConfig struct {
	Kind      string
	ColorMap  string
	HeightMap string
	Size      int
	Seed      int64
}

// SourceFactory builds a Store from a source configuration.
type SourceFactory func(cfg SourceConfig) (*Store, error)

var sources = map[string]SourceFactory{}

// RegisterSource adds a terrain source under the provided name.
func RegisterSource(name string, f SourceFactory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available terrain sources.
func Sources() map[string]SourceFactory {
	return sources
}

// SourceNames lists registered sources in sorted order.
func SourceNames() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds a Store from the source named by cfg.Kind.
func Open(cfg SourceConfig) (*Store, error) {
	f, ok := sources[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown terrain source %q (available: %v)", cfg.Kind, SourceNames())
	}
	return f(cfg)
}

func init() {
	RegisterSource("files", func(cfg SourceConfig) (*Store, error) {
		return LoadFiles(cfg.ColorMap, cfg.HeightMap)
	})
	RegisterSource("procedural", func(cfg SourceConfig) (*Store, error) {
		opts := DefaultGenerateOptions()
		if cfg.Size > 0 {
			opts.Size = cfg.Size
		}
		opts.Seed = cfg.Seed
		return Load(Generate(opts))
	})
}
