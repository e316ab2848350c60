package ui

import (
	"fmt"
	"time"

	"heightmap/internal/core"
)

// Stats carries the per-frame numbers shown on the HUD.
type Stats struct {
	Frame  time.Duration
	Render time.Duration
	FPS    float64
	Camera core.Camera
}

// Lines formats the HUD text: timing first, then the camera, then every
// parameter group.
func Lines(stats Stats, snap core.ParameterSnapshot) []string {
	lines := []string{
		fmt.Sprintf("frame %6.2fms  render %6.2fms  %5.1f fps", ms(stats.Frame), ms(stats.Render), stats.FPS),
		"camera " + stats.Camera.String(),
	}
	for _, g := range snap.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-14s %s", p.Label, p.Value))
		}
	}
	return lines
}

func ms(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
