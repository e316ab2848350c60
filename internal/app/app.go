//go:build ebiten

package app

import (
	"time"

	"go.uber.org/zap"

	"heightmap/internal/core"
	"heightmap/internal/logger"
	"heightmap/internal/render"
	"heightmap/internal/terrain"
	"heightmap/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the terrain renderer to the ebiten.Game interface. Each tick it
// runs the camera hook, renders one frame and presents it.
type Game struct {
	renderer *render.Renderer
	store    *terrain.Store
	frame    *render.Frame
	painter  *render.FramePainter
	hud      *ui.HUD

	camera   core.Camera
	onUpdate UpdateFunc

	timer      *core.FrameTimer
	renderTime time.Duration
	lastReport time.Time

	scale    int
	snapshot SnapshotSettings
	capture  bool
}

// New constructs a Game rendering store through renderer.
func New(renderer *render.Renderer, store *terrain.Store, opts Options) *Game {
	frame := renderer.NewFrame()
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		renderer: renderer,
		store:    store,
		frame:    frame,
		painter:  render.NewFramePainter(frame.W, frame.H),
		hud:      ui.NewHUD(renderer),
		camera:   opts.Camera,
		timer:    core.NewFrameTimer(),
		scale:    scale,
		snapshot: opts.Snapshot,
	}
}

// Camera exposes the camera for mutation between frames.
func (g *Game) Camera() *core.Camera { return &g.camera }

// OnUpdate installs a hook that runs before every render.
func (g *Game) OnUpdate(fn UpdateFunc) { g.onUpdate = fn }

// Update advances the camera hook and renders the next frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.capture = true
	}
	g.hud.Update()

	dt := g.timer.Tick()
	if g.onUpdate != nil {
		g.onUpdate(&g.camera, dt)
	}

	start := time.Now()
	g.renderer.Render(g.camera, g.store, g.frame)
	g.renderTime = time.Since(start)

	g.report()
	if g.capture {
		g.capture = false
		g.saveSnapshot()
	}
	return nil
}

func (g *Game) report() {
	now := time.Now()
	if now.Sub(g.lastReport) < time.Second {
		return
	}
	g.lastReport = now
	logger.Sugar.Debugf("frame time %v (avg %v), render %v, %.1f fps",
		g.timer.Delta(), g.timer.Average(), g.renderTime, g.timer.FPS())
}

func (g *Game) saveSnapshot() {
	path := render.SnapshotName(g.snapshot.Dir, "heightmap", time.Now())
	if err := render.WritePNG(path, g.frame, g.snapshot.Scale); err != nil {
		logger.Error("snapshot failed", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("snapshot saved", zap.String("path", path))
}

// Draw presents the most recent frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame, g.scale)
	g.hud.Draw(screen, ui.Stats{
		Frame:  g.timer.Average(),
		Render: g.renderTime,
		FPS:    g.timer.FPS(),
		Camera: g.camera,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frame.W * g.scale, g.frame.H * g.scale
}
