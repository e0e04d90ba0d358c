//go:build ebiten

package app

import (
	"log"
	"time"

	"firesim/internal/render"
	"firesim/internal/sims/forest"
	"firesim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the forest simulation to the ebiten.Game interface. The
// simulation advances through the scheduler so pause, single-step and
// parameter edits all sequence at tick barriers.
type Game struct {
	world   *forest.World
	sched   *forest.Scheduler
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	seed     int64
	tickOnce bool
}

// New constructs a Game for the provided world.
func New(world *forest.World, scale int, seed int64) *Game {
	size := world.Size()
	sched := forest.NewScheduler(world)
	return &Game{
		world:   world,
		sched:   sched,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world),
		overlay: ui.NewOverlay(world, scale),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		stats := g.sched.Stop()
		log.Printf("run finished: %d ticks in %s (avg %s/tick)", stats.Ticks, stats.Elapsed, stats.AvgTick)
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.sched.Paused() {
			g.sched.Resume()
		} else {
			g.sched.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update()
	g.overlay.Update()

	if !g.sched.Paused() || g.tickOnce {
		if err := g.sched.Tick(); err != nil {
			return err
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	forest.FillRGBA(g.painter.Buffer(), g.world.Frame())
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size: the scaled grid plus the HUD
// panel on the right.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + ui.PanelWidth, s.H * g.scale
}
