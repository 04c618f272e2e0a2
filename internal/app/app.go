//go:build ebiten

package app

import (
	"image/color"
	"time"

	"packlife/internal/core"
	"packlife/internal/render"
	"packlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life engine to the ebiten.Game interface.
type Game struct {
	engine  core.Engine
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale      int
	paused     bool
	tickOnce   bool
	seed       int64
	density    float64
	generation int
}

// New constructs a Game for the provided engine.
func New(engine core.Engine, scale int, seed int64, density float64) *Game {
	size := engine.Size()
	return &Game{
		engine:   engine,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(engine),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
		density:  density,
	}
}

// Reset reloads the engine with a random grid drawn from seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	size := g.engine.Size()
	grid := core.NewGrid(size.W, size.H)
	core.FillRandom(grid, seed, g.density)
	g.engine.LoadFrom(grid)
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
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

	if g.overlay != nil {
		g.overlay.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.engine.Step()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine, g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.generation, g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.engine.Size()
	return s.W * g.scale, s.H * g.scale
}
