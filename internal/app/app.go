//go:build ebiten

package app

import (
	"log"
	"time"

	"dyeflow/internal/core"
	"dyeflow/internal/render"
	"dyeflow/internal/sims/fluid"
	"dyeflow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 220

type stirrer interface {
	Stir(row, col int, du, dv float64) error
}

type shooter interface {
	Shoot(dir fluid.Jet) error
}

type dyeClearer interface {
	ClearDye()
}

var jetKeys = []struct {
	key ebiten.Key
	dir fluid.Jet
}{
	{ebiten.KeyArrowUp, fluid.JetUp},
	{ebiten.KeyArrowDown, fluid.JetDown},
	{ebiten.KeyArrowLeft, fluid.JetLeft},
	{ebiten.KeyArrowRight, fluid.JetRight},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep
	drag    *Drag

	palette render.Palette

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps int, seed int64, palette render.Palette) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, HUDWidth),
		clock:   core.NewFixedStep(tps),
		drag:    NewDrag(size.W - 2),
		palette: palette,
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
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
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.palette = g.palette.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if c, ok := g.sim.(dyeClearer); ok {
			c.ClearDye()
		}
	}
	if s, ok := g.sim.(shooter); ok {
		for _, jk := range jetKeys {
			if inpututil.IsKeyJustPressed(jk.key) {
				if err := s.Shoot(jk.dir); err != nil {
					log.Printf("shoot: %v", err)
				}
			}
		}
	}
	g.handleMouse()

	g.overlay.Update()

	due := g.clock.Due()
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.sim.Step()
	}
	g.hud.Update(g.viewWidth())
	return nil
}

func (g *Game) handleMouse() {
	s, ok := g.sim.(stirrer)
	if !ok {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drag.Release()
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.viewWidth() {
		return
	}
	stroke, ok := g.drag.Move(my/g.scale, mx/g.scale)
	if !ok {
		return
	}
	if err := s.Stir(stroke.Row, stroke.Col, stroke.DU, stroke.DV); err != nil {
		log.Printf("stir: %v", err)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette.Colors(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale, g.palette.String(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.viewWidth() + HUDWidth, s.H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
