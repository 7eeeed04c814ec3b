//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"life-sim/internal/render"
	"life-sim/internal/sim"
	"life-sim/internal/ui"
)

const maxCellSize = 256

// Game adapts a sim.Controller to the ebiten.Game interface. The controller
// owns the tick loop; Game only edits cells and draws snapshots.
type Game struct {
	ctrl    *sim.Controller
	cfg     *Config
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	cancel  func()

	onColor  color.Color
	offColor color.Color

	stroke stroke
}

// New constructs a Game for the provided controller.
func New(ctrl *sim.Controller, cfg *Config) *Game {
	size := ctrl.Size()
	g := &Game{
		ctrl:     ctrl,
		cfg:      cfg,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(ctrl),
		onColor:  color.RGBA{R: 255, G: 165, B: 0, A: 255},
		offColor: color.RGBA{R: 24, G: 24, B: 28, A: 255},
	}
	g.cancel = ctrl.Subscribe(g.hud)
	return g
}

// Close detaches the game from the controller.
func (g *Game) Close() {
	g.cancel()
}

// Update handles per-frame input.
func (g *Game) Update() error {
	ctrlHeld := ebiten.IsKeyPressed(ebiten.KeyControl)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.ctrl.Tick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Chaos()
	}
	if ctrlHeld && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) || (ctrlHeld && inpututil.IsKeyJustPressed(ebiten.KeyE)) {
		g.load()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.zoom(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.zoom(-1)
	}

	g.paint()
	g.overlay.Update(g.ctrl.Size(), g.ctrl.CellSize())
	g.hud.Update()
	return nil
}

// paint edits cells under the left mouse button.
func (g *Game) paint() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.stroke.release()
		return
	}
	cx, cy := ebiten.CursorPosition()
	x, y := render.CellAt(cx, cy, g.ctrl.CellSize())
	g.stroke.paint(g.ctrl, x, y)
}

func (g *Game) zoom(dir int) {
	size := g.ctrl.CellSize() + dir
	if size < 1 || size > maxCellSize {
		return
	}
	g.ctrl.SetCellSize(size)
	g.fitWindow()
}

func (g *Game) fitWindow() {
	s := g.ctrl.Size()
	cs := g.ctrl.CellSize()
	ebiten.SetWindowSize(s.W*cs, s.H*cs)
}

func (g *Game) save() {
	if g.cfg.SavePath == "" {
		return
	}
	if err := g.ctrl.SaveFile(g.cfg.SavePath); err != nil {
		g.hud.SetMessage("save failed: " + err.Error())
		return
	}
	g.hud.SetMessage("saved " + g.cfg.SavePath)
}

func (g *Game) load() {
	if g.cfg.LoadPath == "" {
		return
	}
	if err := g.ctrl.LoadFile(g.cfg.LoadPath); err != nil {
		g.hud.SetMessage("load failed: " + err.Error())
		return
	}
	g.hud.SetMessage("loaded " + g.cfg.LoadPath)
	g.fitWindow()
}

// Draw renders a snapshot of the grid.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()
	size := snap.Size()
	cellSize := g.ctrl.CellSize()
	g.painter.Blit(screen, snap, g.onColor, g.offColor, cellSize)
	g.overlay.Draw(screen, size, cellSize)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Size()
	cs := g.ctrl.CellSize()
	return s.W * cs, s.H * cs
}
