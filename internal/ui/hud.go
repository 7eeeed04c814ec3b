//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"life-sim/internal/core"
	"life-sim/internal/sim"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

const (
	hudLineHeight = 14
	hudPadding    = 6
)

var (
	hudTextColor = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	hudBackdrop  = color.RGBA{R: 16, G: 16, B: 20, A: 200}
)

// HUD renders a status panel in the top-left corner. It observes the
// controller so the last operation is shown even between frames.
type HUD struct {
	provider parameterProvider
	setter   core.IntParameterSetter
	controls map[string]core.ParameterControl
	visible  bool

	mu        sync.Mutex
	lastEvent sim.Event
	message   string

	lines []string
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided parameter source.
func NewHUD(provider parameterProvider) *HUD {
	h := &HUD{provider: provider, visible: true, controls: map[string]core.ParameterControl{}}
	if setter, ok := provider.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	if cp, ok := provider.(core.ParameterControlsProvider); ok {
		for _, ctrl := range cp.ParameterControls() {
			h.controls[ctrl.Key] = ctrl
		}
	}
	return h
}

// Observe records controller events for display. Called from the driver
// goroutine as well as the UI goroutine.
func (h *HUD) Observe(e sim.Event) {
	h.mu.Lock()
	if e.Seq > h.lastEvent.Seq {
		h.lastEvent = e
	}
	h.mu.Unlock()
}

// SetMessage shows a one-line status message (e.g. a save error).
func (h *HUD) SetMessage(msg string) {
	h.mu.Lock()
	h.message = msg
	h.mu.Unlock()
}

// Update refreshes the cached lines and handles HUD key bindings:
// H toggles the panel, Up/Down adjust the tick rate.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.adjust("fps", 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.adjust("fps", -1)
	}
	h.lines = h.buildLines()
}

func (h *HUD) adjust(key string, dir int) {
	if h.setter == nil {
		return
	}
	ctrl, ok := h.controls[key]
	if !ok {
		return
	}
	p, ok := h.provider.Parameters().Lookup(key)
	if !ok {
		return
	}
	var cur int
	if _, err := fmt.Sscanf(p.Value, "%d", &cur); err != nil {
		return
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	h.setter.SetIntParameter(key, ctrl.Clamp(cur+dir*step))
}

func (h *HUD) buildLines() []string {
	snap := h.provider.Parameters()
	lines := make([]string, 0, 8)
	for _, g := range snap.Groups {
		parts := make([]string, 0, len(g.Params))
		for _, p := range g.Params {
			parts = append(parts, p.Label+": "+p.Value)
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	h.mu.Lock()
	lines = append(lines, "Last: "+h.lastEvent.Kind.String())
	if h.message != "" {
		lines = append(lines, h.message)
	}
	h.mu.Unlock()
	return lines
}

// Draw paints the HUD panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	width := 0
	for _, l := range h.lines {
		width = max(width, len(l)*7)
	}
	width += 2 * hudPadding
	height := len(h.lines)*hudLineHeight + 2*hudPadding
	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(hudBackdrop)
	for i, l := range h.lines {
		text.Draw(h.panel, l, basicfont.Face7x13, hudPadding, hudPadding+(i+1)*hudLineHeight-3, hudTextColor)
	}
	screen.DrawImage(h.panel, nil)
}
