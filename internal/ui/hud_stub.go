//go:build !ebiten

package ui

import (
	"life-sim/internal/core"
	"life-sim/internal/sim"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(parameterProvider) *HUD { return nil }

// Observe is a no-op in the headless build.
func (h *HUD) Observe(sim.Event) {}

// SetMessage is a no-op in the headless build.
func (h *HUD) SetMessage(string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
