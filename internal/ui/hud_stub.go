//go:build !ebiten

package ui

import "firesim/internal/core"

// PanelWidth is the horizontal space reserved for the parameter panel.
const PanelWidth = 240

// Controllable matches the GUI build's HUD contract.
type Controllable interface {
	core.IntParameterSetter
	core.FloatParameterSetter
	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
	TickCount() uint64
	Name() string
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD(Controllable) *HUD { return &HUD{} }

// Update is a no-op in headless builds.
func (h *HUD) Update() {}

// Draw is a no-op in headless builds.
func (h *HUD) Draw(any) {}
