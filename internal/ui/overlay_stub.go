//go:build !ebiten

package ui

import "firesim/internal/sims/forest"

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns an inert overlay.
func NewOverlay(*forest.World, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op in headless builds.
func (o *Overlay) Draw(any) {}
