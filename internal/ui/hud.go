//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"firesim/internal/core"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// PanelWidth is the horizontal space reserved for the parameter panel.
const PanelWidth = 240

// Controllable is what the HUD needs from a simulation: a parameter
// snapshot to display, controls to adjust, and a tick counter for the
// status line.
type Controllable interface {
	core.IntParameterSetter
	core.FloatParameterSetter
	Parameters() core.ParameterSnapshot
	ParameterControls() []core.ParameterControl
	TickCount() uint64
	Name() string
}

// HUD renders the parameter panel to the right of the simulation view and
// applies keyboard adjustments between ticks.
type HUD struct {
	sim      Controllable
	visible  bool
	selected int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD bound to the given simulation.
func NewHUD(sim Controllable) *HUD {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &HUD{sim: sim, visible: true, pixel: pixel}
}

// Update handles panel input: Tab toggles, Up/Down select, Left/Right
// adjust, C copies a run report to the clipboard.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}

	controls := h.sim.ParameterControls()
	if len(controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(controls) - 1) % len(controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(controls)
	}

	dir := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		dir = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		dir = 1
	}
	if dir != 0 {
		h.adjust(controls[h.selected], dir)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(h.report()); err != nil {
			log.Printf("hud: clipboard copy failed: %v", err)
		}
	}
}

func (h *HUD) adjust(c core.ParameterControl, dir int) {
	values := h.values()
	raw, ok := values[c.Key]
	if !ok {
		return
	}
	switch c.Type {
	case core.ParamTypeInt:
		cur, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		next := cur + dir*int(c.Step)
		if c.HasMin && float64(next) < c.Min {
			next = int(c.Min)
		}
		if c.HasMax && float64(next) > c.Max {
			next = int(c.Max)
		}
		h.sim.SetIntParameter(c.Key, next)
	case core.ParamTypeFloat:
		cur, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return
		}
		next := cur + float64(dir)*c.Step
		if c.HasMin && next < c.Min {
			next = c.Min
		}
		if c.HasMax && next > c.Max {
			next = c.Max
		}
		h.sim.SetFloatParameter(c.Key, next)
	}
}

// values flattens the snapshot into key -> formatted value.
func (h *HUD) values() map[string]string {
	out := map[string]string{}
	for _, g := range h.sim.Parameters().Groups {
		for _, p := range g.Params {
			out[p.Key] = p.Value
		}
	}
	return out
}

// report formats the current run state for pasting into a lab notebook.
func (h *HUD) report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s @ tick %d\n", h.sim.Name(), h.sim.TickCount())
	for _, g := range h.sim.Parameters().Groups {
		fmt.Fprintf(&b, "[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(&b, "  %s = %s\n", p.Key, p.Value)
		}
	}
	return b.String()
}

// Draw renders the panel onto the right edge of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	bounds := screen.Bounds()
	x0 := bounds.Dx() - PanelWidth

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(PanelWidth), float64(bounds.Dy()))
	op.GeoM.Translate(float64(x0), 0)
	op.ColorScale.ScaleWithColor(color.NRGBA{R: 16, G: 16, B: 16, A: 230})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	y := 16
	text.Draw(screen, fmt.Sprintf("tick %d", h.sim.TickCount()), face, x0+8, y, color.White)
	y += 18

	selectedKey := ""
	if controls := h.sim.ParameterControls(); len(controls) > 0 {
		selectedKey = controls[h.selected].Key
	}
	for _, g := range h.sim.Parameters().Groups {
		text.Draw(screen, g.Name, face, x0+8, y, color.NRGBA{R: 180, G: 200, B: 160, A: 255})
		y += 14
		for _, p := range g.Params {
			marker := "  "
			col := color.Color(color.NRGBA{R: 200, G: 200, B: 200, A: 255})
			if p.Key == selectedKey {
				marker = "> "
				col = color.White
			}
			text.Draw(screen, fmt.Sprintf("%s%s: %s", marker, p.Label, p.Value), face, x0+8, y, col)
			y += 13
		}
		y += 6
	}
	text.Draw(screen, "arrows adjust / C copy / Tab hide", face, x0+8, y+4, color.NRGBA{R: 120, G: 120, B: 120, A: 255})
}
