//go:build ebiten

package ui

import (
	"firesim/internal/sims/forest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws an optional fuel heat map on top of the base view: cell
// alpha tracks clamped underbrush, so buildup is visible before it burns.
type Overlay struct {
	world *forest.World
	scale int
	show  bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs an overlay for the given world.
func NewOverlay(world *forest.World, scale int) *Overlay {
	size := world.Size()
	return &Overlay{
		world: world,
		scale: scale,
		img:   ebiten.NewImage(size.W, size.H),
		buf:   make([]byte, 4*size.W*size.H),
	}
}

// Update toggles the overlay on F.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.show = !o.show
	}
}

// Draw paints the underbrush mask when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	for i, c := range o.world.Frame().Cells {
		a := c.Underbrush
		if a > 1 {
			a = 1
		}
		if a < 0 {
			a = 0
		}
		alpha := uint8(a * 200)
		base := i * 4
		o.buf[base+0] = alpha
		o.buf[base+1] = alpha / 2
		o.buf[base+2] = 0
		o.buf[base+3] = alpha
	}
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
