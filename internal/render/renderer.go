//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a per-cell RGBA buffer into a single texture and
// draws it scaled. The buffer is produced by the simulation's display
// mapping; the painter never reads simulation state.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Buffer exposes the RGBA staging buffer for the caller to fill before Blit.
func (gp *GridPainter) Buffer() []byte { return gp.buf }

// Blit uploads the staging buffer and draws it onto dst at the given scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
