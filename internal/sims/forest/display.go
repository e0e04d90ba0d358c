package forest

import "image/color"

// Rendering is a pure function of final cell state with no feedback into the
// dynamics: burning cells interpolate the burn color toward yellow by
// remaining duration, trees blend toward an underbrush tint, bare ground
// blends toward the underbrush color.
var (
	burnColor       = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	flareColor      = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	treeColor       = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	underbrushColor = color.NRGBA{R: 252, G: 186, B: 3, A: 255}
	backgroundColor = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
)

// Compact display-buffer layout for the generic Cells() contract.
const (
	displayUnderbrushMask = 0x07
	displayTreeBit        = 0x08
	displayBurningBit     = 0x10
)

// CellColor maps one cell to its display color.
func CellColor(c Cell) color.NRGBA {
	if c.FireRemaining > 0 {
		t := float64(c.FireRemaining) / 10
		if t > 1 {
			t = 1
		}
		return blendColors(burnColor, flareColor, t)
	}
	brush := clamp01(float64(c.Underbrush))
	if c.Tree > 0.5 {
		tinted := blendColors(treeColor, underbrushColor, 0.5)
		return blendColors(treeColor, tinted, brush)
	}
	return blendColors(backgroundColor, underbrushColor, brush)
}

// FillRGBA writes the frame's colors into a premade RGBA byte buffer of
// length 4*len(cells).
func FillRGBA(buf []byte, f *Frame) {
	for i, c := range f.Cells {
		col := CellColor(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

func encodeDisplayValue(c Cell) uint8 {
	var v uint8
	if c.Tree > 0.5 {
		v |= displayTreeBit
	}
	if c.FireRemaining > 0 {
		v |= displayBurningBit
	}
	v |= uint8(clamp01(float64(c.Underbrush))*float64(displayUnderbrushMask) + 0.5)
	return v
}

func (w *World) rebuildDisplay() {
	for i, c := range w.curr.Cells {
		w.display[i] = encodeDisplayValue(c)
	}
}
