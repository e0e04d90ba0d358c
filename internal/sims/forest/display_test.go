package forest

import (
	"image/color"
	"testing"
)

func TestCellColorRampEndpoints(t *testing.T) {
	// New fires render at full flare-yellow, nearly burned out back at the
	// base burn color.
	if got := CellColor(Cell{FireRemaining: 10}); got != flareColor {
		t.Fatalf("fresh fire: want %v, got %v", flareColor, got)
	}
	if got := CellColor(Cell{FireRemaining: 200}); got != flareColor {
		t.Fatal("ramp must clamp above ten remaining ticks")
	}
	if got := CellColor(Cell{Tree: 1}); got != treeColor {
		t.Fatalf("bare tree: want %v, got %v", treeColor, got)
	}
	if got := CellColor(Cell{}); got != backgroundColor {
		t.Fatalf("empty cell: want %v, got %v", backgroundColor, got)
	}
	if got := CellColor(Cell{Underbrush: 5}); got != underbrushColor {
		t.Fatal("heavy underbrush must saturate to the underbrush color")
	}
}

func TestCellColorFirePrecedence(t *testing.T) {
	// Fire state wins over fuel: a burning tree renders as fire.
	burning := CellColor(Cell{Tree: 1, Underbrush: 3, FireRemaining: 1})
	if burning == treeColor || burning == underbrushColor {
		t.Fatalf("burning cell rendered as fuel: %v", burning)
	}
}

func TestFillRGBA(t *testing.T) {
	f := NewFrame(2, 1)
	f.Cells[0] = Cell{Tree: 1}
	buf := make([]byte, 4*len(f.Cells))
	FillRGBA(buf, f)

	want := []color.NRGBA{treeColor, backgroundColor}
	for i, col := range want {
		base := i * 4
		if buf[base] != col.R || buf[base+1] != col.G || buf[base+2] != col.B || buf[base+3] != col.A {
			t.Fatalf("pixel %d: want %v, got %v", i, col, buf[base:base+4])
		}
	}
}

func TestEncodeDisplayValue(t *testing.T) {
	if got := encodeDisplayValue(Cell{}); got != 0 {
		t.Fatalf("empty cell must encode to 0, got %#x", got)
	}
	if got := encodeDisplayValue(Cell{Tree: 1}); got&displayTreeBit == 0 {
		t.Fatal("tree bit missing")
	}
	if got := encodeDisplayValue(Cell{FireRemaining: 1}); got&displayBurningBit == 0 {
		t.Fatal("burning bit missing")
	}
	if got := encodeDisplayValue(Cell{Underbrush: 9}) & displayUnderbrushMask; got != displayUnderbrushMask {
		t.Fatalf("saturated underbrush must fill the mask, got %#x", got)
	}
}
