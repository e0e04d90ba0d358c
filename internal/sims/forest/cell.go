package forest

// Cell is one grid point's simulated state. Tree is nominally 0 or 1 but
// kept continuous so coupling terms can interpolate; Underbrush accumulates
// without an upper bound; FireRemaining counts down burn ticks, 0 meaning
// not burning.
type Cell struct {
	Tree          float32
	Underbrush    float32
	FireRemaining uint32
}

// Burning reports whether the cell is on fire.
func (c Cell) Burning() bool { return c.FireRemaining > 0 }

// Frame is a fixed-size rectangular grid of cells in row-major order. Two
// frames exist per world at any time; the current/scratch roles swap at
// every tick barrier and a frame is never resized after allocation.
type Frame struct {
	W, H  int
	Cells []Cell
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Frame{W: w, H: h, Cells: make([]Cell, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (f *Frame) Index(x, y int) int { return y*f.W + x }

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{W: f.W, H: f.H, Cells: make([]Cell, len(f.Cells))}
	copy(c.Cells, f.Cells)
	return c
}

// Clear zeroes every cell.
func (f *Frame) Clear() {
	for i := range f.Cells {
		f.Cells[i] = Cell{}
	}
}
