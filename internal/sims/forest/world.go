package forest

import (
	"runtime"
	"sync"

	"firesim/internal/core"
	pcore "firesim/pkg/core"
)

// World owns the double-buffered grid and advances it tick by tick. Within
// one tick every cell's next state is a pure function of the previous
// frame, so the cells are computed in parallel row bands with no
// synchronization beyond the final barrier; correctness does not depend on
// the band count.
type World struct {
	cfg Config

	curr *Frame
	next *Frame

	tick    uint64
	seed    uint32
	workers int

	display []uint8

	// stepping guards against overlapping ticks, which would let a cell
	// observe current-tick output. That is a scheduler bug, not a
	// recoverable condition.
	stepping bool
	mu       sync.Mutex
}

// New returns a forest world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a forest world configured from the provided options.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		curr:    NewFrame(cfg.Width, cfg.Height),
		next:    NewFrame(cfg.Width, cfg.Height),
		seed:    uint32(cfg.Seed),
		workers: runtime.GOMAXPROCS(0),
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	w.populate(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "forest" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the quantized display buffer for the generic Sim contract.
func (w *World) Cells() []uint8 { return w.display }

// Frame exposes the most recently completed frame. Callers must treat it as
// read-only; the scheduler hands out deep copies for anything longer-lived
// than a draw call.
func (w *World) Frame() *Frame { return w.curr }

// TickCount reports how many ticks have completed. It increments by exactly
// one per tick and never resets during a run.
func (w *World) TickCount() uint64 { return w.tick }

// Params returns the world's current parameter record.
func (w *World) Params() Params { return w.cfg.Params }

// SetParams replaces the parameter record wholesale. The caller is
// responsible for sequencing this between ticks; the scheduler applies
// staged records only at tick barriers.
func (w *World) SetParams(p Params) {
	w.cfg.Params = p
}

// Reset repopulates the initial frame deterministically from the seed and
// rewinds the tick counter. A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = uint32(seed)
	w.curr.Clear()
	w.next.Clear()
	w.tick = 0
	w.populate(seed)
}

// populate seeds the starting tree cover. The stateful RNG is fine here:
// initialization happens once, outside the tick loop.
func (w *World) populate(seed int64) {
	rng := pcore.NewRNG(seed)
	density := w.cfg.InitialTreeDensity
	for i := range w.curr.Cells {
		if rng.Float64() < density {
			w.curr.Cells[i].Tree = 1
		}
	}
	w.rebuildDisplay()
}

// Restore replaces the current frame and tick counter from a snapshot, so a
// paused run can continue elsewhere and produce the identical state
// sequence. The snapshot must match the world's dimensions.
func (w *World) Restore(f *Frame, tick uint64) bool {
	if f.W != w.cfg.Width || f.H != w.cfg.Height {
		return false
	}
	copy(w.curr.Cells, f.Cells)
	w.tick = tick
	w.rebuildDisplay()
	return true
}

// Step advances the whole grid by exactly one tick: every cell's next state
// is computed from the current frame, then the buffers swap and the counter
// increments. The parameter snapshot taken at entry is used for the entire
// tick.
func (w *World) Step() {
	w.mu.Lock()
	if w.stepping {
		w.mu.Unlock()
		panic("forest: overlapping Step calls")
	}
	w.stepping = true
	w.mu.Unlock()

	p := w.cfg.Params
	area := w.cfg.Width * w.cfg.Height
	tick32 := uint32(w.tick)

	height := w.cfg.Height
	bands := w.workers
	if bands > height {
		bands = height
	}
	if bands < 1 {
		bands = 1
	}
	rowsPer := (height + bands - 1) / bands

	var wg sync.WaitGroup
	for y0 := 0; y0 < height; y0 += rowsPer {
		y1 := y0 + rowsPer
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			w.stepRows(y0, y1, p, area, tick32)
		}(y0, y1)
	}
	wg.Wait()

	w.curr, w.next = w.next, w.curr
	w.tick++
	w.rebuildDisplay()

	w.mu.Lock()
	w.stepping = false
	w.mu.Unlock()
}

func (w *World) stepRows(y0, y1 int, p Params, area int, tick uint32) {
	width := w.curr.W
	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			n := neighborhood(w.curr, idx)
			d := drawsFor(w.seed, idx, tick)
			w.next.Cells[idx] = transition(w.curr.Cells[idx], n, p, area, d)
		}
	}
}

// SetWorkers overrides the worker count, mainly so tests can prove the
// result is independent of partitioning.
func (w *World) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	w.workers = n
}

func init() {
	core.Register("forest", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
