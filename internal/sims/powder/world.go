package powder

import (
	"powder-ca/internal/core"
	pcore "powder-ca/pkg/core"
)

// Cell is one grid slot: a material plus its overloaded life counter
// (burn ticks, gas lifetime, electrical charge, wetness, animation frame).
type Cell struct {
	Mat  Material
	Life int32
}

// World owns all simulation state: the flat row-major cell buffer, the
// per-tick update mask and the deterministic RNG. A World is not safe for
// concurrent use; run independent instances for parallel simulations.
type World struct {
	cfg Config

	w, h int

	cells   []Cell
	updated []bool
	display *core.ByteGrid

	rng  *pcore.RNG
	tick uint64
}

// New returns a powder world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a powder world configured from the provided options.
// Negative dimensions clamp to zero; every cell starts Empty.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.sanitized()
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cells:   make([]Cell, total),
		updated: make([]bool, total),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		rng:     pcore.NewRNG(uint64(cfg.Seed)),
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "powder" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the display buffer: one byte per cell holding the material
// value, with the high bit set for electrified water.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Width returns the grid width.
func (w *World) Width() int { return w.w }

// Height returns the grid height.
func (w *World) Height() int { return w.h }

// Tick returns the number of completed simulation steps since the last
// reset.
func (w *World) Tick() uint64 { return w.tick }

// Reset reseeds the RNG and clears every cell to Empty. A zero seed falls
// back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(uint64(effective))
	w.tick = 0
	for i := range w.cells {
		w.cells[i] = Cell{}
	}
	w.rebuildDisplay()
}

// Resize reallocates the grid with new dimensions. No content is preserved.
func (w *World) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	w.w = width
	w.h = height
	total := width * height
	w.cells = make([]Cell, total)
	w.updated = make([]bool, total)
	w.display.Resize(width, height)
	w.rebuildDisplay()
}

// Clear resets all cells to Empty in place.
func (w *World) Clear() {
	for i := range w.cells {
		w.cells[i] = Cell{}
	}
	w.rebuildDisplay()
}

// CellAt returns a copy of the cell at (x, y), or the zero (Empty) cell for
// out-of-bounds coordinates.
func (w *World) CellAt(x, y int) Cell {
	if !w.inBounds(x, y) {
		return Cell{}
	}
	return w.cells[w.idx(x, y)]
}

// SetCellAt overwrites the cell at (x, y). Out-of-bounds writes are a
// silent no-op reported by the return value.
func (w *World) SetCellAt(x, y int, c Cell) bool {
	if !w.inBounds(x, y) {
		return false
	}
	i := w.idx(x, y)
	w.cells[i] = c
	w.display.Cells()[i] = displayByte(c)
	return true
}

// Export copies cells in row-major order into dst and returns the number of
// cells written.
func (w *World) Export(dst []Cell) int {
	return copy(dst, w.cells)
}

func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.w && y >= 0 && y < w.h
}

func (w *World) idx(x, y int) int { return y*w.w + x }

func init() {
	core.Register("powder", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
