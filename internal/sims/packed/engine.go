// Package packed implements Conway's Game of Life on a bit-packed field.
//
// Each row is stored as 64-bit words with one cell per bit and a dead border
// around the grid. A generation is computed a chunk of lanes words at a time:
// the eight neighbor planes are produced by shifting the rows above, at and
// below the chunk, then summed with a carry-save adder network. Interior rows
// are split across a fixed worker pool; every part reads the current field
// and writes a disjoint row range of the shadow field, so stepping needs no
// locks and allocates nothing.
package packed

import (
	"fmt"
	"runtime"

	"packlife/internal/core"
)

// Stats reports memory and layout diagnostics.
type Stats struct {
	MemoryBytes int
	BitsPerCell float64
	VectorWidth int
	WordColumns int
	Workers     int
	Fallback    bool
}

// Engine is the bit-packed, multi-worker Game of Life engine. A worker pool
// created by the engine is stopped by Close, or when the engine becomes
// unreachable.
type Engine struct {
	*engine
}

// engine holds the stepping state. The pool only ever sees stepPart bound to
// *engine, so dropping the outer *Engine lets its finalizer run.
type engine struct {
	geo   geometry
	cur   *Field
	nxt   *Field
	masks maskTable
	probe LaneProbe

	exec     Executor
	ownsExec bool
	part     partition
	runPart  func(part int)

	generation int
}

// New returns an engine of the given size with automatic lane and worker
// selection. Zero sizes produce a valid, empty engine.
func New(width, height int) *Engine {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from cfg. An unsupported lane
// width falls back to scalar lanes; the outcome is visible in Stats and Probe.
func NewWithConfig(cfg Config) *Engine {
	return newEngine(cfg, DetectLanes())
}

func newEngine(cfg Config, detected LaneWidth) *Engine {
	probe := ResolveLanes(cfg.Lanes, detected)
	geo := newGeometry(cfg.Width, cfg.Height, int(probe.Lanes))

	e := &engine{
		geo:   geo,
		cur:   newField(geo),
		nxt:   newField(geo),
		masks: newMaskTable(geo),
		probe: probe,
	}

	switch {
	case cfg.Executor != nil:
		e.exec = cfg.Executor
	case cfg.Workers == 0:
		e.exec, e.ownsExec = NewExecutor(DefaultWorkers()), true
	default:
		e.exec, e.ownsExec = NewExecutor(cfg.Workers), true
	}
	e.part = newPartition(geo.height, e.exec.Workers())
	e.runPart = e.stepPart

	h := &Engine{engine: e}
	if e.ownsExec {
		runtime.SetFinalizer(h, (*Engine).Close)
	}
	return h
}

func (e *engine) stepPart(part int) {
	from, to := e.part.rows(part)
	stepRows(e.cur.words, e.nxt.words, e.geo, e.masks, from, to)
}

// Name returns the engine identifier.
func (e *engine) Name() string { return "packed" }

// Size returns the logical grid dimensions.
func (e *engine) Size() core.Size { return core.Size{W: e.geo.width, H: e.geo.height} }

// Cell reports whether (row, col) is alive; out-of-range cells are dead.
func (e *engine) Cell(row, col int) bool { return e.cur.Get(col, row) }

// SetCell writes (row, col); out-of-range writes are ignored.
func (e *engine) SetCell(row, col int, alive bool) { e.cur.Put(col, row, alive) }

// LoadFrom clears both fields and copies the live cells of g, clamped to the
// engine's bounds.
func (e *engine) LoadFrom(g core.GridReader) {
	e.cur.Reset()
	e.nxt.Reset()
	e.generation = 0
	h := min(g.Height(), e.geo.height)
	w := min(g.Width(), e.geo.width)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if g.Cell(row, col) {
				e.cur.Set(col, row)
			}
		}
	}
}

// Step advances exactly one generation.
func (e *engine) Step() {
	e.exec.Run(e.part.parts, e.runPart)
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// RunSteps advances n generations, one Step at a time.
func (e *engine) RunSteps(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// Generation returns the number of generations stepped since construction
// or the last LoadFrom.
func (e *engine) Generation() int { return e.generation }

// CountLive returns the number of live cells.
func (e *engine) CountLive() int { return e.cur.CountLive() }

// Snapshot rebuilds a logical grid of the current generation.
func (e *engine) Snapshot() *core.Grid { return core.Snapshot(e) }

// Probe returns the lane selection outcome.
func (e *engine) Probe() LaneProbe { return e.probe }

// Stats reports memory usage and layout.
func (e *engine) Stats() Stats {
	return Stats{
		MemoryBytes: (e.cur.Words() + e.nxt.Words()) * 8,
		BitsPerCell: 1.0,
		VectorWidth: e.geo.lanes,
		WordColumns: e.geo.columns,
		Workers:     e.exec.Workers(),
		Fallback:    e.probe.Fallback,
	}
}

// Info describes the engine for the registry and viewer.
func (e *engine) Info() core.EngineInfo {
	return core.EngineInfo{
		Name: "packed",
		Description: fmt.Sprintf("bit-packed (64 cells/word), %d-lane vectors, carry-save adder rule, %d workers",
			e.geo.lanes, e.exec.Workers()),
		BitsPerCell:      1.0,
		SupportsParallel: e.exec.Workers() > 1,
		SupportsSIMD:     e.geo.lanes > 1,
	}
}

// Close stops the worker pool the engine created. The engine must not be
// stepped afterwards.
func (e *Engine) Close() error {
	runtime.SetFinalizer(e, nil)
	if e.ownsExec {
		e.exec.Close()
	}
	return nil
}

func init() {
	core.Register("packed", func(cfg map[string]string) core.Engine {
		return NewWithConfig(FromMap(cfg))
	})
}
