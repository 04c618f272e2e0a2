// Package life implements the reference Game of Life engine: one byte per
// cell, a dead world beyond the edges, and a straightforward neighbor count.
package life

import (
	"strconv"

	"packlife/internal/core"
)

// Config holds the reference engine dimensions.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	return c
}

// Life is Conway's Game of Life without wrapping.
type Life struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]uint8, w*h)
	return &Life{w: w, h: h, cur: cells, nxt: make([]uint8, len(cells))}
}

// Name returns the engine identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur }

func (l *Life) inBounds(row, col int) bool {
	return row >= 0 && row < l.h && col >= 0 && col < l.w
}

// Cell reports whether (row, col) is alive; out-of-range cells are dead.
func (l *Life) Cell(row, col int) bool {
	return l.inBounds(row, col) && l.cur[row*l.w+col] != 0
}

// SetCell writes (row, col); out-of-range writes are ignored.
func (l *Life) SetCell(row, col int, alive bool) {
	if !l.inBounds(row, col) {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	l.cur[row*l.w+col] = v
}

// LoadFrom replaces the grid with the live cells of g, clamped to this
// engine's bounds.
func (l *Life) LoadFrom(g core.GridReader) {
	for i := range l.cur {
		l.cur[i] = 0
	}
	h := min(g.Height(), l.h)
	w := min(g.Width(), l.w)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if g.Cell(row, col) {
				l.cur[row*l.w+col] = 1
			}
		}
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
						continue
					}
					neighbors += int(l.cur[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := l.cur[idx] == 1
			l.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				l.nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// RunSteps advances n generations.
func (l *Life) RunSteps(n int) {
	for i := 0; i < n; i++ {
		l.Step()
	}
}

// CountLive returns the number of live cells.
func (l *Life) CountLive() int {
	n := 0
	for _, c := range l.cur {
		n += int(c)
	}
	return n
}

// Info describes the engine.
func (l *Life) Info() core.EngineInfo {
	return core.EngineInfo{
		Name:        "life",
		Description: "one byte per cell, cell-by-cell neighbor count",
		BitsPerCell: 8,
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
