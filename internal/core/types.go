package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// EngineInfo describes the performance characteristics of an engine.
type EngineInfo struct {
	Name             string
	Description      string
	BitsPerCell      float64
	SupportsParallel bool
	SupportsSIMD     bool
}

// Engine defines the contract shared by every Game of Life implementation.
//
// Cell and SetCell are permissive: coordinates outside the grid read as dead
// and writes to them are dropped.
type Engine interface {
	Name() string
	Size() Size
	Cell(row, col int) bool
	SetCell(row, col int, alive bool)
	LoadFrom(g GridReader)
	Step()
	RunSteps(n int)
	CountLive() int
	Info() EngineInfo
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames returns the registered engine names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot rebuilds a logical grid from an engine's per-cell accessor.
func Snapshot(e Engine) *Grid {
	s := e.Size()
	g := NewGrid(s.W, s.H)
	for row := 0; row < s.H; row++ {
		for col := 0; col < s.W; col++ {
			if e.Cell(row, col) {
				g.data[row*s.W+col] = 1
			}
		}
	}
	return g
}
