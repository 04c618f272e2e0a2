package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPattern is returned when a pattern has no rows or no columns.
	ErrEmptyPattern = errors.New("pattern is empty")
	// ErrRaggedPattern is returned when pattern rows differ in length.
	ErrRaggedPattern = errors.New("pattern rows differ in length")
	// ErrInvalidCell is returned for a rune that is neither alive nor dead.
	ErrInvalidCell = errors.New("invalid cell rune")
)

// GridReader is the read-only view engines import from.
type GridReader interface {
	Width() int
	Height() int
	Cell(row, col int) bool
}

// LogicalGrid is the full capability set of a logical grid.
type LogicalGrid interface {
	GridReader
	SetCell(row, col int, alive bool)
	Clear()
}

// Grid stores one byte per cell in row-major order. Unlike the engines it is
// strict: accessing a cell outside the grid panics.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with the given dimensions. Negative dimensions are
// treated as zero.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.H }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

func (g *Grid) mustContain(row, col int) {
	if row < 0 || row >= g.H || col < 0 || col >= g.W {
		panic(fmt.Sprintf("core: cell (%d,%d) out of bounds for %dx%d grid", row, col, g.W, g.H))
	}
}

// Cell reports whether the cell at (row, col) is alive.
func (g *Grid) Cell(row, col int) bool {
	g.mustContain(row, col)
	return g.data[g.Index(row, col)] != 0
}

// SetCell sets the state of the cell at (row, col).
func (g *Grid) SetCell(row, col int, alive bool) {
	g.mustContain(row, col)
	var v uint8
	if alive {
		v = 1
	}
	g.data[g.Index(row, col)] = v
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CountLive returns the number of live cells.
func (g *Grid) CountLive() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// CountNeighbors counts the live cells in the Moore neighborhood of
// (row, col). Cells beyond the edge count as dead.
func (g *Grid) CountNeighbors(row, col int) int {
	g.mustContain(row, col)
	n := 0
	for dy := -1; dy <= 1; dy++ {
		y := row + dy
		if y < 0 || y >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			x := col + dx
			if (dx == 0 && dy == 0) || x < 0 || x >= g.W {
				continue
			}
			n += int(g.data[y*g.W+x])
		}
	}
	return n
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			if g.data[row*g.W+col] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParsePattern builds a grid from rows of runes. Every row must have the same
// number of runes and only contain alive or dead.
func ParsePattern(lines []string, alive, dead rune) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyPattern
	}
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, fmt.Errorf("row 0: %w", ErrEmptyPattern)
	}
	g := NewGrid(width, len(lines))
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(runes), width, ErrRaggedPattern)
		}
		for col, r := range runes {
			switch r {
			case alive:
				g.data[row*width+col] = 1
			case dead:
			default:
				return nil, fmt.Errorf("row %d col %d: %q: %w", row, col, r, ErrInvalidCell)
			}
		}
	}
	return g, nil
}

// MustParsePattern is like ParsePattern with '#' and '.' but panics on error.
// It is intended for fixed patterns in tests and examples.
func MustParsePattern(lines ...string) *Grid {
	g, err := ParsePattern(lines, '#', '.')
	if err != nil {
		panic(err)
	}
	return g
}

// Stamp copies the live cells of src into dst with src's top-left corner at
// (row, col). Cells falling outside dst are clipped.
func Stamp(dst LogicalGrid, src GridReader, row, col int) {
	for y := 0; y < src.Height(); y++ {
		ty := row + y
		if ty < 0 || ty >= dst.Height() {
			continue
		}
		for x := 0; x < src.Width(); x++ {
			tx := col + x
			if tx < 0 || tx >= dst.Width() {
				continue
			}
			if src.Cell(y, x) {
				dst.SetCell(ty, tx, true)
			}
		}
	}
}

// Center stamps src into the middle of dst.
func Center(dst LogicalGrid, src GridReader) {
	Stamp(dst, src, (dst.Height()-src.Height())/2, (dst.Width()-src.Width())/2)
}
