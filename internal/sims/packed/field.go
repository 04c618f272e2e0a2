package packed

import "math/bits"

const (
	wordBits = 64
	topBit   = uint64(1) << 63
)

// geometry captures the padded layout shared by both fields of an engine.
type geometry struct {
	width   int // logical width
	height  int // logical height
	columns int // words per row, padding and lane alignment included
	rows    int // height + 2
	lanes   int
}

func divCeil(x, y int) int { return (x + y - 1) / y }

func newGeometry(width, height, lanes int) geometry {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return geometry{
		width:   width,
		height:  height,
		columns: divCeil(divCeil(width, wordBits), lanes)*lanes + 2,
		rows:    height + 2,
		lanes:   lanes,
	}
}

// Field stores one bit per cell surrounded by a border of dead cells: one
// word column on each side and one row above and below. Bit 63 (the most
// significant) of a word holds the smallest x the word covers.
type Field struct {
	geometry
	words []uint64
}

func newField(g geometry) *Field {
	return &Field{geometry: g, words: make([]uint64, g.columns*g.rows)}
}

func (f *Field) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// locate returns the word index and bit mask for the logical cell (x, y).
func (f *Field) locate(x, y int) (int, uint64) {
	return (y+1)*f.columns + x/wordBits + 1, topBit >> uint(x%wordBits)
}

// Get reports whether (x, y) is alive. Coordinates outside the logical grid
// are dead.
func (f *Field) Get(x, y int) bool {
	if !f.inBounds(x, y) {
		return false
	}
	i, bit := f.locate(x, y)
	return f.words[i]&bit != 0
}

// Set marks (x, y) alive. It is a no-op outside the logical grid.
func (f *Field) Set(x, y int) {
	f.Put(x, y, true)
}

// Put writes the state of (x, y). It is a no-op outside the logical grid.
func (f *Field) Put(x, y int, alive bool) {
	if !f.inBounds(x, y) {
		return
	}
	i, bit := f.locate(x, y)
	if alive {
		f.words[i] |= bit
	} else {
		f.words[i] &^= bit
	}
}

// CountLive returns the number of live cells. Bits outside the logical grid
// are always zero, so counting whole interior words is exact.
func (f *Field) CountLive() int {
	n := 0
	for y := 1; y <= f.height; y++ {
		row := f.words[y*f.columns : (y+1)*f.columns]
		for _, w := range row[1 : f.columns-1] {
			n += bits.OnesCount64(w)
		}
	}
	return n
}

// Reset kills every cell.
func (f *Field) Reset() {
	for i := range f.words {
		f.words[i] = 0
	}
}

// Words returns the number of words backing the field.
func (f *Field) Words() int { return len(f.words) }
