package packed

// maskTable holds one mask per word column that keeps only the bits lying
// inside the logical width.
type maskTable struct {
	masks []uint64
	// start is the first column that is not entirely inside the logical
	// width; chunks reaching it must be masked.
	start int
}

func newMaskTable(g geometry) maskTable {
	t := maskTable{
		masks: make([]uint64, g.columns),
		start: g.width/wordBits + 1,
	}
	for col := 1; col < g.columns-1; col++ {
		lo := (col - 1) * wordBits
		switch {
		case lo >= g.width:
			t.masks[col] = 0
		case lo+wordBits > g.width:
			t.masks[col] = ^uint64(0) << uint(wordBits-(g.width-lo))
		default:
			t.masks[col] = ^uint64(0)
		}
	}
	return t
}

// needed reports whether a chunk of lanes starting at column x touches a
// column that needs masking.
func (t maskTable) needed(x, lanes int) bool {
	return x+lanes > t.start
}
