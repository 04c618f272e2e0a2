package packed

// MaxLanes is the widest supported vector.
const MaxLanes = 8

// vector holds up to MaxLanes consecutive words of one row. Only the first
// lanes entries are meaningful.
type vector [MaxLanes]uint64

func load(v *vector, words []uint64, i, lanes int) {
	copy(v[:lanes], words[i:i+lanes])
}

// shiftLeftWithCarry moves every bit one position towards the most
// significant end, so bit x of the result holds cell x+1. Each word's low bit
// is refilled from the high bit of the next lane; the last lane takes next,
// the high bit (0 or 1) of the word following the vector.
func shiftLeftWithCarry(v *vector, lanes int, next uint64) vector {
	var out vector
	last := lanes - 1
	for i := 0; i < last; i++ {
		out[i] = v[i]<<1 | v[i+1]>>63
	}
	out[last] = v[last]<<1 | next&1
	return out
}

// shiftRightWithCarry is the mirror of shiftLeftWithCarry: bit x of the
// result holds cell x-1. The first lane's high bit comes from prev, the low
// bit (0 or 1) of the word preceding the vector.
func shiftRightWithCarry(v *vector, lanes int, prev uint64) vector {
	var out vector
	out[0] = v[0]>>1 | (prev&1)<<63
	for i := 1; i < lanes; i++ {
		out[i] = v[i]>>1 | v[i-1]<<63
	}
	return out
}
