package packed

// partition splits the interior rows [1, height] into contiguous ranges of
// chunk rows; the last range may be shorter.
type partition struct {
	chunk int
	parts int
	end   int // one past the last interior row
}

func newPartition(height, workers int) partition {
	if workers < 1 {
		workers = 1
	}
	p := partition{end: height + 1}
	if height == 0 {
		return p
	}
	p.chunk = divCeil(height, workers)
	p.parts = divCeil(height, p.chunk)
	return p
}

// rows returns the half-open row range owned by part.
func (p partition) rows(part int) (from, to int) {
	from = 1 + part*p.chunk
	return from, min(from+p.chunk, p.end)
}

// stepRows computes rows [from, to) of dst from src. It only reads src and
// only writes the given rows of dst, so disjoint ranges can run concurrently.
func stepRows(src, dst []uint64, g geometry, masks maskTable, from, to int) {
	cols, lanes := g.columns, g.lanes
	var (
		up, mid, down vector
		nb            [8]vector
		out           vector
	)
	for y := from; y < to; y++ {
		for x := 1; x < cols-1; x += lanes {
			i := y*cols + x
			u, d := i-cols, i+cols

			load(&up, src, u, lanes)
			load(&mid, src, i, lanes)
			load(&down, src, d, lanes)

			nb[0] = shiftRightWithCarry(&up, lanes, src[u-1])
			nb[1] = up
			nb[2] = shiftLeftWithCarry(&up, lanes, src[u+lanes]>>63)
			nb[3] = shiftRightWithCarry(&mid, lanes, src[i-1])
			nb[4] = shiftLeftWithCarry(&mid, lanes, src[i+lanes]>>63)
			nb[5] = shiftRightWithCarry(&down, lanes, src[d-1])
			nb[6] = down
			nb[7] = shiftLeftWithCarry(&down, lanes, src[d+lanes]>>63)

			applyRule(&out, &mid, &nb, lanes)

			if masks.needed(x, lanes) {
				for l := 0; l < lanes; l++ {
					out[l] &= masks.masks[x+l]
				}
			}
			copy(dst[i:i+lanes], out[:lanes])
		}
	}
}
