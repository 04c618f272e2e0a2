package packed

// nextWord applies Conway's rule to 64 cells at once. The eight neighbor
// planes are summed with a carry-save adder network; the count is never
// materialised.
func nextWord(center, nw, n, ne, w, e, sw, s, se uint64) uint64 {
	// stage 1: full adders on (nw,n,ne) and (w,e,sw), half adder on (s,se)
	ta0 := nw ^ n
	a8 := ta0 ^ ne
	b0 := (nw & n) | (ta0 & ne)

	ta3 := w ^ e
	a9 := ta3 ^ sw
	b1 := (w & e) | (ta3 & sw)

	aa := s ^ se
	b2 := s & se

	// stage 2: ab is bit 0 of the count; b3 and b4 are the two weight-2
	// signals, c0 is set when the count reaches 4.
	ta8 := a8 ^ a9
	ab := ta8 ^ aa
	b3 := (a8 & a9) | (ta8 & aa)

	tb0 := b0 ^ b1
	b4 := tb0 ^ b2
	c0 := (b0 & b1) | (tb0 & b2)

	return (center | ab) & (b3 ^ b4) &^ c0
}

// applyRule runs nextWord over every lane of a chunk.
func applyRule(out, center *vector, nb *[8]vector, lanes int) {
	for l := 0; l < lanes; l++ {
		out[l] = nextWord(center[l],
			nb[0][l], nb[1][l], nb[2][l],
			nb[3][l], nb[4][l],
			nb[5][l], nb[6][l], nb[7][l])
	}
}
