package packed

import "testing"

// conway is the direct definition the adder network must reproduce.
func conway(center bool, count int) bool {
	return count == 3 || (center && count == 2)
}

// neighborhood decodes case i: bit 0 is the center, bits 1..8 the neighbors.
func neighborhood(i int) (center bool, nb [8]bool, count int) {
	center = i&1 == 1
	for k := 0; k < 8; k++ {
		if i>>(k+1)&1 == 1 {
			nb[k] = true
			count++
		}
	}
	return center, nb, count
}

func plane(b bool) uint64 {
	if b {
		return ^uint64(0)
	}
	return 0
}

func TestNextWordAllNeighborhoods(t *testing.T) {
	for i := 0; i < 512; i++ {
		center, nb, count := neighborhood(i)
		got := nextWord(plane(center),
			plane(nb[0]), plane(nb[1]), plane(nb[2]),
			plane(nb[3]), plane(nb[4]),
			plane(nb[5]), plane(nb[6]), plane(nb[7]))
		want := plane(conway(center, count))
		if got != want {
			t.Fatalf("case %09b: center=%v count=%d got %016x want %016x", i, center, count, got, want)
		}
	}
}

func TestNextWordBitPositionsAreIndependent(t *testing.T) {
	// Spread the 512 cases over eight words, one case per bit, so every
	// bit position sees a different neighborhood in the same call.
	var center [8]uint64
	var nb [8][8]uint64
	for i := 0; i < 512; i++ {
		word, bit := i/64, uint64(1)<<uint(i%64)
		c, n, _ := neighborhood(i)
		if c {
			center[word] |= bit
		}
		for k := 0; k < 8; k++ {
			if n[k] {
				nb[k][word] |= bit
			}
		}
	}
	for word := 0; word < 8; word++ {
		got := nextWord(center[word],
			nb[0][word], nb[1][word], nb[2][word],
			nb[3][word], nb[4][word],
			nb[5][word], nb[6][word], nb[7][word])
		for b := 0; b < 64; b++ {
			i := word*64 + b
			c, _, count := neighborhood(i)
			alive := got>>uint(b)&1 == 1
			if alive != conway(c, count) {
				t.Fatalf("case %09b: alive=%v want %v", i, alive, !alive)
			}
		}
	}
}

func TestApplyRuleUsesEveryLane(t *testing.T) {
	var center, out vector
	var nb [8]vector
	for l := 0; l < MaxLanes; l++ {
		// lane l: l%4 live neighbors, center alive on even lanes
		for k := 0; k < l%4; k++ {
			nb[k][l] = ^uint64(0)
		}
		if l%2 == 0 {
			center[l] = ^uint64(0)
		}
	}
	applyRule(&out, &center, &nb, MaxLanes)
	for l := 0; l < MaxLanes; l++ {
		want := plane(conway(l%2 == 0, l%4))
		if out[l] != want {
			t.Fatalf("lane %d: got %016x want %016x", l, out[l], want)
		}
	}
}
