package packed

import "testing"

func TestGeometryColumns(t *testing.T) {
	tests := []struct {
		width, lanes, want int
	}{
		{0, 4, 2},
		{1, 4, 6},
		{64, 1, 3},
		{65, 1, 4},
		{65, 2, 4},
		{200, 4, 6},
		{200, 8, 10},
		{300, 4, 10},
	}
	for _, tc := range tests {
		g := newGeometry(tc.width, 3, tc.lanes)
		if g.columns != tc.want {
			t.Fatalf("width=%d lanes=%d: columns=%d, want %d", tc.width, tc.lanes, g.columns, tc.want)
		}
		if g.rows != 5 {
			t.Fatalf("rows=%d, want 5", g.rows)
		}
	}
}

func TestFieldBitAddressing(t *testing.T) {
	f := newField(newGeometry(130, 2, 1))
	f.Set(0, 0)
	f.Set(63, 0)
	f.Set(64, 1)
	row0 := f.words[1*f.columns:]
	row1 := f.words[2*f.columns:]
	if row0[1] != topBit|1 {
		t.Fatalf("row 0 word 1 = %016x, want x=0 in the top bit and x=63 in the low bit", row0[1])
	}
	if row1[2] != topBit {
		t.Fatalf("row 1 word 2 = %016x, want x=64 in the top bit", row1[2])
	}
	if !f.Get(63, 0) || f.Get(62, 0) || !f.Get(64, 1) {
		t.Fatal("Get disagrees with Set")
	}
	f.Put(63, 0, false)
	if f.Get(63, 0) {
		t.Fatal("Put(false) did not clear the cell")
	}
}

func TestFieldOutOfRangeIsPermissive(t *testing.T) {
	f := newField(newGeometry(10, 10, 4))
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {1 << 20, 3}} {
		f.Set(p[0], p[1])
		if f.Get(p[0], p[1]) {
			t.Fatalf("Get(%d,%d) reported alive outside the grid", p[0], p[1])
		}
	}
	if got := f.CountLive(); got != 0 {
		t.Fatalf("live=%d after out-of-range writes", got)
	}
}

func TestFieldBorderStaysDead(t *testing.T) {
	g := newGeometry(70, 6, 2)
	f := newField(g)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			f.Set(x, y)
		}
	}
	if got := f.CountLive(); got != 70*6 {
		t.Fatalf("live=%d, want %d", got, 70*6)
	}
	for col := 0; col < g.columns; col++ {
		if f.words[col] != 0 || f.words[(g.rows-1)*g.columns+col] != 0 {
			t.Fatalf("padding row written at column %d", col)
		}
	}
	for y := 0; y < g.rows; y++ {
		if f.words[y*g.columns] != 0 || f.words[y*g.columns+g.columns-1] != 0 {
			t.Fatalf("padding column written in row %d", y)
		}
	}
	f.Reset()
	if f.CountLive() != 0 {
		t.Fatal("Reset left live cells")
	}
}

func TestMaskTable(t *testing.T) {
	all := ^uint64(0)
	tests := []struct {
		name         string
		width, lanes int
		start        int
		masks        []uint64
	}{
		{"empty", 0, 4, 1, []uint64{0, 0}},
		{"narrow", 5, 1, 1, []uint64{0, all << 59, 0}},
		{"one word", 64, 2, 2, []uint64{0, all, 0, 0}},
		{"straddle", 100, 4, 2, []uint64{0, all, all << 28, 0, 0, 0}},
		{"two words", 128, 1, 3, []uint64{0, all, all, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newMaskTable(newGeometry(tc.width, 1, tc.lanes))
			if m.start != tc.start {
				t.Fatalf("start=%d, want %d", m.start, tc.start)
			}
			if len(m.masks) != len(tc.masks) {
				t.Fatalf("len=%d, want %d", len(m.masks), len(tc.masks))
			}
			for i := range tc.masks {
				if m.masks[i] != tc.masks[i] {
					t.Fatalf("mask[%d]=%016x, want %016x", i, m.masks[i], tc.masks[i])
				}
			}
		})
	}
}

func TestMaskNeededForChunkContainingPartialColumn(t *testing.T) {
	// width 100 with 4 lanes: the first chunk holds the straddling column 2.
	m := newMaskTable(newGeometry(100, 1, 4))
	if !m.needed(1, 4) {
		t.Fatal("chunk covering a straddling column must be masked")
	}
	full := newMaskTable(newGeometry(256, 1, 4))
	if full.needed(1, 4) {
		t.Fatal("chunk of full columns should skip masking")
	}
}
