package render

import (
	"image/color"
	"testing"

	"packlife/internal/core"
)

type gridSource struct{ *core.Grid }

func (g gridSource) Size() core.Size { return core.Size{W: g.W, H: g.H} }

func TestFillRGBA(t *testing.T) {
	g := core.MustParsePattern(
		"#.",
		".#",
	)
	buf := make([]byte, 4*4)
	FillRGBA(buf, gridSource{g}, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	want := []byte{
		255, 255, 255, 255, 10, 20, 30, 255,
		10, 20, 30, 255, 255, 255, 255, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}
}
