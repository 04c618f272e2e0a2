package render

import (
	"image/color"

	"packlife/internal/core"
)

// CellSource is anything whose cells can be painted.
type CellSource interface {
	Size() core.Size
	Cell(row, col int) bool
}

// FillRGBA converts the cells of src into RGBA pixels in buf, which must hold
// at least 4*W*H bytes.
func FillRGBA(buf []byte, src CellSource, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	s := src.Size()
	for row := 0; row < s.H; row++ {
		for col := 0; col < s.W; col++ {
			base := (row*s.W + col) * 4
			if src.Cell(row, col) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}
