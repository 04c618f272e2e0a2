//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from an engine's cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
	return gp
}

// Blit uploads the cells of src into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, src CellSource, on, off color.Color, scale int) {
	if s := src.Size(); s.W != gp.w || s.H != gp.h || len(gp.buf) == 0 {
		return
	}
	FillRGBA(gp.buf, src, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
