//go:build ebiten

package ui

import (
	"fmt"

	"packlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a status line on top of the grid. H toggles it.
type Overlay struct {
	engine core.Engine
	hidden bool
	info   core.EngineInfo
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(engine core.Engine) *Overlay {
	return &Overlay{engine: engine, info: engine.Info()}
}

// Update processes the overlay's key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw prints the status line.
func (o *Overlay) Draw(screen *ebiten.Image, generation int, paused bool) {
	if o.hidden {
		return
	}
	state := ""
	if paused {
		state = " [paused]"
	}
	msg := fmt.Sprintf("%s gen %d live %d%s\n%s",
		o.info.Name, generation, o.engine.CountLive(), state, o.info.Description)
	ebitenutil.DebugPrint(screen, msg)
}
