//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"

	"packlife/internal/app"
	"packlife/internal/core"
	_ "packlife/internal/sims/life"
	"packlife/internal/sims/packed"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Engines()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.EngineNames())
	}

	engine := factory(cfg.EngineConfig())
	if c, ok := engine.(io.Closer); ok {
		defer c.Close()
	}
	if pe, ok := engine.(*packed.Engine); ok {
		if p := pe.Probe(); p.Fallback {
			log.Printf("packed: running scalar lanes: %s", p.Reason)
		}
		st := pe.Stats()
		log.Printf("packed: %d lanes, %d workers, %d word columns, %d bytes", st.VectorWidth, st.Workers, st.WordColumns, st.MemoryBytes)
	}

	game := app.New(engine, cfg.Scale, cfg.Seed, cfg.Density)
	game.Reset(cfg.Seed)
	size := engine.Size()

	ebiten.SetWindowTitle("packlife: " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
