package core_test

import (
	"slices"
	"testing"

	"packlife/internal/core"
	_ "packlife/internal/sims/life"
	_ "packlife/internal/sims/packed"
)

func TestRegistry(t *testing.T) {
	names := core.EngineNames()
	if !slices.Equal(names, []string{"life", "packed"}) {
		t.Fatalf("registered engines = %v", names)
	}
	core.Register("", nil)
	if len(core.Engines()) != 2 {
		t.Fatal("empty registration should be ignored")
	}
}

func TestEnginesAgreeThroughRegistry(t *testing.T) {
	cfg := map[string]string{"w": "40", "h": "30", "workers": "2"}
	grid := core.NewGrid(40, 30)
	core.FillRandom(grid, 77, 0.35)

	var snaps []string
	for _, name := range core.EngineNames() {
		e := core.Engines()[name](cfg)
		e.LoadFrom(grid)
		e.RunSteps(10)
		snaps = append(snaps, core.Snapshot(e).String())
	}
	if snaps[0] != snaps[1] {
		t.Fatalf("engines diverged:\nlife:\n%s\npacked:\n%s", snaps[0], snaps[1])
	}
}
