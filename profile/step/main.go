// Profiling:
// go build ./profile/step
// ./step
// go tool pprof -http=":8000" ./step cpu.pprof

package main

import (
	"fmt"

	"github.com/pkg/profile"

	"packlife/internal/core"
	"packlife/internal/sims/packed"
)

func main() {
	size := 2048
	generations := 500
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	live := run(size, generations)
	p.Stop()
	fmt.Printf("%d generations on %dx%d, %d live cells\n", generations, size, size, live)
}

func run(size, generations int) int {
	grid := core.NewGrid(size, size)
	core.FillRandom(grid, 1, 0.3)

	e := packed.New(size, size)
	defer e.Close()
	e.LoadFrom(grid)
	e.RunSteps(generations)
	return e.CountLive()
}
