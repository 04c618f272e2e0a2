//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

// Without ebiten there is no window to draw into; point at the tagged build.
func main() {
	fmt.Fprintln(os.Stderr, "ca: the packlife viewer is only built with -tags ebiten")
	fmt.Fprintln(os.Stderr, "usage: go run -tags ebiten ./cmd/ca [-sim packed|life] [-w 320] [-h 200] [-lanes 0|1|2|4|8] [-workers N] [-scale 3] [-tps 30] [-seed 42] [-density 0.3]")
	os.Exit(2)
}
