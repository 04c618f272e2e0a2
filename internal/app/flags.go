package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Lanes   int
	Workers int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "packed", Width: 320, Height: 200, Scale: 3, TPS: 30, Seed: 42, Density: 0.3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "engine to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Lanes, "lanes", c.Lanes, "vector lanes for the packed engine (0 probes the host)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines for the packed engine (0 uses every CPU)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial state")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after a reset")
}

// EngineConfig converts the flags into the map understood by engine factories.
func (c *Config) EngineConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"lanes":   strconv.Itoa(c.Lanes),
		"workers": strconv.Itoa(c.Workers),
	}
}
