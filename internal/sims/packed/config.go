package packed

import "strconv"

// Config controls the packed engine's dimensions and parallelism.
type Config struct {
	Width  int
	Height int

	// Lanes selects the vector width; LanesAuto probes the host.
	Lanes LaneWidth
	// Workers sizes the pool; 0 uses DefaultWorkers and 1 runs sequentially.
	Workers int
	// Executor overrides Workers when set. The engine does not close an
	// injected executor.
	Executor Executor
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["lanes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Lanes = LaneWidth(parsed)
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	return c
}
