package app

import (
	"flag"
	"testing"

	"packlife/internal/sims/packed"
)

func TestBindAndEngineConfig(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "96", "-h", "40", "-lanes", "2", "-workers", "1"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pc := packed.FromMap(cfg.EngineConfig())
	if pc.Width != 96 || pc.Height != 40 || pc.Lanes != packed.Lanes2 || pc.Workers != 1 {
		t.Fatalf("unexpected engine config %+v", pc)
	}
	if cfg.Sim != "packed" {
		t.Fatalf("default sim = %q", cfg.Sim)
	}
}
