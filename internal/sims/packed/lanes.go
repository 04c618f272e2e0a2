package packed

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// LaneWidth is the number of 64-bit words processed per vector operation.
type LaneWidth int

const (
	// LanesAuto selects the widest width the host supports, capped at Lanes4.
	LanesAuto LaneWidth = 0
	// Lanes1 is the scalar width; every host supports it.
	Lanes1 LaneWidth = 1
	// Lanes2 matches 128-bit registers (SSE2, NEON).
	Lanes2 LaneWidth = 2
	// Lanes4 matches 256-bit registers (AVX2).
	Lanes4 LaneWidth = 4
	// Lanes8 matches 512-bit registers (AVX-512).
	Lanes8 LaneWidth = 8
)

// String returns a human-readable name for the width.
func (w LaneWidth) String() string {
	switch w {
	case LanesAuto:
		return "auto"
	case Lanes1:
		return "scalar"
	case Lanes2:
		return "128-bit"
	case Lanes4:
		return "256-bit"
	case Lanes8:
		return "512-bit"
	default:
		return fmt.Sprintf("unsupported(%d)", int(w))
	}
}

// Supported reports whether the engine can be built with this width.
func (w LaneWidth) Supported() bool {
	switch w {
	case Lanes1, Lanes2, Lanes4, Lanes8:
		return true
	}
	return false
}

// DetectLanes returns the widest lane count backed by the host's vector
// registers.
func DetectLanes() LaneWidth {
	switch {
	case cpu.X86.HasAVX512F:
		return Lanes8
	case cpu.X86.HasAVX2:
		return Lanes4
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return Lanes2
	}
	return Lanes1
}

// LaneProbe is the outcome of choosing a lane width at construction.
type LaneProbe struct {
	Requested LaneWidth
	Detected  LaneWidth
	Lanes     LaneWidth
	// Fallback is set when the requested width could not be honoured and
	// the engine runs scalar instead.
	Fallback bool
	Reason   string
}

// ResolveLanes picks the width an engine will use. Widths that are not
// supported, or wider than the host detected, fall back to Lanes1.
func ResolveLanes(requested, detected LaneWidth) LaneProbe {
	p := LaneProbe{Requested: requested, Detected: detected}
	if !detected.Supported() {
		p.Detected = Lanes1
	}
	switch {
	case requested == LanesAuto:
		p.Lanes = p.Detected
		if p.Lanes > Lanes4 {
			p.Lanes = Lanes4
		}
	case !requested.Supported():
		p.Lanes, p.Fallback = Lanes1, true
		p.Reason = fmt.Sprintf("lane width %d is not one of 1, 2, 4, 8", int(requested))
	case requested > p.Detected:
		p.Lanes, p.Fallback = Lanes1, true
		p.Reason = fmt.Sprintf("host supports %s vectors, %s requested", p.Detected, requested)
	default:
		p.Lanes = requested
	}
	return p
}
