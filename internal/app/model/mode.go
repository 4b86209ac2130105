package model

import (
	"fmt"
	"strings"
)

// OutputMode selects how a batch run persists its transcriptions.
type OutputMode int

const (
	// PerItem writes one sidecar text file next to every transcribed input.
	PerItem OutputMode = iota
	// Combined writes a single Kaldi-style manifest with one "<identity> <text>" line per input.
	Combined
)

func (m OutputMode) String() string {
	switch m {
	case PerItem:
		return "per-item"
	case Combined:
		return "combined"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// ParseOutputMode accepts "per-item" / "simple" and "combined" / "kaldi".
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per-item", "peritem", "simple":
		return PerItem, nil
	case "combined", "kaldi":
		return Combined, nil
	default:
		return 0, fmt.Errorf("unknown output mode %q (supported: per-item, combined)", s)
	}
}

// Strategy selects how the jobs of a batch are driven through the transcriber.
type Strategy int

const (
	Sequential Strategy = iota
	Concurrent
)

func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Concurrent:
		return "concurrent"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "sequential" and "concurrent" / "parallel".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential", "sequentially":
		return Sequential, nil
	case "concurrent", "parallel":
		return Concurrent, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (supported: sequential, concurrent)", s)
	}
}
