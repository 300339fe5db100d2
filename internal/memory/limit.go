package memory

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"strconv"

	"fs-indexer/internal/logging"
)

// DefaultMemoryRatio is the share of the container limit given to the Go
// heap. The indexer runs no subprocesses and no CGO, so only goroutine
// stacks and OS buffers need headroom.
const DefaultMemoryRatio = 0.90

// Limit sources
const (
	SourceGoMemLimit  = "GOMEMLIMIT"
	SourceMemoryLimit = "MEMORY_LIMIT"
	SourceNone        = "none"
)

// Limit describes the configured runtime memory limit
type Limit struct {
	// Source is one of SourceGoMemLimit, SourceMemoryLimit or SourceNone
	Source string

	// ContainerLimit is MEMORY_LIMIT in bytes (0 if not set)
	ContainerLimit int64

	// GoMemLimit is the runtime soft limit in bytes (0 if not set)
	GoMemLimit int64

	// Ratio applied to ContainerLimit (0 if not applicable)
	Ratio float64
}

// Configured reports whether a runtime memory limit is in effect
func (l Limit) Configured() bool {
	return l.GoMemLimit > 0
}

// ConfigureFromEnv derives the runtime memory limit from the environment
// and applies it. Call it early in main, before large allocations.
func ConfigureFromEnv() Limit {
	limit, err := resolve(os.Getenv)
	if err != nil {
		logging.Warn("Memory limit not configured: %v", err)
	}

	switch limit.Source {
	case SourceGoMemLimit:
		// The runtime already parsed GOMEMLIMIT; read it back for reporting
		if current := debug.SetMemoryLimit(-1); current > 0 && current < math.MaxInt64 {
			limit.GoMemLimit = current
		}
		logging.Info("GOMEMLIMIT set via environment: %s", formatBytes(limit.GoMemLimit))
	case SourceMemoryLimit:
		debug.SetMemoryLimit(limit.GoMemLimit)
		logging.Info("Configured GOMEMLIMIT: %s (%.0f%% of %s container limit)",
			formatBytes(limit.GoMemLimit), limit.Ratio*100, formatBytes(limit.ContainerLimit))
	default:
		logging.Debug("MEMORY_LIMIT not set, GOMEMLIMIT will not be configured automatically")
	}

	return limit
}

// resolve computes the limit without touching the runtime. An invalid
// MEMORY_RATIO falls back to the default; an invalid MEMORY_LIMIT leaves
// the limit unset and is returned as an error.
func resolve(getenv func(string) string) (Limit, error) {
	if getenv("GOMEMLIMIT") != "" {
		return Limit{Source: SourceGoMemLimit}, nil
	}

	raw := getenv("MEMORY_LIMIT")
	if raw == "" {
		return Limit{Source: SourceNone}, nil
	}

	containerLimit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || containerLimit <= 0 {
		return Limit{Source: SourceNone}, fmt.Errorf("invalid MEMORY_LIMIT %q", raw)
	}

	ratio := DefaultMemoryRatio
	if rawRatio := getenv("MEMORY_RATIO"); rawRatio != "" {
		parsed, err := strconv.ParseFloat(rawRatio, 64)
		switch {
		case err != nil:
			logging.Warn("Failed to parse MEMORY_RATIO %q: %v, using default %.2f", rawRatio, err, DefaultMemoryRatio)
		case parsed <= 0 || parsed > 1:
			logging.Warn("MEMORY_RATIO %q out of range (0.0-1.0), using default %.2f", rawRatio, DefaultMemoryRatio)
		default:
			ratio = parsed
		}
	}

	return Limit{
		Source:         SourceMemoryLimit,
		ContainerLimit: containerLimit,
		GoMemLimit:     int64(float64(containerLimit) * ratio),
		Ratio:          ratio,
	}, nil
}

// formatBytes formats bytes into a human-readable string
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return strconv.FormatInt(b, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return strconv.FormatFloat(float64(b)/float64(div), 'f', 1, 64) + " " + string("KMGTPE"[exp]) + "iB"
}
