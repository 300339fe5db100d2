package indexer

import (
	"os"
	"strconv"
	"strings"

	"fs-indexer/internal/filesystem"
	"fs-indexer/internal/logging"
	"fs-indexer/internal/workers"
)

// autoWorkerLimit caps the worker count chosen for INDEX_WORKERS=auto
const autoWorkerLimit = 64

// WalkerConfig configures the recursive walker
type WalkerConfig struct {
	// MaxConcurrency is the maximum number of walk goroutines (0 = unbounded)
	MaxConcurrency int
}

// DefaultWalkerConfig returns the walker defaults, honoring INDEX_WORKERS
func DefaultWalkerConfig() WalkerConfig {
	limit, err := ParseConcurrency(os.Getenv("INDEX_WORKERS"))
	if err != nil {
		logging.Warn("Invalid INDEX_WORKERS value: %v, using unbounded fan-out", err)
		limit = 0
	}
	return WalkerConfig{MaxConcurrency: limit}
}

// ParseConcurrency parses a concurrency setting. An empty string or "0"
// means unbounded, "auto" picks an I/O-bound worker count from GOMAXPROCS,
// and a positive integer is used as is.
func ParseConcurrency(value string) (int, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", "0", "unbounded":
		return 0, nil
	case "auto":
		return workers.ForIO(autoWorkerLimit), nil
	}

	limit, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if limit < 0 {
		return 0, strconv.ErrRange
	}
	return limit, nil
}

// Config configures an Indexer
type Config struct {
	Walker WalkerConfig
	// Provider defaults to the host filesystem
	Provider filesystem.Provider
	// Logger defaults to the package-level logger
	Logger logging.Logger
}

// DefaultConfig returns a Config for the host filesystem
func DefaultConfig() Config {
	return Config{
		Walker:   DefaultWalkerConfig(),
		Provider: filesystem.NewLocal(filesystem.DefaultRetryConfig()),
		Logger:   logging.Default(),
	}
}
