package duel

import "log/slog"

// MaxWorkers bounds Config.Workers.
const MaxWorkers = 1024

// Config controls how an Engine runs its stages.
//
// The zero value is valid and runs every stage sequentially without logging.
// Use DefaultConfig for the recommended settings.
type Config struct {
	// Workers is the number of goroutines a stage step may fan out to.
	// Values 0 and 1 run every step on the calling goroutine.
	Workers int

	// ParallelThreshold is the minimum length of the combined sequence
	// (pattern + separator + text) for which steps fan out. Short inputs are
	// cheaper to scan than to split.
	ParallelThreshold int

	// Logger receives one debug record per stage. Nil disables logging.
	Logger *slog.Logger

	// Observer receives a StageReport after each stage. Nil disables reports.
	// It is called from the goroutine running FindAll and must be safe for
	// concurrent use if the Engine is shared.
	Observer Observer
}

// DefaultConfig returns a sequential configuration with a 64 KiB fan-out
// threshold, used once Workers is raised.
func DefaultConfig() Config {
	return Config{
		Workers:           1,
		ParallelThreshold: 64 * 1024,
	}
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return &ConfigError{
			Field:   "Workers",
			Message: "must be between 0 and 1024",
		}
	}
	if c.ParallelThreshold < 0 {
		return &ConfigError{
			Field:   "ParallelThreshold",
			Message: "must be non-negative",
		}
	}
	return nil
}

// workersFor returns the fan-out to use for a combined sequence of length n.
func (c Config) workersFor(n int) int {
	if c.Workers <= 1 || n < c.ParallelThreshold {
		return 1
	}
	return c.Workers
}
