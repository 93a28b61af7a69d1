// Package limiter selects a window of top-level records.
package limiter

import (
	"fmt"
)

// Config holds the record-limiting parameters.
type Config struct {
	Limit  int // Show only this many records (0 = unlimited)
	Offset int // Skip the first N records (0 = no skip)
	Tail   int // Show only the last N records (0 = disabled); mutually exclusive with Limit
}

// Validate checks for conflicting flag combinations and returns an error if invalid.
// Rules:
// - Limit and Tail are mutually exclusive
// - If Tail is set, Offset is ignored
// - All numeric values must be non-negative
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", c.Limit)
	}
	if c.Offset < 0 {
		return fmt.Errorf("--offset must be non-negative, got %d", c.Offset)
	}
	if c.Tail < 0 {
		return fmt.Errorf("--tail must be non-negative, got %d", c.Tail)
	}
	if c.Limit > 0 && c.Tail > 0 {
		return fmt.Errorf("--limit and --tail are mutually exclusive")
	}
	return nil
}

// IsActive returns true if any limiting is configured.
func (c Config) IsActive() bool {
	return c.Limit > 0 || c.Offset > 0 || c.Tail > 0
}

// Bounds returns the [start, end) window for a sequence of length n.
func (c Config) Bounds(n int) (start, end int) {
	if c.Tail > 0 {
		start = n - c.Tail
		if start < 0 {
			start = 0
		}
		return start, n
	}

	start = c.Offset
	if start > n {
		start = n
	}
	end = n
	if c.Limit > 0 && c.Limit < n-start {
		end = start + c.Limit
	}
	return start, end
}

// Window slices items to the configured window and returns the index of the
// first kept item in the original sequence. Callers use that index as the
// numbering offset so row numbers keep their position in the full set.
func Window[T any](c Config, items []T) ([]T, int) {
	if !c.IsActive() {
		return items, 0
	}
	start, end := c.Bounds(len(items))
	return items[start:end], start
}
