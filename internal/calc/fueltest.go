package calc

import (
	"math"

	"fuel-console/internal/timeutil"
)

// TestDuration is the whole seconds between a fuel test's start and stop.
// Unreadable or reversed times give 0.
func TestDuration(start, stop string) int64 {
	from, ok := timeutil.ParseTimestamp(start)
	if !ok {
		return 0
	}
	to, ok := timeutil.ParseTimestamp(stop)
	if !ok || to.Before(from) {
		return 0
	}
	return int64(math.Floor(to.Sub(from).Seconds()))
}
