// Package duration computes elapsed time between two clock times.
package duration

import (
	"math"

	"github.com/vollan/takt/internal/clock"
)

// minutesPerDay is added to the end time when an interval appears to
// cross midnight.
const minutesPerDay = 24 * 60

// quantum is the rounding increment used when quantization is enabled.
const quantum = 15

// Elapsed returns the minutes between two "HH:MM" clock times. An end
// time strictly before the start time is taken to mean the interval
// crossed midnight, never that the input is invalid. With quantize set,
// the result is rounded half-up to the nearest quarter hour.
func Elapsed(start, end string, quantize bool) int {
	startMin := clock.ParseClockTime(start)
	endMin := clock.ParseClockTime(end)

	if endMin < startMin {
		endMin += minutesPerDay
	}

	minutes := endMin - startMin
	if minutes < 0 {
		minutes = 0
	}

	if quantize {
		minutes = int(math.Round(float64(minutes)/quantum)) * quantum
	}

	return minutes
}
