// Package clock parses and formats the clock-time and duration strings
// used by tracker entries. Parsing fails soft: any malformed or empty
// value is worth zero minutes, never an error.
package clock

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClockTime converts an "HH:MM" 24-hour clock string to minutes
// since midnight. Empty strings, strings without a separator, and
// non-numeric components all parse to 0.
func ParseClockTime(s string) int {
	if s == "" {
		return 0
	}

	hourStr, minStr, found := strings.Cut(s, ":")
	if !found {
		return 0
	}

	hours, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0
	}

	minutes, err := strconv.Atoi(minStr)
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}

// FormatDuration formats a minute count as "H:MM". Hours are unpadded
// and unbounded, so summed durations past 24h render as "25:15" etc.
func FormatDuration(totalMinutes int) string {
	return fmt.Sprintf("%d:%02d", totalMinutes/60, totalMinutes%60)
}
