package reminder

import (
	"strconv"
	"strings"
	"time"
)

// fallbackMinutes is the documented offset applied when a stored reminder
// time cannot be parsed. The store accepts arbitrary strings, so this is a
// product behavior rather than an error path.
const fallbackMinutes = 60

// ParseOffset converts a human-readable offset string of the form
// "<integer> <unit>" into minutes. Supported units: second(s), minute(s),
// hour(s), day(s). Seconds truncate toward zero minutes. The second return
// reports whether the fallback was applied so callers can count and log the
// offending raw value.
func ParseOffset(raw string) (int, bool) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return fallbackMinutes, true
	}

	value, err := strconv.Atoi(fields[0])
	if err != nil {
		return fallbackMinutes, true
	}

	switch strings.ToLower(fields[1]) {
	case "day", "days":
		return value * 24 * 60, false
	case "hour", "hours":
		return value * 60, false
	case "minute", "minutes":
		return value, false
	case "second", "seconds":
		return value / 60, false
	default:
		return fallbackMinutes, true
	}
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
