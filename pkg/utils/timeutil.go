package utils

import "time"

// NowNanos returns the current wall-clock time in nanoseconds since the Unix
// epoch. Every timestamp in the system uses this single clock and unit.
func NowNanos() int64 {
	return time.Now().UnixNano()
}

// NanosToDate formats a nanosecond timestamp as a UTC date (YYYY-MM-DD).
func NanosToDate(nanos int64) string {
	return time.Unix(0, nanos).UTC().Format("2006-01-02")
}
