package utils

import "time"

// Sleep pauses the calling goroutine for ns nanoseconds.
func Sleep(ns int64) {
	time.Sleep(time.Duration(ns))
}

// TimestampMicros returns the wall clock as microseconds since the Unix
// epoch.
func TimestampMicros() float64 {
	return float64(time.Now().UnixNano()) / 1e3
}
