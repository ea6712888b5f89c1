// internal/timefmt.go
// --------------------
// This internal package provides helper functions for working with the
// Service's time strings. The financial-data token endpoint reports expiry
// as a "YYYY-MM-DD hh:mm:ss" wall-clock string in the Service's local zone
// rather than a UNIX timestamp or RFC 3339.
package internal

import (
	"fmt"
	"time"
)

// serviceTimeLayout is the wall-clock layout used by expires_dt.
const serviceTimeLayout = "2006-01-02 15:04:05"

// ParseServiceTime converts a Service wall-clock string into a time.Time
// in the local zone.
func ParseServiceTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(serviceTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid service time %q: %w", value, err)
	}
	return t, nil
}

// IsInFuture reports whether t is strictly after the current time.
func IsInFuture(t time.Time) bool {
	return t.After(time.Now())
}
