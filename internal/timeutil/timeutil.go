// Package timeutil provides the deterministic time-truncation and
// fixed-form parsing helpers the simulation kernel relies on for tick
// alignment and historical-data file naming.
//
// All times are UTC, and truncation is exact (no timezone-dependent
// rounding).
package timeutil

import (
	"fmt"
	"time"
)

// TruncSecond zeroes sub-second fields.
func TruncSecond(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// TruncMinute zeroes sub-minute fields.
func TruncMinute(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// TruncHour zeroes sub-hour fields.
func TruncHour(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
}

// TruncDay zeroes sub-day fields.
func TruncDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TruncMonth sets day to 1 and zeroes sub-day fields.
func TruncMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// TruncYear sets month and day to 1 and zeroes sub-day fields.
func TruncYear(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
}

// NextMonth advances a month-truncated time by exactly one calendar month.
func NextMonth(t time.Time) time.Time {
	return TruncMonth(t).AddDate(0, 1, 0)
}

// ParseFixed parses one of the fixed forms YYYY, YYYYMM, YYYYMMDD,
// YYYYMMDDHH, YYYYMMDDHHMM, YYYYMMDDHHMMSS, all interpreted in UTC.
func ParseFixed(s string) (time.Time, error) {
	var layout string
	switch len(s) {
	case 4:
		layout = "2006"
	case 6:
		layout = "200601"
	case 8:
		layout = "20060102"
	case 10:
		layout = "2006010215"
	case 12:
		layout = "200601021504"
	case 14:
		layout = "20060102150405"
	default:
		return time.Time{}, fmt.Errorf("timeutil: parse fixed form %q: unsupported length %d", s, len(s))
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: parse fixed form %q: %w", s, err)
	}
	return t.UTC(), nil
}

// YYYYMM formats a month-truncated time as the 6-digit form used to name
// monthly archive files (e.g. "202401").
func YYYYMM(t time.Time) string {
	return t.UTC().Format("200601")
}
