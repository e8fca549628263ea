package util

import (
	"strconv"
	"time"
)

// compactDate is the YYYYMMDD layout used by the regulatory upstream.
const compactDate = "20060102"

// ParseTime tries RFC3339, RFC3339Nano, compact YYYYMMDD, and unix seconds.
// Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(compactDate, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}

// CompactDate formats t as YYYYMMDD.
func CompactDate(t time.Time) string {
	return t.Format(compactDate)
}

// LookbackDate returns the compact date daysBack days before now.
func LookbackDate(now time.Time, daysBack int) string {
	return CompactDate(now.AddDate(0, 0, -daysBack))
}
