package utils

import (
	"fmt"
	"time"
)

// Client sites are all in India; attendance days roll over on IST.
var ISTZone = time.FixedZone("IST", 5*3600+1800)

func ISTNow() time.Time {
	return time.Now().In(ISTZone)
}

// Today returns the current attendance day as yyyy-MM-dd in site-local time.
func Today() string {
	return ISTNow().Format("2006-01-02")
}

func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	// Try standard RFC3339 format (ISO 8601)
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	// Try with nanoseconds (e.g. 2025-10-13T09:30:00.123Z)
	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	// Try fallback common formats
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, time.UTC); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}
