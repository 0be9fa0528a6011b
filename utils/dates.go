// utils/dates.go
package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseClock converts an "HH:MM" 24h string to minutes since midnight.
func ParseClock(s string) (int, error) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return hour*60 + minute, nil
}

// ClockAt places minutes-since-midnight on the given day.
func ClockAt(day time.Time, minutes int) time.Time {
	return BeginningOfDay(day).Add(time.Duration(minutes) * time.Minute)
}
