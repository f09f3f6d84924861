package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	clockPattern   = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)
	leadingNumeric = regexp.MustCompile(`(\d+)`)
)

// ValidClockTime reports whether s is a valid HH:MM clock time.
func ValidClockTime(s string) bool {
	return clockPattern.MatchString(s)
}

// ClockToMinutes converts an HH:MM string to minutes since midnight.
func ClockToMinutes(s string) (int, error) {
	if !clockPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m, nil
}

// MinutesToClock converts minutes since midnight back to HH:MM.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseRequiredMinutes extracts the minimum number of minutes from a
// time-required label like "30 minutes", "10-15 minutes" or "1 hour".
// Returns 0 when no number is present.
func ParseRequiredMinutes(label string) int {
	first := label
	if i := strings.Index(label, "-"); i > 0 {
		first = label[:i]
	}
	match := leadingNumeric.FindString(first)
	if match == "" {
		return 0
	}
	n, _ := strconv.Atoi(match)
	if strings.Contains(strings.ToLower(label), "hour") {
		return n * 60
	}
	return n
}
