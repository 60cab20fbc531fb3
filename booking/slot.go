// Package booking computes appointment time slots and overlap checks.
package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidTime     = errors.New("invalid time, want 24-hour HH:MM")
	ErrInvalidDuration = errors.New("duration must be positive")
	// ErrCrossesMidnight rejects slots whose end would pass 23:59. The
	// salon does not take appointments across midnight, so there is no
	// day-rollover arithmetic.
	ErrCrossesMidnight = errors.New("appointment would run past midnight")
)

const minutesPerDay = 24 * 60

// ParseClock converts a 24-hour "HH:MM" string to minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, ErrInvalidTime
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrInvalidTime
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidTime
	}
	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ResolveEndTime returns the end time of a slot starting at startTime and
// lasting durationMinutes.
func ResolveEndTime(startTime string, durationMinutes int) (string, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return "", err
	}
	if durationMinutes <= 0 {
		return "", ErrInvalidDuration
	}
	end := start + durationMinutes
	if end > minutesPerDay {
		return "", ErrCrossesMidnight
	}
	return FormatClock(end), nil
}

// Overlaps reports whether two half-open slots [aStart, aEnd) and
// [bStart, bEnd) share any minute. Times must be valid "HH:MM".
func Overlaps(aStart, aEnd, bStart, bEnd string) (bool, error) {
	as, err := ParseClock(aStart)
	if err != nil {
		return false, err
	}
	bs, err := ParseClock(bStart)
	if err != nil {
		return false, err
	}
	ae, err := parseEnd(aEnd)
	if err != nil {
		return false, err
	}
	be, err := parseEnd(bEnd)
	if err != nil {
		return false, err
	}
	return as < be && bs < ae, nil
}

// parseEnd accepts "24:00" in addition to regular clock times, since a
// slot may end exactly at midnight.
func parseEnd(clock string) (int, error) {
	if clock == "24:00" {
		return minutesPerDay, nil
	}
	return ParseClock(clock)
}
