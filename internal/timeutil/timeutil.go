package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClockLayout defines the kickoff time format (HH:MM, 24h).
const ClockLayout = "15:04"

// twoDigitYearPivot splits two-digit years between the 1900s and the 2000s.
// Values below the pivot expand to 20YY, values at or above it to 19YY.
// This is a calendar convention, not a tunable.
const twoDigitYearPivot = 50

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ExpandYear converts a two-digit year to a four-digit year using the fixed
// pivot rule: 25 -> 2025, 99 -> 1999, 49 -> 2049, 50 -> 1950.
func ExpandYear(yy int) int {
	if yy < twoDigitYearPivot {
		return 2000 + yy
	}
	return 1900 + yy
}

// ParseMatchDate parses a DD/MM/YY source date into a calendar date at
// midnight local time. Four-digit years are accepted as-is since newer
// season files carry DD/MM/YYYY. Malformed or impossible dates return an
// error so the record can be excluded.
func ParseMatchDate(value string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("timeutil: malformed match date %q", value)
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: bad day in %q", value)
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: bad month in %q", value)
	}
	yearRaw := strings.TrimSpace(parts[2])
	year, err := strconv.Atoi(yearRaw)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: bad year in %q", value)
	}
	if len(yearRaw) <= 2 {
		year = ExpandYear(year)
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("timeutil: impossible match date %q", value)
	}

	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes overflow (e.g. 31/02 becomes 03/03); reject those.
	if parsed.Day() != day || parsed.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("timeutil: impossible match date %q", value)
	}
	return parsed, nil
}

// Kickoff combines a match date with an optional HH:MM kickoff time.
// An absent or unparseable time leaves the kickoff at midnight.
func Kickoff(date time.Time, clock string) time.Time {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return date
	}
	parsed, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}
