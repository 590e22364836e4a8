package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-08-16")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2025-08-16" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestExpandYearPivot(t *testing.T) {
	cases := []struct {
		yy   int
		want int
	}{
		{25, 2025},
		{99, 1999},
		{49, 2049},
		{50, 1950},
		{0, 2000},
	}

	for _, tc := range cases {
		if got := ExpandYear(tc.yy); got != tc.want {
			t.Fatalf("ExpandYear(%d): expected %d got %d", tc.yy, tc.want, got)
		}
	}
}

func TestParseMatchDate(t *testing.T) {
	parsed, err := ParseMatchDate("16/08/25")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.August || parsed.Day() != 16 {
		t.Fatalf("unexpected date %v", parsed)
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Fatalf("expected midnight kickoff baseline, got %v", parsed)
	}
}

func TestParseMatchDateFourDigitYear(t *testing.T) {
	parsed, err := ParseMatchDate("16/08/2025")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if parsed.Year() != 2025 {
		t.Fatalf("expected year 2025, got %d", parsed.Year())
	}
}

func TestParseMatchDateRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"16/08",
		"16-08-25",
		"aa/08/25",
		"16/bb/25",
		"16/08/cc",
		"32/01/25",
		"01/13/25",
		"31/02/25",
		"0/08/25",
	}

	for _, value := range cases {
		if _, err := ParseMatchDate(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestKickoff(t *testing.T) {
	date := time.Date(2025, 8, 16, 0, 0, 0, 0, time.Local)

	kickoff := Kickoff(date, "15:00")
	if kickoff.Hour() != 15 || kickoff.Minute() != 0 {
		t.Fatalf("expected 15:00 kickoff, got %v", kickoff)
	}

	if got := Kickoff(date, ""); !got.Equal(date) {
		t.Fatalf("expected midnight for absent time, got %v", got)
	}
	if got := Kickoff(date, "not-a-time"); !got.Equal(date) {
		t.Fatalf("expected midnight for bad time, got %v", got)
	}
}
