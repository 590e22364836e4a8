package classifier

import (
	"sort"
	"time"

	"fixtures-service/internal/domain"
)

// MaxGameweek is the last round of a standard 38-round season; assignments
// are clamped into [1, MaxGameweek].
const MaxGameweek = 38

// GameweekFor maps a match date to an ordinal round relative to the season
// start: floor(whole days / 7) + 1, clamped to [1, MaxGameweek]. League
// scheduling is irregular, so this is a calendar approximation rather than
// an authoritative schedule lookup.
func GameweekFor(matchDate, seasonStart time.Time) int {
	week := daysBetween(seasonStart, matchDate)/7 + 1
	if week < 1 {
		return 1
	}
	if week > MaxGameweek {
		return MaxGameweek
	}
	return week
}

// daysBetween counts whole calendar days from a to b, ignoring clock time.
// Both are normalized to UTC midnight so DST shifts cannot skew the count.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// BuildWeeks buckets fixtures by gameweek, each bucket ordered by ascending
// kickoff with input order preserved on ties.
func BuildWeeks(fixtures []domain.Fixture) map[int][]domain.Fixture {
	ordered := make([]domain.Fixture, len(fixtures))
	copy(ordered, fixtures)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].KickoffAt.Before(ordered[j].KickoffAt)
	})

	weeks := make(map[int][]domain.Fixture)
	for _, f := range ordered {
		weeks[f.Gameweek] = append(weeks[f.Gameweek], f)
	}
	return weeks
}

// CurrentWeek returns the lowest-numbered gameweek that has fixtures and is
// not yet complete (every fixture terminal). When all populated weeks are
// complete, or none exist, it falls back to week 1.
func CurrentWeek(weeks map[int][]domain.Fixture) int {
	for week := 1; week <= MaxGameweek; week++ {
		fixtures := weeks[week]
		if len(fixtures) == 0 {
			continue
		}
		complete := true
		for _, f := range fixtures {
			if !f.Status.Terminal() {
				complete = false
				break
			}
		}
		if !complete {
			return week
		}
	}
	return 1
}
