package classifier

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"fixtures-service/internal/domain"
)

// seasonInput builds 20 league teams each playing 38 matches (one round of
// ten pairings per week, seven days apart), plus 4 extra teams playing only
// two matches each.
func seasonInput(t *testing.T) []domain.RawMatch {
	t.Helper()

	teams := make([]string, 20)
	for i := range teams {
		teams[i] = fmt.Sprintf("Team %02d", i)
	}

	start := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)
	var matches []domain.RawMatch
	for round := 0; round < 38; round++ {
		date := start.AddDate(0, 0, round*7).Format("02/01/06")
		for pair := 0; pair < 10; pair++ {
			home, away := teams[2*pair], teams[2*pair+1]
			if round%2 == 1 {
				home, away = away, home
			}
			matches = append(matches, domain.RawMatch{
				Date:     date,
				Time:     "15:00",
				HomeTeam: home,
				AwayTeam: away,
			})
		}
	}

	cupDate := start.AddDate(0, 0, 3).Format("02/01/06")
	matches = append(matches,
		domain.RawMatch{Date: cupDate, HomeTeam: "Cup A", AwayTeam: "Cup B"},
		domain.RawMatch{Date: cupDate, HomeTeam: "Cup B", AwayTeam: "Cup A"},
		domain.RawMatch{Date: cupDate, HomeTeam: "Cup C", AwayTeam: "Cup D"},
		domain.RawMatch{Date: cupDate, HomeTeam: "Cup D", AwayTeam: "Cup C"},
	)
	return matches
}

func TestClassifyFullSeason(t *testing.T) {
	c := New(Config{Policy: CountBand{Min: 30, Max: 40}})
	c.now = func() time.Time { return time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC) }

	season, stats, err := c.Classify(seasonInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(season.Teams) != 20 {
		t.Fatalf("expected 20 league teams, got %d", len(season.Teams))
	}
	for _, team := range season.Teams {
		if team == "Cup A" || team == "Cup B" || team == "Cup C" || team == "Cup D" {
			t.Fatalf("cup team %s leaked into league set", team)
		}
	}

	if stats.Classified != 380 {
		t.Fatalf("expected 380 classified fixtures, got %d", stats.Classified)
	}
	if stats.NonLeague != 4 {
		t.Fatalf("expected 4 non-league matches dropped, got %d", stats.NonLeague)
	}

	if len(season.Weeks[1]) != 10 {
		t.Fatalf("expected 10 fixtures in week 1, got %d", len(season.Weeks[1]))
	}
	for _, f := range season.Weeks[1] {
		if f.Date != "16/08/25" {
			t.Fatalf("week 1 fixture has date %s", f.Date)
		}
	}
	// A match exactly seven days after season start lands in week 2.
	for _, f := range season.Weeks[2] {
		if f.Date != "23/08/25" {
			t.Fatalf("week 2 fixture has date %s", f.Date)
		}
	}

	for week, fixtures := range season.Weeks {
		if week < 1 || week > MaxGameweek {
			t.Fatalf("week %d out of range", week)
		}
		for _, f := range fixtures {
			if f.Gameweek != week {
				t.Fatalf("fixture bucketed under %d but assigned %d", week, f.Gameweek)
			}
		}
	}

	// Everything is in the future relative to the injected clock.
	if season.CurrentWeek != 1 {
		t.Fatalf("expected current week 1 pre-season, got %d", season.CurrentWeek)
	}
}

func TestClassifyStatusesUseInjectedClock(t *testing.T) {
	c := New(Config{Policy: CountBand{Min: 1, Max: 10}})
	c.now = func() time.Time { return time.Date(2025, 8, 16, 16, 0, 0, 0, time.Local) }

	season, _, err := c.Classify([]domain.RawMatch{
		{Date: "16/08/25", Time: "15:00", HomeTeam: "A", AwayTeam: "B"},
		{Date: "16/08/25", Time: "10:00", HomeTeam: "B", AwayTeam: "A"},
		{Date: "16/08/25", Time: "20:00", HomeTeam: "A", AwayTeam: "B", HomeGoals: "3", AwayGoals: "1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fixtures := season.Weeks[1]
	if len(fixtures) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(fixtures))
	}
	// Ordered by kickoff: 10:00, 15:00, 20:00.
	if fixtures[0].Status != domain.StatusPostponed {
		t.Fatalf("10:00 fixture: expected postponed, got %s", fixtures[0].Status)
	}
	if fixtures[1].Status != domain.StatusOngoing {
		t.Fatalf("15:00 fixture: expected ongoing, got %s", fixtures[1].Status)
	}
	if fixtures[2].Status != domain.StatusCompleted {
		t.Fatalf("scored future fixture: expected completed, got %s", fixtures[2].Status)
	}
	if fixtures[2].Score != "3-1" {
		t.Fatalf("expected score 3-1, got %q", fixtures[2].Score)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	c := New(Config{})
	if _, _, err := c.Classify(nil); !errors.Is(err, ErrNoMatches) {
		t.Fatalf("expected ErrNoMatches, got %v", err)
	}

	invalid := []domain.RawMatch{
		{HomeTeam: "A", AwayTeam: "B"},
		{Date: "garbage", HomeTeam: "A", AwayTeam: "B"},
	}
	_, stats, err := c.Classify(invalid)
	if !errors.Is(err, ErrNoMatches) {
		t.Fatalf("expected ErrNoMatches, got %v", err)
	}
	if stats.Invalid != 2 {
		t.Fatalf("expected 2 invalid records, got %d", stats.Invalid)
	}
}

func TestClassifyTooFewTeams(t *testing.T) {
	c := New(Config{Policy: CountBand{Min: 100, Max: 200}})
	_, _, err := c.Classify([]domain.RawMatch{
		{Date: "16/08/25", HomeTeam: "A", AwayTeam: "B"},
	})
	if !errors.Is(err, ErrNoTeams) {
		t.Fatalf("expected ErrNoTeams, got %v", err)
	}
}

func TestClassifyNoLeagueFixtures(t *testing.T) {
	// A and B each appear three times but never against each other, so the
	// band accepts only them and every match involves an outsider.
	matches := []domain.RawMatch{
		{Date: "16/08/25", HomeTeam: "A", AwayTeam: "X"},
		{Date: "17/08/25", HomeTeam: "A", AwayTeam: "Y"},
		{Date: "18/08/25", HomeTeam: "A", AwayTeam: "Z"},
		{Date: "16/08/25", HomeTeam: "B", AwayTeam: "X"},
		{Date: "17/08/25", HomeTeam: "B", AwayTeam: "Y"},
		{Date: "18/08/25", HomeTeam: "B", AwayTeam: "Z"},
	}

	c := New(Config{Policy: CountBand{Min: 3, Max: 3}})
	_, stats, err := c.Classify(matches)
	if !errors.Is(err, ErrNoFixtures) {
		t.Fatalf("expected ErrNoFixtures, got %v", err)
	}
	if stats.NonLeague != 6 {
		t.Fatalf("expected 6 non-league drops, got %d", stats.NonLeague)
	}
}

func TestClassifyIdempotentExceptStatus(t *testing.T) {
	c := New(Config{Policy: CountBand{Min: 1, Max: 10}})
	fixed := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	input := []domain.RawMatch{
		{Date: "16/08/25", HomeTeam: "A", AwayTeam: "B"},
		{Date: "23/08/25", HomeTeam: "B", AwayTeam: "A"},
	}

	first, _, err := c.Classify(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := c.Classify(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.CurrentWeek != second.CurrentWeek || len(first.Weeks) != len(second.Weeks) {
		t.Fatal("expected identical classification for identical input and clock")
	}
	for week := range first.Weeks {
		a, b := first.Weeks[week], second.Weeks[week]
		if len(a) != len(b) {
			t.Fatalf("week %d differs between runs", week)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("week %d fixture %d differs: %+v vs %+v", week, i, a[i], b[i])
			}
		}
	}
}
