package store

import (
	"testing"
	"time"

	"fixtures-service/internal/domain"
)

func TestMemoryStoreEmptyUntilSet(t *testing.T) {
	s := NewMemoryStore()
	if _, _, ok := s.Season(); ok {
		t.Fatal("expected empty store to report not loaded")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	at := time.Date(2025, 8, 16, 12, 0, 0, 0, time.UTC)
	season := domain.Season{
		Teams:       []string{"Arsenal", "Chelsea"},
		Weeks:       map[int][]domain.Fixture{1: {{HomeTeam: "Arsenal"}}},
		CurrentWeek: 1,
	}

	s.SetSeason(season, at)

	got, updated, ok := s.Season()
	if !ok {
		t.Fatal("expected loaded season")
	}
	if !updated.Equal(at) {
		t.Fatalf("expected updated %v, got %v", at, updated)
	}
	if len(got.Teams) != 2 || got.CurrentWeek != 1 {
		t.Fatalf("unexpected season %+v", got)
	}
	if len(got.Weeks[1]) != 1 {
		t.Fatalf("expected week 1 fixture, got %+v", got.Weeks)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	s.SetSeason(domain.Season{
		Teams: []string{"Arsenal"},
		Weeks: map[int][]domain.Fixture{1: {{HomeTeam: "Arsenal"}}},
	}, time.Now())

	got, _, _ := s.Season()
	got.Teams[0] = "mutated"
	delete(got.Weeks, 1)

	fresh, _, _ := s.Season()
	if fresh.Teams[0] != "Arsenal" {
		t.Fatal("team slice leaked between reads")
	}
	if len(fresh.Weeks[1]) != 1 {
		t.Fatal("weeks map leaked between reads")
	}
}

func TestMemoryStoreReplaceSeason(t *testing.T) {
	s := NewMemoryStore()
	s.SetSeason(domain.Season{CurrentWeek: 1}, time.Now())
	s.SetSeason(domain.Season{CurrentWeek: 7}, time.Now())

	got, _, _ := s.Season()
	if got.CurrentWeek != 7 {
		t.Fatalf("expected replacement, got week %d", got.CurrentWeek)
	}
}
