package fixtures

import (
	"sort"
	"time"

	"fixtures-service/internal/domain"
)

// Store defines the contract for persisting and retrieving the classified
// season.
type Store interface {
	Season() (domain.Season, time.Time, bool)
	SetSeason(season domain.Season, at time.Time)
}

// Service coordinates gameweek reads over a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ReplaceSeason swaps the stored season with a fresh classification pass.
func (s *Service) ReplaceSeason(season domain.Season, at time.Time) {
	s.store.SetSeason(season, at)
}

// Loaded reports whether any classification pass has completed.
func (s *Service) Loaded() bool {
	_, _, ok := s.store.Season()
	return ok
}

// CurrentGameweek returns the payload for the season's current gameweek.
func (s *Service) CurrentGameweek() (domain.GameweekResponse, bool) {
	season, updated, ok := s.store.Season()
	if !ok {
		return domain.GameweekResponse{}, false
	}
	return domain.NewGameweekResponse(season, season.CurrentWeek, updated), true
}

// Gameweek returns the payload for a specific gameweek number.
func (s *Service) Gameweek(week int) (domain.GameweekResponse, bool) {
	season, updated, ok := s.store.Season()
	if !ok {
		return domain.GameweekResponse{}, false
	}
	return domain.NewGameweekResponse(season, week, updated), true
}

// Summaries lists every populated gameweek in ascending order.
func (s *Service) Summaries() ([]domain.GameweekSummary, bool) {
	season, _, ok := s.store.Season()
	if !ok {
		return nil, false
	}

	weeks := make([]int, 0, len(season.Weeks))
	for week := range season.Weeks {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	summaries := make([]domain.GameweekSummary, 0, len(weeks))
	for _, week := range weeks {
		summaries = append(summaries, domain.GameweekSummary{
			Gameweek:   week,
			Fixtures:   len(season.Weeks[week]),
			IsComplete: season.WeekComplete(week),
		})
	}
	return summaries, true
}

// Teams returns the detected league team set.
func (s *Service) Teams() ([]string, bool) {
	season, _, ok := s.store.Season()
	if !ok {
		return nil, false
	}
	return season.Teams, true
}
