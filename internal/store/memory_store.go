package store

import (
	"sync"
	"time"

	"fixtures-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the latest classified season
// in memory. Each refresh replaces the whole season; nothing is mutated in
// place.
type MemoryStore struct {
	mu        sync.RWMutex
	season    domain.Season
	updatedAt time.Time
	loaded    bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetSeason replaces the stored season with a new classification pass.
func (s *MemoryStore) SetSeason(season domain.Season, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.season = season
	s.updatedAt = at
	s.loaded = true
}

// Season returns the current season, its refresh time, and whether any
// classification pass has completed yet.
func (s *MemoryStore) Season() (domain.Season, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return domain.Season{}, time.Time{}, false
	}

	weeks := make(map[int][]domain.Fixture, len(s.season.Weeks))
	for week, fixtures := range s.season.Weeks {
		weeks[week] = fixtures
	}
	teams := make([]string, len(s.season.Teams))
	copy(teams, s.season.Teams)

	return domain.Season{
		Teams:       teams,
		Weeks:       weeks,
		CurrentWeek: s.season.CurrentWeek,
	}, s.updatedAt, true
}
