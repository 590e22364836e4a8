package domain

import "time"

// MatchStatus mirrors the shared contract for fixture lifecycle states.
type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "upcoming"
	StatusOngoing   MatchStatus = "ongoing"
	StatusCompleted MatchStatus = "completed"
	StatusPostponed MatchStatus = "postponed"
)

// Terminal reports whether the status can no longer change without new source data.
func (s MatchStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusPostponed
}

// RawMatch is one row of source data before validation or classification.
// Dates arrive as DD/MM/YY, kickoff times as HH:MM; goals are numeric
// strings where an empty string means "not yet played".
type RawMatch struct {
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeGoals string `json:"homeGoals,omitempty"`
	AwayGoals string `json:"awayGoals,omitempty"`
}

// Valid reports whether the record carries the fields required downstream.
func (m RawMatch) Valid() bool {
	return m.Date != "" && m.HomeTeam != "" && m.AwayTeam != ""
}

// Fixture is the canonical classified match shape exposed by the service.
type Fixture struct {
	HomeTeam string      `json:"homeTeam"`
	AwayTeam string      `json:"awayTeam"`
	Score    string      `json:"score"`
	Date     string      `json:"date"`
	Time     string      `json:"time,omitempty"`
	Status   MatchStatus `json:"status"`
	Gameweek int         `json:"gameweek"`

	// KickoffAt is the resolved calendar kickoff instant; it backs sorting
	// and status derivation and is not part of the wire payload.
	KickoffAt time.Time `json:"-"`
}

// Season is one full classification pass over a source dataset.
type Season struct {
	Teams       []string
	Weeks       map[int][]Fixture
	CurrentWeek int
}

// Week returns the fixtures bucketed under a gameweek number.
func (s Season) Week(n int) []Fixture {
	return s.Weeks[n]
}

// WeekComplete reports whether every fixture in a gameweek is terminal.
// An empty gameweek is never complete; it is simply absent.
func (s Season) WeekComplete(n int) bool {
	fixtures := s.Weeks[n]
	if len(fixtures) == 0 {
		return false
	}
	for _, f := range fixtures {
		if !f.Status.Terminal() {
			return false
		}
	}
	return true
}

// GameweekResponse is the interchange payload for one gameweek.
type GameweekResponse struct {
	Gameweek    int       `json:"gameweek"`
	IsComplete  bool      `json:"isComplete"`
	Fixtures    []Fixture `json:"fixtures"`
	LastUpdated string    `json:"lastUpdated"`
}

// GameweekSummary is the list-view shape for a single gameweek.
type GameweekSummary struct {
	Gameweek   int  `json:"gameweek"`
	Fixtures   int  `json:"fixtures"`
	IsComplete bool `json:"isComplete"`
}

// NewGameweekResponse assembles the payload for a gameweek at a given instant.
func NewGameweekResponse(season Season, week int, updated time.Time) GameweekResponse {
	fixtures := season.Week(week)
	if fixtures == nil {
		fixtures = []Fixture{}
	}
	return GameweekResponse{
		Gameweek:    week,
		IsComplete:  season.WeekComplete(week),
		Fixtures:    fixtures,
		LastUpdated: updated.UTC().Format(time.RFC3339),
	}
}
