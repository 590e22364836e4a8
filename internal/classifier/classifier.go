package classifier

import (
	"errors"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/timeutil"
)

// Structural failures abort a classification pass; they are never papered
// over with placeholder data.
var (
	// ErrNoMatches signals that the input contained no usable records.
	ErrNoMatches = errors.New("classifier: no valid matches in input")
	// ErrNoTeams signals that fewer than two teams passed the acceptance
	// policy, so nothing can be treated as a league fixture.
	ErrNoTeams = errors.New("classifier: fewer than two teams qualified")
	// ErrNoFixtures signals that zero matches survived league filtering.
	// Usually a misconfigured acceptance band rather than an empty season.
	ErrNoFixtures = errors.New("classifier: no league fixtures after filtering")
)

// Config tunes a classification pass. Zero values select the defaults.
type Config struct {
	Policy        AcceptancePolicy
	OngoingWindow time.Duration
}

// Stats describes what happened to the input during one pass.
type Stats struct {
	Input      int
	Invalid    int
	NonLeague  int
	Classified int
}

// Classifier runs the full pipeline: validate, detect league membership,
// assign gameweeks, derive statuses, and bucket by week. It holds no state
// between runs; every derived value is recomputed from the input.
type Classifier struct {
	policy AcceptancePolicy
	window time.Duration
	now    func() time.Time
}

// New constructs a Classifier from config, filling in defaults.
func New(cfg Config) *Classifier {
	policy := cfg.Policy
	if policy == nil {
		policy = DefaultPolicy()
	}
	window := cfg.OngoingWindow
	if window <= 0 {
		window = DefaultOngoingWindow
	}
	return &Classifier{
		policy: policy,
		window: window,
		now:    time.Now,
	}
}

type parsedMatch struct {
	raw     domain.RawMatch
	date    time.Time
	kickoff time.Time
}

// Classify runs one pass over the raw records. Individual invalid records
// are dropped and counted; structural failures return one of the sentinel
// errors above together with the stats gathered so far.
func (c *Classifier) Classify(raw []domain.RawMatch) (domain.Season, Stats, error) {
	stats := Stats{Input: len(raw)}

	parsed := make([]parsedMatch, 0, len(raw))
	valid := make([]domain.RawMatch, 0, len(raw))
	for _, m := range raw {
		if !m.Valid() {
			stats.Invalid++
			continue
		}
		date, err := timeutil.ParseMatchDate(m.Date)
		if err != nil {
			stats.Invalid++
			continue
		}
		parsed = append(parsed, parsedMatch{
			raw:     m,
			date:    date,
			kickoff: timeutil.Kickoff(date, m.Time),
		})
		valid = append(valid, m)
	}
	if len(parsed) == 0 {
		return domain.Season{}, stats, ErrNoMatches
	}

	teams := DetectTeams(valid, c.policy)
	if len(teams) < 2 {
		return domain.Season{}, stats, ErrNoTeams
	}
	members := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		members[t] = struct{}{}
	}

	league := parsed[:0:0]
	for _, m := range parsed {
		if _, home := members[m.raw.HomeTeam]; !home {
			stats.NonLeague++
			continue
		}
		if _, away := members[m.raw.AwayTeam]; !away {
			stats.NonLeague++
			continue
		}
		league = append(league, m)
	}
	if len(league) == 0 {
		return domain.Season{}, stats, ErrNoFixtures
	}

	seasonStart := league[0].date
	for _, m := range league[1:] {
		if m.date.Before(seasonStart) {
			seasonStart = m.date
		}
	}

	now := c.now()
	fixtures := make([]domain.Fixture, 0, len(league))
	for _, m := range league {
		fixtures = append(fixtures, domain.Fixture{
			HomeTeam:  m.raw.HomeTeam,
			AwayTeam:  m.raw.AwayTeam,
			Score:     ScoreLine(m.raw.HomeGoals, m.raw.AwayGoals),
			Date:      m.raw.Date,
			Time:      m.raw.Time,
			Status:    Status(now, m.kickoff, m.raw.HomeGoals, m.raw.AwayGoals, c.window),
			Gameweek:  GameweekFor(m.date, seasonStart),
			KickoffAt: m.kickoff,
		})
	}
	stats.Classified = len(fixtures)

	weeks := BuildWeeks(fixtures)
	return domain.Season{
		Teams:       teams,
		Weeks:       weeks,
		CurrentWeek: CurrentWeek(weeks),
	}, stats, nil
}
