package classifier

import (
	"sort"

	"fixtures-service/internal/domain"
)

// AcceptancePolicy decides whether a team's appearance count qualifies it
// for membership in the league under analysis. Source files mix several
// competitions together, so membership is inferred from frequency rather
// than declared.
type AcceptancePolicy interface {
	Accept(count, totalMatches int) bool
}

// CountBand accepts teams whose appearance count falls inside an inclusive
// absolute range. The default band approximates "played most of a 38-round
// season".
type CountBand struct {
	Min int
	Max int
}

// Accept reports whether count lies within the band. Bounds are inclusive.
func (b CountBand) Accept(count, totalMatches int) bool {
	_ = totalMatches
	return count >= b.Min && count <= b.Max
}

// MinShare accepts teams that appear in at least a fraction of all valid
// matches. Alternate policy carried alongside CountBand; pick one via
// configuration.
type MinShare struct {
	Fraction float64
}

// Accept reports whether count reaches the configured share of totalMatches.
func (s MinShare) Accept(count, totalMatches int) bool {
	if totalMatches <= 0 {
		return false
	}
	return float64(count) >= s.Fraction*float64(totalMatches)
}

// DefaultPolicy is the acceptance band used when none is configured.
func DefaultPolicy() AcceptancePolicy {
	return CountBand{Min: 30, Max: 40}
}

// DetectTeams counts appearances per team across the given matches (home and
// away each count once) and returns the accepted set, sorted and free of
// duplicates. Matches missing required fields contribute nothing.
func DetectTeams(matches []domain.RawMatch, policy AcceptancePolicy) []string {
	if policy == nil {
		policy = DefaultPolicy()
	}

	counts := make(map[string]int)
	total := 0
	for _, m := range matches {
		if !m.Valid() {
			continue
		}
		counts[m.HomeTeam]++
		counts[m.AwayTeam]++
		total++
	}

	accepted := make([]string, 0, len(counts))
	for team, count := range counts {
		if policy.Accept(count, total) {
			accepted = append(accepted, team)
		}
	}
	sort.Strings(accepted)
	return accepted
}
