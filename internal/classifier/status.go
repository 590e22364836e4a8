package classifier

import (
	"strconv"
	"time"

	"fixtures-service/internal/domain"
)

// DefaultOngoingWindow bounds how long after kickoff a scoreless match is
// treated as in play before it is considered postponed.
const DefaultOngoingWindow = 2 * time.Hour

// Status derives the lifecycle state for a match. It is a pure function of
// the current instant, the kickoff, the score fields, and the ongoing
// window; precedence, first match wins:
//
//  1. completed: both goals present and numeric, regardless of date
//  2. ongoing: no score, now within the window after kickoff
//  3. postponed: no score, kickoff past beyond the window
//  4. upcoming: no score, kickoff in the future (or unknown)
func Status(now, kickoff time.Time, homeGoals, awayGoals string, window time.Duration) domain.MatchStatus {
	if hasScore(homeGoals, awayGoals) {
		return domain.StatusCompleted
	}
	if kickoff.IsZero() {
		return domain.StatusUpcoming
	}
	if window <= 0 {
		window = DefaultOngoingWindow
	}
	if now.Before(kickoff) {
		return domain.StatusUpcoming
	}
	if now.Sub(kickoff) <= window {
		return domain.StatusOngoing
	}
	return domain.StatusPostponed
}

// ScoreLine renders "H-A" when both goals are present, empty otherwise.
func ScoreLine(homeGoals, awayGoals string) string {
	if !hasScore(homeGoals, awayGoals) {
		return ""
	}
	return homeGoals + "-" + awayGoals
}

func hasScore(homeGoals, awayGoals string) bool {
	return isNumeric(homeGoals) && isNumeric(awayGoals)
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0
}
