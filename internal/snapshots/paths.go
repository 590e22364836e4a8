package snapshots

import (
	"fmt"
	"path/filepath"
)

// GameweekPath builds the path to a gameweek snapshot file.
func GameweekPath(basePath string, week int) string {
	return filepath.Join(basePath, fmt.Sprintf("gameweek-%02d.json", week))
}

// CurrentPath builds the path to the current-gameweek snapshot file.
func CurrentPath(basePath string) string {
	return filepath.Join(basePath, "current.json")
}

// TeamsPath builds the path to the detected-teams snapshot file.
func TeamsPath(basePath string) string {
	return filepath.Join(basePath, "teams.json")
}
