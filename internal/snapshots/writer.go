package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"fixtures-service/internal/domain"
)

var gameweekFilePattern = regexp.MustCompile(`^gameweek-(\d{2})\.json$`)

// Writer publishes classified gameweeks as static JSON files, the shape a
// static frontend can serve directly. Every publication rewrites the whole
// season and prunes gameweek files that no longer exist.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSeason persists one gameweek file per populated week plus the
// current-gameweek and teams files, then prunes stale gameweek files and
// refreshes the manifest.
func (w *Writer) WriteSeason(season domain.Season, updated time.Time) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if err := os.MkdirAll(w.basePath, 0o755); err != nil {
		return err
	}

	weeks := make([]int, 0, len(season.Weeks))
	for week := range season.Weeks {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	for _, week := range weeks {
		payload := domain.NewGameweekResponse(season, week, updated)
		if err := w.writeFile(GameweekPath(w.basePath, week), payload); err != nil {
			return err
		}
	}

	current := domain.NewGameweekResponse(season, season.CurrentWeek, updated)
	if err := w.writeFile(CurrentPath(w.basePath), current); err != nil {
		return err
	}

	teams := season.Teams
	if teams == nil {
		teams = []string{}
	}
	if err := w.writeFile(TeamsPath(w.basePath), teams); err != nil {
		return err
	}

	if err := w.pruneStale(weeks); err != nil {
		return err
	}

	return writeManifest(w.basePath, Manifest{
		Version:   1,
		Current:   season.CurrentWeek,
		Gameweeks: weeks,
		Teams:     len(teams),
	})
}

func (w *Writer) writeFile(target string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// pruneStale removes gameweek files for weeks absent from the latest pass,
// e.g. after a source correction shifts the schedule.
func (w *Writer) pruneStale(keep []int) error {
	current := make(map[int]struct{}, len(keep))
	for _, week := range keep {
		current[week] = struct{}{}
	}

	entries, err := os.ReadDir(w.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := gameweekFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		week, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if _, ok := current[week]; !ok {
			_ = os.Remove(filepath.Join(w.basePath, e.Name()))
		}
	}
	return nil
}
