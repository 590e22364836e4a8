package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"fixtures-service/internal/domain"
)

// Column names as they appear in football-data.co.uk season files. Older
// files omit Time; goals may appear as FTHG/FTAG or HG/AG depending on the
// division file.
const (
	colDate     = "Date"
	colTime     = "Time"
	colHomeTeam = "HomeTeam"
	colAwayTeam = "AwayTeam"
)

var homeGoalCols = []string{"FTHG", "HG"}
var awayGoalCols = []string{"FTAG", "AG"}

// DecodeCSV reads a season CSV into raw match records. Columns are located
// by header name so extra odds/statistics columns are ignored. Rows too
// short to carry the required fields are skipped, not fatal; a header
// missing any required column is.
func DecodeCSV(r io.Reader) ([]domain.RawMatch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("ingest: reading csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colDate, colHomeTeam, colAwayTeam} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("ingest: csv missing required column %s", required)
		}
	}

	matches := make([]domain.RawMatch, 0, 380)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A mangled row should not sink the whole file.
			continue
		}
		match := domain.RawMatch{
			Date:      field(row, index, colDate),
			Time:      field(row, index, colTime),
			HomeTeam:  field(row, index, colHomeTeam),
			AwayTeam:  field(row, index, colAwayTeam),
			HomeGoals: firstField(row, index, homeGoalCols),
			AwayGoals: firstField(row, index, awayGoalCols),
		}
		if match.Date == "" && match.HomeTeam == "" && match.AwayTeam == "" {
			// Trailing blank lines are common in the published files.
			continue
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func field(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func firstField(row []string, index map[string]int, names []string) string {
	for _, name := range names {
		if value := field(row, index, name); value != "" {
			return value
		}
	}
	return ""
}
