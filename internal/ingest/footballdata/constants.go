package footballdata

import "time"

const (
	// Season files live under <base>/<season>/<division>.csv, e.g.
	// https://www.football-data.co.uk/mmz4281/2526/E0.csv
	defaultBaseURL  = "https://www.football-data.co.uk/mmz4281"
	defaultSeason   = "2526"
	defaultDivision = "E0"

	defaultHTTPTimeout = 15 * time.Second
)
