package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/ingest"
)

// Config controls how the client reaches the season CSV archive.
type Config struct {
	BaseURL    string
	Season     string // archive season code, e.g. "2526"
	Division   string // division code, e.g. "E0" for the Premier League
	HTTPClient *http.Client
}

// Client downloads a season CSV and decodes it into raw match records.
type Client struct {
	baseURL    string
	season     string
	division   string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		season:     orDefault(cfg.Season, defaultSeason),
		division:   orDefault(cfg.Division, defaultDivision),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchMatches downloads and decodes the configured season file.
func (c *Client) FetchMatches(ctx context.Context) ([]domain.RawMatch, error) {
	url := fmt.Sprintf("%s/%s/%s.csv", c.baseURL, c.season, c.division)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ingest.NewInputError("footballdata", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ingest.NewInputError("footballdata", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, ingest.NewInputError("footballdata",
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	matches, err := ingest.DecodeCSV(resp.Body)
	if err != nil {
		return nil, ingest.NewInputError("footballdata", err)
	}
	if len(matches) == 0 {
		return nil, ingest.NewInputError("footballdata", fmt.Errorf("season file %s/%s is empty", c.season, c.division))
	}
	return matches, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
