package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-catalog-sync/models"
)

const tmdbTimeout = 20 * time.Second

// TMDBClient talks to the TMDB v3 API. Calls are fail-fast: a timeout or a
// non-success status is returned to the caller, never retried.
type TMDBClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewTMDBClient(apiKey, baseURL string) *TMDBClient {
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: tmdbTimeout},
	}
}

// SearchMovie returns the first search hit for title+year, or nil when TMDB
// has no match.
func (c *TMDBClient) SearchMovie(ctx context.Context, title string, year int) (*models.TMDBSearchMatch, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", title)
	params.Set("year", strconv.Itoa(year))
	params.Set("include_adult", "false")

	var resp models.TMDBSearchResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// WatchProviders returns one region's raw offer listing for a movie. A movie
// with no offers in the region yields an empty entry, not an error.
func (c *TMDBClient) WatchProviders(ctx context.Context, movieID int64, region string) (models.TMDBRegionOffer, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)

	var resp models.TMDBProvidersResponse
	path := fmt.Sprintf("/movie/%d/watch/providers", movieID)
	if err := c.get(ctx, path, params, &resp); err != nil {
		return models.TMDBRegionOffer{}, err
	}
	return resp.Results[region], nil
}

func (c *TMDBClient) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build TMDB request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request TMDB %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("TMDB %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode TMDB response: %w", err)
	}
	return nil
}
