package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// yearPattern matches the first plausible 4-digit year in a snippet,
// covering 1000-2029.
var yearPattern = regexp.MustCompile(`\b(1[0-9]{3}|20[0-2][0-9])\b`)

// SearchClient runs full-text queries against the MediaWiki Action API.
type SearchClient struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

func NewSearchClient(baseURL string) *SearchClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &SearchClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

func (c *SearchClient) Name() string {
	return "WikipediaSearch"
}

// Search maps ranked hits into events. The snippet arrives HTML-tagged and
// is stripped; a hit with no year-like token gets the current year. Unlike
// the day feed, a non-success status is an error so callers can fall back.
func (c *SearchClient) Search(ctx context.Context, query string) ([]Event, error) {
	searchURL := fmt.Sprintf(
		"%s/w/api.php?action=query&format=json&origin=*&list=search&srlimit=50&srsearch=%s",
		c.baseURL, url.QueryEscape(query),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wikipedia search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia search: status %d", resp.StatusCode)
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("wikipedia search decode: %w", err)
	}

	events := make([]Event, 0, len(raw.Query.Search))
	for _, hit := range raw.Query.Search {
		snippet := StripTags(hit.Snippet)
		events = append(events, Event{
			Text:    hit.Title + ": " + snippet,
			Year:    extractYear(snippet, c.now().Year()),
			Type:    "event",
			PageURL: articleURL(hit.Title),
		})
	}

	return events, nil
}

func extractYear(snippet string, fallback int) int {
	match := yearPattern.FindString(snippet)
	if match == "" {
		return fallback
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return fallback
	}
	return year
}

func articleURL(title string) string {
	return "https://en.wikipedia.org/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}

type searchResponse struct {
	Query searchQuery `json:"query"`
}

type searchQuery struct {
	Search []searchHit `json:"search"`
}

type searchHit struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}
