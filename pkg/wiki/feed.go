package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://en.wikipedia.org"

// FeedClient fetches the Wikimedia "on this day" feed for a single date.
type FeedClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewFeedClient(baseURL string) *FeedClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &FeedClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *FeedClient) Name() string {
	return "OnThisDay"
}

// FetchDay returns the day's records tagged event, birth and death, in
// source order. A non-success status is an empty result, not an error.
func (c *FeedClient) FetchDay(ctx context.Context, month, day int) ([]Event, error) {
	url := fmt.Sprintf("%s/api/rest_v1/feed/onthisday/all/%02d/%02d", c.baseURL, month, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("onthisday request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("onthisday fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []Event{}, nil
	}

	var raw feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("onthisday decode: %w", err)
	}

	events := make([]Event, 0, len(raw.Events)+len(raw.Births)+len(raw.Deaths))
	for _, item := range raw.Events {
		events = append(events, item.toEvent("event"))
	}
	for _, item := range raw.Births {
		events = append(events, item.toEvent("birth"))
	}
	for _, item := range raw.Deaths {
		events = append(events, item.toEvent("death"))
	}

	return events, nil
}

type feedResponse struct {
	Events []feedItem `json:"events"`
	Births []feedItem `json:"births"`
	Deaths []feedItem `json:"deaths"`
}

type feedItem struct {
	Text  string     `json:"text"`
	Year  int        `json:"year"`
	Pages []feedPage `json:"pages"`
}

type feedPage struct {
	Thumbnail   feedThumbnail   `json:"thumbnail"`
	ContentURLs feedContentURLs `json:"content_urls"`
}

type feedThumbnail struct {
	Source string `json:"source"`
}

type feedContentURLs struct {
	Desktop feedDesktop `json:"desktop"`
}

type feedDesktop struct {
	Page string `json:"page"`
}

func (i feedItem) toEvent(kind string) Event {
	e := Event{
		Text: i.Text,
		Year: i.Year,
		Type: kind,
	}
	if len(i.Pages) > 0 {
		e.ImageURL = i.Pages[0].Thumbnail.Source
		e.PageURL = i.Pages[0].ContentURLs.Desktop.Page
	}
	return e
}
