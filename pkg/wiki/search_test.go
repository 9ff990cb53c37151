package wiki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestSearch_MapsHits(t *testing.T) {
	payload := map[string]interface{}{
		"query": map[string]interface{}{
			"search": []map[string]interface{}{
				{
					"title":   "Apollo 11",
					"snippet": `<span class="searchmatch">Apollo</span> 11 was the 1969 mission that landed humans on the Moon`,
				},
				{
					"title":   "Moon landing conspiracy theories",
					"snippet": "Claims that the landings were staged",
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/w/api.php", r.URL.Path)
		assert.Equal(t, "apollo", r.URL.Query().Get("srsearch"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewSearchClient(srv.URL)
	client.now = func() time.Time { return time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC) }

	events, err := client.Search(context.Background(), "apollo")

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(events))

	assert.Equal(t, "Apollo 11: Apollo 11 was the 1969 mission that landed humans on the Moon", events[0].Text)
	assert.Equal(t, 1969, events[0].Year)
	assert.Equal(t, "event", events[0].Type)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Apollo_11", events[0].PageURL)

	assert.Equal(t, 2026, events[1].Year)
}

func TestSearch_NonSuccessIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewSearchClient(srv.URL)
	_, err := client.Search(context.Background(), "apollo")

	assert.NotEqual(t, nil, err)
}

func TestExtractYear(t *testing.T) {
	assert.Equal(t, 1969, extractYear("the 1969 mission", 2026))
	assert.Equal(t, 2029, extractYear("planned for 2029", 2026))
	assert.Equal(t, 2026, extractYear("no year here", 2026))
	assert.Equal(t, 2026, extractYear("year 2077 is out of range", 2026))
	assert.Equal(t, 2026, extractYear("854 is too short", 2026))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "plain text", StripTags("plain text"))
	assert.Equal(t, "Apollo 11 mission", StripTags(`<span class="searchmatch">Apollo</span> 11 mission`))
	assert.Equal(t, "Tom & Jerry", StripTags("Tom &amp; Jerry"))
	assert.Equal(t, "nested bold text", StripTags("<p>nested <b>bold</b> text</p>"))
}

func TestArticleURL(t *testing.T) {
	assert.Equal(t, "https://en.wikipedia.org/wiki/Apollo_11", articleURL("Apollo 11"))
	assert.Equal(t, "https://en.wikipedia.org/wiki/Moon", articleURL("Moon"))
}
