package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aldrik-cruze/historical-news/internal/events"
	"github.com/aldrik-cruze/historical-news/internal/model"
)

type EventResolver interface {
	ResolveDay(ctx context.Context, month, day int) []model.EventRecord
	Search(ctx context.Context, query string) []model.EventRecord
	FeedStatus() string
}

type CacheInfo interface {
	Len() int
}

type EventHandler struct {
	resolver EventResolver
	cache    CacheInfo
}

func NewEventHandler(resolver EventResolver, cache CacheInfo) *EventHandler {
	return &EventHandler{resolver: resolver, cache: cache}
}

// GetEvents resolves a day (defaulting to today), filters and reveals a
// paged prefix. Remote failures surface as an empty feed with a message,
// never as an error status.
func (h *EventHandler) GetEvents(c *gin.Context) {
	month := getQueryInt("month", 0, c)
	if month != 0 && (month < 1 || month > 12) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	day := getQueryInt("day", 0, c)
	if day != 0 && (day < 1 || day > 31) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day"})
		return
	}

	records := h.resolver.ResolveDay(c.Request.Context(), month, day)
	h.respondFeed(c, records, "")
}

// SearchEvents resolves a free-text query. While a query is active the year
// range is ignored; only the type filter still applies.
func (h *EventHandler) SearchEvents(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	records := h.resolver.Search(c.Request.Context(), query)
	h.respondFeed(c, records, query)
}

func (h *EventHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"day_feed":    h.resolver.FeedStatus(),
		"cached_days": h.cache.Len(),
	})
}

func (h *EventHandler) respondFeed(c *gin.Context, records []model.EventRecord, query string) {
	typeFilter := c.DefaultQuery("type", "all")
	switch typeFilter {
	case "all", model.TypeEvent, model.TypeBirth, model.TypeDeath:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type filter"})
		return
	}

	years := events.YearRange{
		From: getQueryOptionalInt("from", c),
		To:   getQueryOptionalInt("to", c),
	}

	filtered := events.Apply(records, typeFilter, query, years)

	pager := events.NewPager()
	pages := getQueryInt("pages", 0, c)
	for i := 0; i < pages && pager.Cursor() < len(filtered); i++ {
		pager.Advance(len(filtered))
	}
	visible := pager.Visible(filtered)

	res := FeedResponse{
		Events:  make([]EventResponse, 0, len(visible)),
		Total:   len(filtered),
		Visible: len(visible),
		Query:   query,
	}
	for _, record := range visible {
		res.Events = append(res.Events, toEventResponse(record))
	}

	if len(filtered) == 0 {
		if query != "" {
			res.Message = fmt.Sprintf("No results found for %q", query)
		} else {
			res.Message = "No events found for this date."
		}
	}

	c.JSON(http.StatusOK, res)
}

func toEventResponse(record model.EventRecord) EventResponse {
	return EventResponse{
		Text:        record.Text,
		Year:        record.Year,
		Type:        record.Type,
		ImageURL:    record.ImageURL,
		PageURL:     record.PageURL,
		ReadingTime: readingTime(record.Text),
	}
}

func readingTime(text string) string {
	const wordsPerMinute = 200
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)
	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryOptionalInt(name string, c *gin.Context) *int {
	param := c.Query(name)
	if param == "" {
		return nil
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, ignoring", "param", name, "value", param, "error", err)
		return nil
	}

	return &parsed
}
