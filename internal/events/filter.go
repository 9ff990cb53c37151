package events

import (
	"strconv"
	"strings"

	"github.com/aldrik-cruze/historical-news/internal/model"
)

type YearRange struct {
	From *int
	To   *int
}

// Apply narrows candidates by type, search query and year range, in that
// precedence. An active search query makes the year range inert: search and
// year filtering are mutually exclusive modes.
func Apply(candidates []model.EventRecord, typeFilter, searchQuery string, years YearRange) []model.EventRecord {
	query := strings.ToLower(strings.TrimSpace(searchQuery))

	out := make([]model.EventRecord, 0, len(candidates))
	for _, item := range candidates {
		if typeFilter != "" && typeFilter != "all" && item.Type != typeFilter {
			continue
		}

		if query != "" {
			matchesText := strings.Contains(strings.ToLower(item.Text), query)
			matchesYear := strings.Contains(strconv.Itoa(item.Year), query)
			if matchesText || matchesYear {
				out = append(out, item)
			}
			continue
		}

		if years.From != nil && item.Year < *years.From {
			continue
		}
		if years.To != nil && item.Year > *years.To {
			continue
		}

		out = append(out, item)
	}

	return out
}
