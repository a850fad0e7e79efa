package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"outlay/internal/core"
	"outlay/internal/filter"
)

// expensePayload is the JSON body accepted by create and update.
type expensePayload struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// decodeFormData parses the request body into raw form input. Dates accept
// either RFC 3339 timestamps or plain YYYY-MM-DD dates.
func decodeFormData(r *http.Request) (core.FormData, error) {
	var payload expensePayload
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return core.FormData{}, fmt.Errorf("decode request body: %w", err)
	}

	var date time.Time
	if v := strings.TrimSpace(payload.Date); v != "" {
		parsed, err := parseDate(v)
		if err != nil {
			return core.FormData{}, err
		}
		date = parsed
	}

	return core.FormData{
		Date:        date,
		Amount:      payload.Amount,
		Category:    core.Category(strings.TrimSpace(payload.Category)),
		Description: sanitizeInput(payload.Description),
	}, nil
}

// parseCriteria extracts filter criteria from query parameters:
// start, end (dates), categories (comma-separated or repeated), q.
func parseCriteria(query url.Values) (filter.Criteria, error) {
	var c filter.Criteria

	if v := strings.TrimSpace(query.Get("start")); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return c, fmt.Errorf("start: %w", err)
		}
		c.Start = t
	}
	if v := strings.TrimSpace(query.Get("end")); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return c, fmt.Errorf("end: %w", err)
		}
		c.End = t
	}

	for _, raw := range query["categories"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			cat := core.Category(part)
			if !cat.Valid() {
				return c, fmt.Errorf("unknown category %q", part)
			}
			c.Categories = append(c.Categories, cat)
		}
	}

	c.Query = query.Get("q")
	return c, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want RFC 3339 or YYYY-MM-DD", v)
}

// sanitizeInput trims whitespace and strips control characters except tab,
// newline, and carriage return.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
