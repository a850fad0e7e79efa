// Package filter derives views of the expense collection from user criteria.
//
// Filtering is a pure function of the input slice and the criteria; it never
// mutates its input and is recomputed on demand rather than memoized.
package filter

import (
	"strings"
	"time"

	"outlay/internal/core"
)

// Criteria is the ephemeral, UI-held filter state. Zero-value time fields
// mean "no bound"; an empty category set passes all categories; an empty or
// whitespace-only query applies no text restriction.
type Criteria struct {
	Start      time.Time
	End        time.Time
	Categories []core.Category
	Query      string
}

// Active reports whether any restriction is set.
func (c Criteria) Active() bool {
	return !c.Start.IsZero() || !c.End.IsZero() ||
		len(c.Categories) > 0 || strings.TrimSpace(c.Query) != ""
}

// Apply returns the subsequence of expenses matching all criteria,
// preserving input order. The date range is inclusive on both ends and
// compared at day granularity.
func Apply(expenses []core.Expense, c Criteria) []core.Expense {
	if !c.Active() {
		return expenses
	}

	var lower, upper time.Time
	if !c.Start.IsZero() {
		lower = core.StartOfDay(c.Start)
	}
	if !c.End.IsZero() {
		upper = core.EndOfDay(c.End)
	}

	catSet := make(map[core.Category]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		catSet[cat] = struct{}{}
	}

	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]core.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !lower.IsZero() && e.Date.Before(lower) {
			continue
		}
		if !upper.IsZero() && e.Date.After(upper) {
			continue
		}
		if len(catSet) > 0 {
			if _, ok := catSet[e.Category]; !ok {
				continue
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(e.Description), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}
