// Package export projects expense views into flat tabular records and
// serializes them for download (CSV, JSON, PDF).
package export

import (
	"outlay/internal/core"
	"outlay/internal/filter"
)

// Record is one flat export row. Column order is fixed:
// Date, Category, Amount, Description.
type Record struct {
	Date        string `json:"Date"`
	Category    string `json:"Category"`
	Amount      string `json:"Amount"`
	Description string `json:"Description"`
}

// Headers returns the column names in output order.
func Headers() []string {
	return []string{"Date", "Category", "Amount", "Description"}
}

func (r Record) columns() []string {
	return []string{r.Date, r.Category, r.Amount, r.Description}
}

const dateLayout = "Jan 2, 2006"

// ToRecords projects expenses into export rows with human-formatted date and
// currency columns. It is purely a projection; nothing is written here.
func ToRecords(expenses []core.Expense) []Record {
	out := make([]Record, len(expenses))
	for i, e := range expenses {
		out[i] = Record{
			Date:        e.Date.Format(dateLayout),
			Category:    string(e.Category),
			Amount:      core.FormatUSD(e.Amount),
			Description: e.Description,
		}
	}
	return out
}

// FilteredRecords applies the filter criteria before projection, for exports
// scoped to the user's current view.
func FilteredRecords(expenses []core.Expense, c filter.Criteria) []Record {
	return ToRecords(filter.Apply(expenses, c))
}
