package aggregate

import (
	"time"

	"outlay/internal/core"
)

// MonthOverview is the insight bundle for one month: total, per-category
// breakdown, the top three categories, and the current budget streak.
type MonthOverview struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"` // 1-12
	TotalCents int64           `json:"totalCents"`
	ByCategory []CategoryTotal `json:"byCategory"`
	Top        []CategoryTotal `json:"top"`
	StreakDays int             `json:"streakDays"`
}

// Overview summarizes spending for ref's calendar month. The budget streak
// walks backward from ref (or from month end when ref is past the month)
// against budgetCents per day.
func Overview(expenses []core.Expense, ref time.Time, budgetCents int64) MonthOverview {
	monthStart := core.StartOfMonth(ref)
	monthEnd := core.EndOfMonth(ref)

	monthly := make([]core.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Date.Before(monthStart) || e.Date.After(monthEnd) {
			continue
		}
		monthly = append(monthly, e)
	}

	byCategory := TopCategories(monthly, -1)
	top := byCategory
	if len(top) > 3 {
		top = top[:3]
	}

	return MonthOverview{
		Year:       monthStart.Year(),
		Month:      int(monthStart.Month()),
		TotalCents: Sum(monthly),
		ByCategory: byCategory,
		Top:        top,
		StreakDays: BudgetStreak(monthly, monthStart, ref, budgetCents),
	}
}
