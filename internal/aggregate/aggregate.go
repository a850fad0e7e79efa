// Package aggregate computes derived spending summaries over expense slices.
//
// Every function here is pure: inputs are read-only and results are
// recomputed from scratch on each call.
package aggregate

import (
	"sort"
	"time"

	"outlay/internal/core"
)

// CategoryTotal is an amount aggregated under one category.
type CategoryTotal struct {
	Category core.Category `json:"category"`
	Cents    int64         `json:"cents"`
}

// DayTotal is the spending total for one calendar day.
type DayTotal struct {
	Day   time.Time `json:"day"`
	Cents int64     `json:"cents"`
}

// Sum returns the total amount across all expenses.
func Sum(expenses []core.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// GroupByCategory totals amounts per category. Only categories present in
// the input appear as keys.
func GroupByCategory(expenses []core.Expense) map[core.Category]int64 {
	totals := make(map[core.Category]int64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}

// TopCategories returns at most n categories ordered by descending total.
// Ties keep first-encountered order (stable sort over encounter order).
func TopCategories(expenses []core.Expense, n int) []CategoryTotal {
	totals := make(map[core.Category]int64)
	var order []core.Category
	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryTotal{Category: c, Cents: totals[c]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cents > out[j].Cents })

	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// DailyTotals buckets expenses into windowDays consecutive calendar days
// ending at ref (inclusive). Days with no expenses total 0.
func DailyTotals(expenses []core.Expense, ref time.Time, windowDays int) []DayTotal {
	if windowDays <= 0 {
		return nil
	}

	out := make([]DayTotal, windowDays)
	for i := 0; i < windowDays; i++ {
		out[i].Day = core.StartOfDay(ref.AddDate(0, 0, i-windowDays+1))
	}
	for _, e := range expenses {
		for i := range out {
			if core.SameDay(e.Date, out[i].Day) {
				out[i].Cents += e.Amount
				break
			}
		}
	}
	return out
}

// BudgetStreak counts consecutive days, walking backward from ref to
// monthStart inclusive, whose daily total stays at or under thresholdCents.
// The scan stops at the first day over the threshold; it does not skip and
// resume. A day with no expenses totals 0 and extends the streak.
func BudgetStreak(expenses []core.Expense, monthStart, ref time.Time, thresholdCents int64) int {
	start := core.StartOfDay(monthStart)
	day := core.StartOfDay(ref)

	streak := 0
	for !day.Before(start) {
		var total int64
		for _, e := range expenses {
			if core.SameDay(e.Date, day) {
				total += e.Amount
			}
		}
		if total > thresholdCents {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// PeriodTotal sums amounts for expenses dated within [start, end] inclusive,
// at day granularity.
func PeriodTotal(expenses []core.Expense, start, end time.Time) int64 {
	lower := core.StartOfDay(start)
	upper := core.EndOfDay(end)

	var total int64
	for _, e := range expenses {
		if e.Date.Before(lower) || e.Date.After(upper) {
			continue
		}
		total += e.Amount
	}
	return total
}
