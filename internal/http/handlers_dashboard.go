package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"outlay/internal/aggregate"
	"outlay/internal/core"
)

// summaryBody backs the dashboard summary cards: all-time total, current
// month, current week (Sunday-based), and record count.
type summaryBody struct {
	TotalCents int64 `json:"totalCents"`
	MonthCents int64 `json:"monthCents"`
	WeekCents  int64 `json:"weekCents"`
	Count      int   `json:"count"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	expenses := s.store.List()
	now := time.Now()

	writeJSON(w, r, http.StatusOK, summaryBody{
		TotalCents: aggregate.Sum(expenses),
		MonthCents: aggregate.PeriodTotal(expenses, core.StartOfMonth(now), core.EndOfMonth(now)),
		WeekCents:  aggregate.PeriodTotal(expenses, core.StartOfWeek(now), core.EndOfWeek(now)),
		Count:      len(expenses),
	})
}

// handleInsights returns the month overview (total, category breakdown,
// top three categories, budget streak). Optional year/month query params
// select a past month; the default is the current one.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	ref := now

	query := r.URL.Query()
	yearStr := strings.TrimSpace(query.Get("year"))
	monthStr := strings.TrimSpace(query.Get("month"))
	if yearStr != "" || monthStr != "" {
		year, month := now.Year(), int(now.Month())
		if yearStr != "" {
			y, err := strconv.Atoi(yearStr)
			if err != nil {
				writeError(w, r, http.StatusBadRequest, "invalid year")
				return
			}
			year = y
		}
		if monthStr != "" {
			m, err := strconv.Atoi(monthStr)
			if err != nil || m < 1 || m > 12 {
				writeError(w, r, http.StatusBadRequest, "invalid month")
				return
			}
			month = m
		}

		ref = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
		if year == now.Year() && month == int(now.Month()) {
			// The streak for the current month scans back from today.
			ref = now
		} else {
			ref = core.EndOfMonth(ref)
		}
	}

	writeJSON(w, r, http.StatusOK, aggregate.Overview(s.store.List(), ref, s.opts.DailyBudgetCents))
}

// trendBody is the daily totals window behind the spending trend chart.
type trendBody struct {
	Days []aggregate.DayTotal `json:"days"`
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	days := s.opts.TrendWindowDays
	if v := strings.TrimSpace(r.URL.Query().Get("days")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 366 {
			writeError(w, r, http.StatusBadRequest, "invalid days: want 1-366")
			return
		}
		days = n
	}

	writeJSON(w, r, http.StatusOK, trendBody{
		Days: aggregate.DailyTotals(s.store.List(), time.Now(), days),
	})
}
