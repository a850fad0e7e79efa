package aggregate

import (
	"testing"
	"time"

	"outlay/internal/core"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func exp(id string, date time.Time, amount int64, cat core.Category) core.Expense {
	return core.Expense{ID: id, Date: date, Amount: amount, Category: cat, Description: id}
}

func TestSum(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Fatalf("Sum(nil) = %d", got)
	}
	in := []core.Expense{
		exp("a", day(2024, 1, 1), 500, core.CategoryFood),
		exp("b", day(2024, 1, 2), 1500, core.CategoryBills),
	}
	if got := Sum(in); got != 2000 {
		t.Fatalf("Sum = %d, want 2000", got)
	}
}

func TestGroupByCategoryPartitions(t *testing.T) {
	in := []core.Expense{
		exp("a", day(2024, 1, 1), 500, core.CategoryFood),
		exp("b", day(2024, 1, 2), 1500, core.CategoryBills),
		exp("c", day(2024, 1, 3), 700, core.CategoryFood),
	}
	groups := GroupByCategory(in)

	if len(groups) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(groups))
	}
	if groups[core.CategoryFood] != 1200 || groups[core.CategoryBills] != 1500 {
		t.Fatalf("unexpected totals: %v", groups)
	}

	// Grouping is a partition: category totals sum back to the overall total.
	var regrouped int64
	for _, cents := range groups {
		regrouped += cents
	}
	if regrouped != Sum(in) {
		t.Fatalf("partition broken: %d != %d", regrouped, Sum(in))
	}
}

func TestTopCategories(t *testing.T) {
	in := []core.Expense{
		exp("a", day(2024, 1, 1), 500, core.CategoryFood),
		exp("b", day(2024, 1, 2), 1500, core.CategoryBills),
		exp("c", day(2024, 1, 3), 700, core.CategoryFood),
		exp("d", day(2024, 1, 4), 300, core.CategoryShopping),
		exp("e", day(2024, 1, 5), 300, core.CategoryOther),
	}

	top := TopCategories(in, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Category != core.CategoryBills || top[0].Cents != 1500 {
		t.Fatalf("top[0] = %+v", top[0])
	}
	if top[1].Category != core.CategoryFood || top[1].Cents != 1200 {
		t.Fatalf("top[1] = %+v", top[1])
	}

	// Descending order across the full list, ties kept in encounter order.
	all := TopCategories(in, -1)
	if len(all) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Cents > all[i-1].Cents {
			t.Fatalf("not descending at %d: %+v", i, all)
		}
	}
	if all[2].Category != core.CategoryShopping || all[3].Category != core.CategoryOther {
		t.Fatalf("tie break should keep encounter order: %+v", all)
	}

	if got := TopCategories(in, 10); len(got) != 4 {
		t.Fatalf("n larger than categories should return all, got %d", len(got))
	}
	if got := TopCategories(nil, 3); len(got) != 0 {
		t.Fatalf("empty input should yield no entries, got %v", got)
	}
}

func TestDailyTotals(t *testing.T) {
	ref := day(2024, 1, 7)
	in := []core.Expense{
		exp("a", day(2024, 1, 1), 100, core.CategoryFood),  // day 1 of the window
		exp("b", day(2024, 1, 7), 250, core.CategoryFood),  // ref day
		exp("c", day(2024, 1, 7).Add(20*time.Hour), 50, core.CategoryBills),
		exp("d", day(2023, 12, 31), 999, core.CategoryFood), // before window
	}

	got := DailyTotals(in, ref, 7)
	if len(got) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(got))
	}
	if !got[0].Day.Equal(day(2024, 1, 1)) || !got[6].Day.Equal(day(2024, 1, 7)) {
		t.Fatalf("window bounds wrong: %v .. %v", got[0].Day, got[6].Day)
	}
	if got[0].Cents != 100 {
		t.Errorf("bucket 0 = %d, want 100", got[0].Cents)
	}
	for i := 1; i < 6; i++ {
		if got[i].Cents != 0 {
			t.Errorf("bucket %d = %d, want 0", i, got[i].Cents)
		}
	}
	if got[6].Cents != 300 {
		t.Errorf("ref bucket = %d, want 300", got[6].Cents)
	}

	if DailyTotals(in, ref, 0) != nil {
		t.Error("zero window should yield nil")
	}
}

func TestBudgetStreak(t *testing.T) {
	monthStart := day(2024, 1, 1)

	t.Run("reference day over threshold stops immediately", func(t *testing.T) {
		in := []core.Expense{
			exp("a", day(2024, 1, 29), 5000, core.CategoryFood),
			// Jan 30 has no expenses.
			exp("b", day(2024, 1, 31), 15000, core.CategoryShopping),
		}
		if got := BudgetStreak(in, monthStart, day(2024, 1, 31), 10000); got != 0 {
			t.Fatalf("streak = %d, want 0", got)
		}
	})

	t.Run("empty days count toward the streak", func(t *testing.T) {
		in := []core.Expense{
			exp("a", day(2024, 1, 29), 5000, core.CategoryFood),
			exp("b", day(2024, 1, 27), 15000, core.CategoryShopping),
		}
		// Jan 30 (empty), Jan 29 (5000), Jan 28 (empty) pass; Jan 27 breaks.
		if got := BudgetStreak(in, monthStart, day(2024, 1, 30), 10000); got != 3 {
			t.Fatalf("streak = %d, want 3", got)
		}
	})

	t.Run("streak reaching month start stops there", func(t *testing.T) {
		if got := BudgetStreak(nil, monthStart, day(2024, 1, 5), 10000); got != 5 {
			t.Fatalf("streak = %d, want 5", got)
		}
	})

	t.Run("no skip and resume", func(t *testing.T) {
		in := []core.Expense{
			exp("a", day(2024, 1, 10), 20000, core.CategoryBills),
		}
		// Jan 11..15 pass (5 days); Jan 10 breaks even though Jan 1..9 are empty.
		if got := BudgetStreak(in, monthStart, day(2024, 1, 15), 10000); got != 5 {
			t.Fatalf("streak = %d, want 5", got)
		}
	})
}

func TestPeriodTotal(t *testing.T) {
	in := []core.Expense{
		exp("a", day(2024, 1, 1).Add(8*time.Hour), 100, core.CategoryFood),
		exp("b", day(2024, 1, 7).Add(23*time.Hour), 200, core.CategoryFood),
		exp("c", day(2024, 1, 8), 400, core.CategoryFood),
	}
	// Inclusive on both ends, day granularity.
	if got := PeriodTotal(in, day(2024, 1, 1), day(2024, 1, 7)); got != 300 {
		t.Fatalf("PeriodTotal = %d, want 300", got)
	}
	if got := PeriodTotal(in, day(2024, 1, 8), day(2024, 1, 8)); got != 400 {
		t.Fatalf("single-day PeriodTotal = %d, want 400", got)
	}
	if got := PeriodTotal(in, day(2024, 2, 1), day(2024, 2, 28)); got != 0 {
		t.Fatalf("empty period = %d, want 0", got)
	}
}

func TestOverview(t *testing.T) {
	ref := day(2024, 1, 31)
	in := []core.Expense{
		exp("a", day(2024, 1, 10), 5000, core.CategoryFood),
		exp("b", day(2024, 1, 12), 8000, core.CategoryBills),
		exp("c", day(2024, 1, 12), 2000, core.CategoryFood),
		exp("d", day(2024, 2, 1), 9999, core.CategoryOther), // outside the month
	}

	ov := Overview(in, ref, 10000)
	if ov.Year != 2024 || ov.Month != 1 {
		t.Fatalf("overview period = %d-%d", ov.Year, ov.Month)
	}
	if ov.TotalCents != 15000 {
		t.Fatalf("total = %d, want 15000", ov.TotalCents)
	}
	if len(ov.ByCategory) != 2 || ov.ByCategory[0].Cents != 8000 {
		t.Fatalf("byCategory = %+v", ov.ByCategory)
	}
	if len(ov.Top) != 2 {
		t.Fatalf("top = %+v", ov.Top)
	}
	// Jan 31..13 are empty, Jan 12 totals 10000 (at threshold), Jan 11 empty,
	// Jan 10 is 5000: streak runs all the way back to month start.
	if ov.StreakDays != 31 {
		t.Fatalf("streak = %d, want 31", ov.StreakDays)
	}
}
