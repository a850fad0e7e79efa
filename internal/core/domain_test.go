package core

import (
	"strings"
	"testing"
	"time"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	for _, c := range []Category{"", "food", "Groceries", "FOOD"} {
		if c.Valid() {
			t.Errorf("category %q should be invalid", c)
		}
	}
}

func TestFormDataValidate(t *testing.T) {
	good := FormData{
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:      "12.50",
		Category:    CategoryFood,
		Description: "Lunch",
	}
	if errs := good.Validate(); errs != nil {
		t.Fatalf("expected valid form, got %v", errs)
	}

	cases := []struct {
		name  string
		mut   func(f *FormData)
		field string
	}{
		{"zero date", func(f *FormData) { f.Date = time.Time{} }, "date"},
		{"empty amount", func(f *FormData) { f.Amount = "" }, "amount"},
		{"non-numeric amount", func(f *FormData) { f.Amount = "abc" }, "amount"},
		{"zero amount", func(f *FormData) { f.Amount = "0" }, "amount"},
		{"negative amount", func(f *FormData) { f.Amount = "-5" }, "amount"},
		{"amount over cap", func(f *FormData) { f.Amount = "1000000.00" }, "amount"},
		{"bad category", func(f *FormData) { f.Category = "Groceries" }, "category"},
		{"empty description", func(f *FormData) { f.Description = "  " }, "description"},
		{"long description", func(f *FormData) { f.Description = strings.Repeat("x", 201) }, "description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := good
			tc.mut(&f)
			errs := f.Validate()
			if errs == nil {
				t.Fatalf("expected error on field %q", tc.field)
			}
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error on field %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestDayHelpers(t *testing.T) {
	loc := time.UTC
	noon := time.Date(2024, 3, 13, 12, 30, 0, 0, loc) // a Wednesday

	if got := StartOfDay(noon); !got.Equal(time.Date(2024, 3, 13, 0, 0, 0, 0, loc)) {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := EndOfDay(noon); got.Day() != 13 || got.Hour() != 23 {
		t.Errorf("EndOfDay = %v", got)
	}
	if !SameDay(noon, StartOfDay(noon)) {
		t.Error("SameDay should hold for same calendar day")
	}
	if SameDay(noon, noon.AddDate(0, 0, 1)) {
		t.Error("SameDay should fail across days")
	}
	if got := StartOfMonth(noon); got.Day() != 1 || got.Month() != time.March {
		t.Errorf("StartOfMonth = %v", got)
	}
	if got := EndOfMonth(noon); got.Day() != 31 {
		t.Errorf("EndOfMonth = %v", got)
	}
	if got := StartOfWeek(noon); got.Weekday() != time.Sunday || got.Day() != 10 {
		t.Errorf("StartOfWeek = %v", got)
	}
	if got := EndOfWeek(noon); got.Weekday() != time.Saturday || got.Day() != 16 {
		t.Errorf("EndOfWeek = %v", got)
	}
}
