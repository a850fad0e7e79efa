package core

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Category is the fixed classification label for an expense.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryBills          Category = "Bills"
	CategoryOther          Category = "Other"
)

// Categories returns the closed set of valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBills,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransportation, CategoryEntertainment,
		CategoryShopping, CategoryBills, CategoryOther:
		return true
	default:
		return false
	}
}

// Expense is a single recorded spending event. Records are immutable once
// read; the store replaces them wholesale on update.
type Expense struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Amount      int64     `json:"amount"` // cents
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FormData is raw form input for creating or updating an expense.
// Amount carries the dollar-denominated string exactly as the user typed it.
type FormData struct {
	Date        time.Time
	Amount      string
	Category    Category
	Description string
}

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

const (
	maxAmountCents = 99999999 // 999,999.99
	maxDescription = 200
)

// Validate checks raw form input and returns field-level errors.
// A nil return means the input is safe to hand to the store.
func (f FormData) Validate() FieldErrors {
	errs := FieldErrors{}

	if f.Date.IsZero() {
		errs["date"] = "Date is required"
	}

	amount := strings.TrimSpace(f.Amount)
	if amount == "" {
		errs["amount"] = "Amount is required"
	} else if cents := ParseDollarsToCents(amount); cents <= 0 || cents > maxAmountCents {
		errs["amount"] = "Amount must be a valid number between 0.01 and 999,999.99"
	}

	if !f.Category.Valid() {
		errs["category"] = "Category must be one of the known categories"
	}

	if len(strings.TrimSpace(f.Description)) == 0 {
		errs["description"] = "Description is required"
	} else if len(f.Description) > maxDescription {
		errs["description"] = "Description must be 200 characters or less"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
