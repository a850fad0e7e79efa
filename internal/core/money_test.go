package core

import "testing"

func TestParseDollarsToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
	}{
		{"1", 100},
		{"1.0", 100},
		{"1.23", 123},
		{"0.01", 1},
		{"12.345", 1235}, // half-up rounding on the third decimal
		{"12.344", 1234},
		{" 2.50 ", 250},
		{"999999.99", 99999999},
		{"abc", 0},
		{"12abc", 0},
		{"-1", 0},
		{"+1", 0},
		{"1.2.3", 0},
		{"", 0},
		{"   ", 0},
	}
	for _, tc := range cases {
		if got := ParseDollarsToCents(tc.in); got != tc.out {
			t.Errorf("ParseDollarsToCents(%q) = %d, want %d", tc.in, got, tc.out)
		}
	}
}

func TestCentsToDollars(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1250, "12.50"},
		{100000, "1000.00"},
		{-325, "-3.25"},
	}
	for _, tc := range cases {
		if got := CentsToDollars(tc.in); got != tc.out {
			t.Errorf("CentsToDollars(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in  int64
		out string
	}{
		{0, "$0.00"},
		{123, "$1.23"},
		{123456, "$1,234.56"},
		{123456789, "$1,234,567.89"},
		{-1500, "-$15.00"},
	}
	for _, tc := range cases {
		if got := FormatUSD(tc.in); got != tc.out {
			t.Errorf("FormatUSD(%d) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
