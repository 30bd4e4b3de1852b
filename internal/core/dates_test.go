package core

import (
	"testing"
	"time"
)

func TestParseLedgerDate(t *testing.T) {
	cases := []struct {
		in  string
		ok  bool
		y   int
		m   time.Month
		d   int
	}{
		{"01/06/2024", true, 2024, time.June, 1},
		{"31/12/1999", true, 1999, time.December, 31},
		{" 5/1/2025 ", true, 2025, time.January, 5},
		{"2024-06-01", false, 0, 0, 0},
		{"32/01/2024", false, 0, 0, 0},
		{"01/13/2024", false, 0, 0, 0},
		{"aa/bb/cccc", false, 0, 0, 0},
		{"", false, 0, 0, 0},
	}
	for _, tc := range cases {
		got, err := ParseLedgerDate(tc.in)
		if !tc.ok {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q unexpected error: %v", tc.in, err)
		}
		if got.Year() != tc.y || got.Month() != tc.m || got.Day() != tc.d {
			t.Fatalf("%q parsed to %v", tc.in, got)
		}
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Fatalf("%q not normalized to midnight: %v", tc.in, got)
		}
	}
}

func TestLedgerDateRoundTrip(t *testing.T) {
	in := "07/03/2025"
	d, err := ParseLedgerDate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatLedgerDate(d); got != in {
		t.Fatalf("round trip gave %q", got)
	}
}

func TestNextReferenceMonth(t *testing.T) {
	cases := []struct {
		m, y   int
		nm, ny int
	}{
		{1, 2024, 2, 2024},
		{11, 2024, 12, 2024},
		{12, 2024, 1, 2025},
	}
	for _, tc := range cases {
		nm, ny := NextReferenceMonth(tc.m, tc.y)
		if nm != tc.nm || ny != tc.ny {
			t.Fatalf("NextReferenceMonth(%d, %d) = %d, %d", tc.m, tc.y, nm, ny)
		}
	}
}

func TestFormatReferenceMonth(t *testing.T) {
	if got := FormatReferenceMonth(1, 2025); got != "1/2025" {
		t.Fatalf("expected 1/2025, got %q", got)
	}
	m, y, err := ParseReferenceMonth("11/2024")
	if err != nil || m != 11 || y != 2024 {
		t.Fatalf("ParseReferenceMonth gave %d, %d, %v", m, y, err)
	}
}
