package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ledger dates are persisted as DD/MM/YYYY strings for compatibility with
// the existing stored data. They are parsed into time.Time at local
// midnight for every comparison; the raw strings are never compared
// lexicographically.

// ParseLedgerDate parses a DD/MM/YYYY string into a local-midnight time.
func ParseLedgerDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("parse ledger date %q: want DD/MM/YYYY", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse ledger date %q: %w", s, err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse ledger date %q: %w", s, err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse ledger date %q: %w", s, err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("parse ledger date %q: out of range", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// FormatLedgerDate renders a time as a DD/MM/YYYY ledger date string.
func FormatLedgerDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// ParseReferenceMonth parses an M/YYYY reference month into month and year.
func ParseReferenceMonth(s string) (month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("parse reference month %q: want M/YYYY", s)
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse reference month %q: %w", s, err)
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse reference month %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("parse reference month %q: month out of range", s)
	}
	return month, year, nil
}

// FormatReferenceMonth renders month and year as M/YYYY. The month carries
// no leading zero, matching the stored format.
func FormatReferenceMonth(month, year int) string {
	return fmt.Sprintf("%d/%d", month, year)
}

// NextReferenceMonth advances a reference month by one, rolling the year
// over at December.
func NextReferenceMonth(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}

// Midnight truncates a time to local midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
