// Package stats derives dashboard views from the transaction log: date-range
// filtering, income/expense aggregation and period-over-period trends. All
// functions are pure; callers recompute them from the store's snapshot on
// every change.
package stats

import (
	"strings"
	"time"

	"pentefino/internal/core"
)

// Range identifies a calendar bucket for the dashboard filter.
type Range string

const (
	RangeToday     Range = "today"
	RangeYesterday Range = "yesterday"
	RangeLast7     Range = "last7"
	RangeLast14    Range = "last14"
	RangeThisMonth Range = "thisMonth"
	RangeCustom    Range = "custom"
	RangeAll       Range = "all"
)

// Selection is the active dashboard filter. Start and End are YYYY-MM-DD
// strings and only meaningful for RangeCustom. Search, when non-empty, is
// ANDed after the date predicate as a case-insensitive substring match on
// the description.
type Selection struct {
	Range  Range
	Start  string
	End    string
	Search string
}

// Filter returns the subset of transactions matching the selection,
// evaluated against now. Transactions whose ledger date fails to parse are
// excluded from every date-ranged view: dates are user-entered with no
// format validation elsewhere.
func Filter(transactions []core.Transaction, sel Selection, now time.Time) []core.Transaction {
	var out []core.Transaction
	for _, tx := range transactions {
		if !matchesDate(tx, sel, now) {
			continue
		}
		if sel.Search != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(sel.Search)) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func matchesDate(tx core.Transaction, sel Selection, now time.Time) bool {
	if sel.Range == RangeAll || sel.Range == "" {
		return true
	}

	d, err := core.ParseLedgerDate(tx.Date)
	if err != nil {
		return false
	}
	today := core.Midnight(now)

	switch sel.Range {
	case RangeToday:
		return d.Equal(today)
	case RangeYesterday:
		return d.Equal(today.AddDate(0, 0, -1))
	case RangeLast7:
		// Inclusive lower bound, no upper bound: future-dated entries
		// match. Kept for compatibility with the existing ledgers.
		return !d.Before(today.AddDate(0, 0, -7))
	case RangeLast14:
		return !d.Before(today.AddDate(0, 0, -14))
	case RangeThisMonth:
		return d.Year() == today.Year() && d.Month() == today.Month()
	case RangeCustom:
		start, err := time.ParseInLocation("2006-01-02", sel.Start, now.Location())
		if err != nil {
			return false
		}
		end, err := time.ParseInLocation("2006-01-02", sel.End, now.Location())
		if err != nil {
			return false
		}
		return !d.Before(start) && !d.After(end)
	default:
		return false
	}
}
