package stats

import (
	"fmt"
	"math"
	"time"

	"pentefino/internal/core"
)

// Comparison holds period-over-period trend strings. An empty string means
// the trend is undefined for that metric (previous value was zero).
type Comparison struct {
	IncomeTrend  string `json:"incomeTrend,omitempty"`
	ExpenseTrend string `json:"expenseTrend,omitempty"`
	ProfitTrend  string `json:"profitTrend,omitempty"`
	BalanceTrend string `json:"balanceTrend,omitempty"`
}

// Compare computes trends against a structurally comparable prior period
// over the full (unfiltered) transaction collection. Only today, last7 and
// thisMonth have a defined prior period; every other selection returns nil.
// A prior period with zero matching transactions also returns nil: trends
// are undefined there, not zero.
func Compare(transactions []core.Transaction, sel Selection, now time.Time, commissionRate int) *Comparison {
	match, ok := priorPeriod(sel.Range, core.Midnight(now))
	if !ok {
		return nil
	}

	var prior []core.Transaction
	for _, tx := range transactions {
		d, err := core.ParseLedgerDate(tx.Date)
		if err != nil {
			continue
		}
		if match(d) {
			prior = append(prior, tx)
		}
	}
	if len(prior) == 0 {
		return nil
	}

	current := Aggregate(Filter(transactions, Selection{Range: sel.Range, Start: sel.Start, End: sel.End}, now), commissionRate)
	previous := Aggregate(prior, commissionRate)

	return &Comparison{
		IncomeTrend:  trend(current.TotalIncome, previous.TotalIncome),
		ExpenseTrend: trend(current.TotalExpense, previous.TotalExpense),
		ProfitTrend:  trend(current.NetProfit, previous.NetProfit),
		BalanceTrend: trend(current.Balance, previous.Balance),
	}
}

// priorPeriod returns a predicate matching the prior period's dates.
func priorPeriod(r Range, today time.Time) (func(time.Time) bool, bool) {
	switch r {
	case RangeToday:
		yesterday := today.AddDate(0, 0, -1)
		return func(d time.Time) bool { return d.Equal(yesterday) }, true
	case RangeLast7:
		// Half-open [today-14, today-7): the boundary day belongs to the
		// current window, never both.
		lo := today.AddDate(0, 0, -14)
		hi := today.AddDate(0, 0, -7)
		return func(d time.Time) bool { return !d.Before(lo) && d.Before(hi) }, true
	case RangeThisMonth:
		month := int(today.Month())
		year := today.Year()
		if month == 1 {
			month, year = 12, year-1
		} else {
			month--
		}
		return func(d time.Time) bool { return int(d.Month()) == month && d.Year() == year }, true
	default:
		return nil, false
	}
}

// trend renders the percentage delta between current and previous as a
// signed one-decimal string ("+12.5%"). Undefined (empty) when previous is
// zero, guarding the division.
func trend(current, previous float64) string {
	prevCents := core.ToCents(previous)
	if prevCents == 0 {
		return ""
	}
	delta := float64(core.ToCents(current)-prevCents) / math.Abs(float64(prevCents)) * 100
	sign := "+"
	if delta < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%.1f%%", sign, math.Abs(delta))
}
