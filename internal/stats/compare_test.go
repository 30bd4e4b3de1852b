package stats

import (
	"testing"
	"time"

	"pentefino/internal/core"
)

func serviceIncome(date string, amount float64) core.Transaction {
	return core.Transaction{
		Description: "corte",
		Date:        date,
		Amount:      amount,
		Type:        core.Income,
		Income:      &core.IncomeDetails{RevenueType: core.RevenueServices},
	}
}

func expenseOn(date string, amount float64) core.Transaction {
	return core.Transaction{
		Description: "insumos",
		Date:        date,
		Amount:      amount,
		Type:        core.Expense,
		Expense:     &core.ExpenseDetails{ExpenseType: core.ExpenseProfessional},
	}
}

func TestCompareToday(t *testing.T) {
	txs := []core.Transaction{
		serviceIncome("15/06/2024", 150), // today
		serviceIncome("14/06/2024", 100), // yesterday = prior period
	}
	c := Compare(txs, Selection{Range: RangeToday}, testNow, 0)
	if c == nil {
		t.Fatalf("expected a comparison")
	}
	if c.IncomeTrend != "+50.0%" {
		t.Fatalf("income trend expected +50.0%%, got %q", c.IncomeTrend)
	}
}

func TestCompareLast7HalfOpenWindow(t *testing.T) {
	txs := []core.Transaction{
		serviceIncome("10/06/2024", 100), // current window
		serviceIncome("08/06/2024", 100), // boundary day: current window only
		serviceIncome("07/06/2024", 50),  // prior window
		serviceIncome("01/06/2024", 50),  // prior window lower bound
		serviceIncome("31/05/2024", 999), // outside both
	}
	c := Compare(txs, Selection{Range: RangeLast7}, testNow, 0)
	if c == nil {
		t.Fatalf("expected a comparison")
	}
	// current = 200, previous = 100
	if c.IncomeTrend != "+100.0%" {
		t.Fatalf("income trend expected +100.0%%, got %q", c.IncomeTrend)
	}
}

func TestCompareThisMonthYearRollover(t *testing.T) {
	jan := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.Local)
	txs := []core.Transaction{
		serviceIncome("05/01/2025", 80),
		serviceIncome("20/12/2024", 100), // previous month, previous year
	}
	c := Compare(txs, Selection{Range: RangeThisMonth}, jan, 0)
	if c == nil {
		t.Fatalf("expected a comparison across the year boundary")
	}
	if c.IncomeTrend != "-20.0%" {
		t.Fatalf("income trend expected -20.0%%, got %q", c.IncomeTrend)
	}
}

func TestCompareUnsupportedRanges(t *testing.T) {
	txs := []core.Transaction{serviceIncome("14/06/2024", 100)}
	for _, sel := range []Selection{
		{Range: RangeYesterday},
		{Range: RangeLast14},
		{Range: RangeCustom, Start: "2024-06-01", End: "2024-06-15"},
		{Range: RangeAll},
	} {
		if c := Compare(txs, sel, testNow, 0); c != nil {
			t.Fatalf("range %s must not produce a comparison", sel.Range)
		}
	}
}

func TestCompareEmptyPriorPeriod(t *testing.T) {
	txs := []core.Transaction{serviceIncome("15/06/2024", 100)}
	if c := Compare(txs, Selection{Range: RangeToday}, testNow, 0); c != nil {
		t.Fatalf("empty prior period must yield no comparison, got %+v", c)
	}
}

func TestCompareZeroPreviousMetric(t *testing.T) {
	// Prior period has transactions but zero expense: the expense trend is
	// undefined, the others are not.
	txs := []core.Transaction{
		serviceIncome("15/06/2024", 100),
		expenseOn("15/06/2024", 20),
		serviceIncome("14/06/2024", 50),
	}
	c := Compare(txs, Selection{Range: RangeToday}, testNow, 0)
	if c == nil {
		t.Fatalf("expected a comparison")
	}
	if c.ExpenseTrend != "" {
		t.Fatalf("expense trend must be undefined when previous expense is zero, got %q", c.ExpenseTrend)
	}
	if c.IncomeTrend != "+100.0%" {
		t.Fatalf("income trend expected +100.0%%, got %q", c.IncomeTrend)
	}
}

func TestTrendSigns(t *testing.T) {
	cases := []struct {
		current, previous float64
		want              string
	}{
		{150, 100, "+50.0%"},
		{50, 100, "-50.0%"},
		{100, 100, "+0.0%"},
		{100, 0, ""},
		{-50, -100, "+50.0%"}, // |previous| in the denominator
	}
	for _, tc := range cases {
		if got := trend(tc.current, tc.previous); got != tc.want {
			t.Fatalf("trend(%v, %v) expected %q, got %q", tc.current, tc.previous, tc.want, got)
		}
	}
}
