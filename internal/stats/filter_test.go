package stats

import (
	"testing"
	"time"

	"pentefino/internal/core"
)

var testNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.Local)

func incomeOn(date string) core.Transaction {
	return core.Transaction{
		ID:          date,
		Description: "corte",
		Date:        date,
		Amount:      10,
		Type:        core.Income,
		Income:      &core.IncomeDetails{RevenueType: core.RevenueServices},
	}
}

func TestFilterRanges(t *testing.T) {
	txs := []core.Transaction{
		incomeOn("15/06/2024"), // today
		incomeOn("14/06/2024"), // yesterday
		incomeOn("08/06/2024"), // exactly 7 days back
		incomeOn("07/06/2024"), // 8 days back
		incomeOn("01/06/2024"), // 14 days back
		incomeOn("31/05/2024"), // previous month
		incomeOn("20/06/2024"), // future-dated
	}

	cases := []struct {
		name string
		sel  Selection
		want []string
	}{
		{"today", Selection{Range: RangeToday}, []string{"15/06/2024"}},
		{"yesterday", Selection{Range: RangeYesterday}, []string{"14/06/2024"}},
		// Inclusive lower bound, future dates not excluded.
		{"last7", Selection{Range: RangeLast7}, []string{"15/06/2024", "14/06/2024", "08/06/2024", "20/06/2024"}},
		{"last14", Selection{Range: RangeLast14}, []string{"15/06/2024", "14/06/2024", "08/06/2024", "07/06/2024", "01/06/2024", "20/06/2024"}},
		{"thisMonth", Selection{Range: RangeThisMonth}, []string{"15/06/2024", "14/06/2024", "08/06/2024", "07/06/2024", "01/06/2024", "20/06/2024"}},
		{"custom", Selection{Range: RangeCustom, Start: "2024-06-07", End: "2024-06-14"}, []string{"14/06/2024", "08/06/2024", "07/06/2024"}},
		{"all", Selection{Range: RangeAll}, []string{"15/06/2024", "14/06/2024", "08/06/2024", "07/06/2024", "01/06/2024", "31/05/2024", "20/06/2024"}},
	}

	for _, tc := range cases {
		got := Filter(txs, tc.sel, testNow)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %d matches, got %d", tc.name, len(tc.want), len(got))
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Fatalf("%s: position %d expected %s, got %s", tc.name, i, id, got[i].ID)
			}
		}
	}
}

func TestFilterBoundaryPartition(t *testing.T) {
	// A transaction dated exactly 7 days before now is inside last7; one day
	// further out is not.
	in := []core.Transaction{incomeOn("08/06/2024")}
	if got := Filter(in, Selection{Range: RangeLast7}, testNow); len(got) != 1 {
		t.Fatalf("7-days-back transaction must match last7")
	}
	out := []core.Transaction{incomeOn("07/06/2024")}
	if got := Filter(out, Selection{Range: RangeLast7}, testNow); len(got) != 0 {
		t.Fatalf("8-days-back transaction must not match last7")
	}
}

func TestFilterMalformedDateExcluded(t *testing.T) {
	txs := []core.Transaction{incomeOn("not-a-date")}
	for _, r := range []Range{RangeToday, RangeYesterday, RangeLast7, RangeLast14, RangeThisMonth} {
		if got := Filter(txs, Selection{Range: r}, testNow); len(got) != 0 {
			t.Fatalf("malformed date must not match %s", r)
		}
	}
	// The default passthrough applies no date predicate.
	if got := Filter(txs, Selection{Range: RangeAll}, testNow); len(got) != 1 {
		t.Fatalf("all must pass malformed dates through")
	}
}

func TestFilterSearch(t *testing.T) {
	txs := []core.Transaction{
		{ID: "1", Description: "Corte degradê", Date: "15/06/2024", Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueServices}},
		{ID: "2", Description: "Pomada", Date: "15/06/2024", Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueProducts}},
	}
	got := Filter(txs, Selection{Range: RangeToday, Search: "CORTE"}, testNow)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("search must be case-insensitive and ANDed with the date predicate, got %v", got)
	}
}

func TestFilterCustomBadBounds(t *testing.T) {
	txs := []core.Transaction{incomeOn("15/06/2024")}
	if got := Filter(txs, Selection{Range: RangeCustom, Start: "junk", End: "2024-06-30"}, testNow); len(got) != 0 {
		t.Fatalf("unparseable custom bounds must match nothing")
	}
}
