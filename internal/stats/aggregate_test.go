package stats

import (
	"testing"

	"pentefino/internal/core"
)

func TestAggregateEndToEnd(t *testing.T) {
	subset := []core.Transaction{
		{Description: "corte", Date: "01/06/2024", Amount: 100, Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueServices}},
		{Description: "produtos", Date: "02/06/2024", Amount: 40, Type: core.Expense, Expense: &core.ExpenseDetails{ExpenseType: core.ExpenseProfessional}},
	}

	s := Aggregate(subset, 50)

	if s.TotalIncome != 100 {
		t.Fatalf("totalIncome expected 100, got %v", s.TotalIncome)
	}
	if s.TotalExpense != 40 {
		t.Fatalf("totalExpense expected 40, got %v", s.TotalExpense)
	}
	if s.TotalCommissions != 50 {
		t.Fatalf("totalCommissions expected 50, got %v", s.TotalCommissions)
	}
	if s.Balance != 60 {
		t.Fatalf("balance expected 60, got %v", s.Balance)
	}
	if s.NetProfit != 10 {
		t.Fatalf("netProfit expected 10, got %v", s.NetProfit)
	}
	if s.Count != 2 {
		t.Fatalf("count expected 2, got %d", s.Count)
	}
}

func TestAggregateEmptySubset(t *testing.T) {
	s := Aggregate(nil, 50)
	if s.TotalIncome != 0 || s.TotalExpense != 0 || s.TotalCommissions != 0 || s.Balance != 0 || s.NetProfit != 0 || s.Count != 0 {
		t.Fatalf("empty subset must aggregate to all zeros, got %+v", s)
	}
}

func TestAggregateConsistency(t *testing.T) {
	subset := []core.Transaction{
		{Amount: 0.1, Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueServices}},
		{Amount: 0.2, Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueProducts}},
		{Amount: 0.1, Type: core.Expense, Expense: &core.ExpenseDetails{ExpenseType: core.ExpensePersonal}},
		{Amount: 33.33, Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueServices}},
	}
	for _, rate := range []int{0, 10, 50, 100} {
		s := Aggregate(subset, rate)
		if core.ToCents(s.Balance) != core.ToCents(s.TotalIncome)-core.ToCents(s.TotalExpense) {
			t.Fatalf("rate %d: balance != income - expense: %+v", rate, s)
		}
		if core.ToCents(s.NetProfit) != core.ToCents(s.Balance)-core.ToCents(s.TotalCommissions) {
			t.Fatalf("rate %d: netProfit != balance - commissions: %+v", rate, s)
		}
	}
}

func TestAggregateCommissionOnlyOnServices(t *testing.T) {
	subset := []core.Transaction{
		{Amount: 100, Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueServices}},
		{Amount: 500, Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueProducts}},
		{Amount: 200, Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueCourses}},
	}
	s := Aggregate(subset, 50)
	if s.TotalCommissions != 50 {
		t.Fatalf("commission must apply to service income only, got %v", s.TotalCommissions)
	}
}

func TestStatsForComposesComparison(t *testing.T) {
	txs := []core.Transaction{
		{Description: "hoje", Date: "15/06/2024", Amount: 100, Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueServices}},
		{Description: "ontem", Date: "14/06/2024", Amount: 50, Type: core.Income, Income: &core.IncomeDetails{RevenueType: core.RevenueServices}},
	}
	s := StatsFor(txs, Selection{Range: RangeToday}, testNow, 0)
	if s.TotalIncome != 100 || s.Count != 1 {
		t.Fatalf("unexpected current stats: %+v", s)
	}
	if s.Comparison == nil || s.Comparison.IncomeTrend != "+100.0%" {
		t.Fatalf("expected +100.0%% income trend, got %+v", s.Comparison)
	}
}
