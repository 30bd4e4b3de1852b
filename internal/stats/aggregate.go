package stats

import (
	"time"

	"pentefino/internal/core"
)

// Stats is the aggregation output consumed by the dashboard.
type Stats struct {
	TotalIncome      float64     `json:"totalIncome"`
	TotalExpense     float64     `json:"totalExpense"`
	TotalCommissions float64     `json:"totalCommissions"`
	Balance          float64     `json:"balance"`
	NetProfit        float64     `json:"netProfit"`
	Count            int         `json:"count"`
	Comparison       *Comparison `json:"comparison,omitempty"`
}

// Aggregate reduces a transaction subset to its statistics. commissionRate
// is an integer percent applied to service income. Every derived number
// goes through integer-cent arithmetic end to end.
func Aggregate(subset []core.Transaction, commissionRate int) Stats {
	var incomes, expenses, serviceIncomes []float64
	for _, tx := range subset {
		switch tx.Type {
		case core.Income:
			incomes = append(incomes, tx.Amount)
			if tx.Income != nil && tx.Income.RevenueType == core.RevenueServices {
				serviceIncomes = append(serviceIncomes, tx.Amount)
			}
		case core.Expense:
			expenses = append(expenses, tx.Amount)
		}
	}

	totalIncome := core.SumCents(incomes)
	totalExpense := core.SumCents(expenses)
	serviceIncome := core.SumCents(serviceIncomes)
	totalCommissions := core.PercentageOf(serviceIncome, commissionRate)
	balance := core.FromCents(core.ToCents(totalIncome) - core.ToCents(totalExpense))
	netProfit := core.FromCents(core.ToCents(balance) - core.ToCents(totalCommissions))

	return Stats{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		TotalCommissions: totalCommissions,
		Balance:          balance,
		NetProfit:        netProfit,
		Count:            len(subset),
	}
}

// StatsFor composes Filter, Aggregate and Compare over the full transaction
// collection: current-period stats plus, when the selection supports it,
// trends against the inferred prior period.
func StatsFor(transactions []core.Transaction, sel Selection, now time.Time, commissionRate int) Stats {
	subset := Filter(transactions, sel, now)
	s := Aggregate(subset, commissionRate)
	s.Comparison = Compare(transactions, sel, now, commissionRate)
	return s
}
