// Package aggregate derives the month-scoped views of the dashboard from
// the full transaction and budget lists of one owner.
//
// All functions are pure. They never modify their input and return
// non-nil slices, so an empty result encodes as [] in JSON.
package aggregate

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RecentLimit is the number of transactions in the recent transactions list.
const RecentLimit = 5

// CategorySpend is the spend of one category in the selected month,
// together with the budget for it.
type CategorySpend struct {
	Category models.Category `json:"category" example:"Food"`
	Value    decimal.Decimal `json:"value" example:"150"`  // Sum of the transaction amounts
	Budget   decimal.Decimal `json:"budget" example:"120"` // Budget for the category, 0 if none is set
}

// MonthTotal is the sum of all transaction amounts in one month.
type MonthTotal struct {
	Month types.MonthKey  `json:"month" example:"2024-03"`
	Total decimal.Decimal `json:"total" example:"150"`
}

// BudgetBar is one entry of the spend versus budget chart.
type BudgetBar struct {
	Category models.Category `json:"category" example:"Food"`
	Spent    decimal.Decimal `json:"spent" example:"150"`
	Budget   decimal.Decimal `json:"budget" example:"120"`
}

// TotalExpenses returns the sum of all transaction amounts, regardless of month.
func TotalExpenses(transactions []models.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// TotalBudget returns the sum of all budget amounts, regardless of month.
func TotalBudget(budgets []models.Budget) decimal.Decimal {
	sum := decimal.Zero
	for _, b := range budgets {
		sum = sum.Add(b.Amount)
	}
	return sum
}

// MonthlyTransactions returns the transactions in the month, in input order.
func MonthlyTransactions(transactions []models.Transaction, month types.MonthKey) []models.Transaction {
	monthly := make([]models.Transaction, 0)
	for _, t := range transactions {
		if t.MonthKey() == month {
			monthly = append(monthly, t)
		}
	}
	return monthly
}

// MonthlyTotal returns the sum of the transaction amounts in the month.
func MonthlyTotal(transactions []models.Transaction, month types.MonthKey) decimal.Decimal {
	return TotalExpenses(MonthlyTransactions(transactions, month))
}

// BudgetsForMonth returns the budgets for the month, in input order.
func BudgetsForMonth(budgets []models.Budget, month types.MonthKey) []models.Budget {
	monthly := make([]models.Budget, 0)
	for _, b := range budgets {
		if b.Month == month {
			monthly = append(monthly, b)
		}
	}
	return monthly
}

// BudgetMap maps each category with a budget in the month to its budget amount.
func BudgetMap(budgets []models.Budget, month types.MonthKey, policy BudgetPolicy) map[models.Category]decimal.Decimal {
	m := make(map[models.Category]decimal.Decimal)
	for _, b := range BudgetsForMonth(budgets, month) {
		if policy == LastWins {
			m[b.Category] = b.Amount
			continue
		}

		m[b.Category] = m[b.Category].Add(b.Amount)
	}
	return m
}

// SpentByCategory returns one entry for every category of the enumeration,
// in enumeration order. Categories without transactions have a value of 0.
func SpentByCategory(transactions []models.Transaction, budgets []models.Budget, month types.MonthKey, policy BudgetPolicy) []CategorySpend {
	spent := make(map[models.Category]decimal.Decimal)
	for _, t := range MonthlyTransactions(transactions, month) {
		spent[t.Category] = spent[t.Category].Add(t.Amount)
	}

	budgetMap := BudgetMap(budgets, month, policy)

	result := make([]CategorySpend, 0, len(models.Categories))
	for _, c := range models.Categories {
		result = append(result, CategorySpend{
			Category: c,
			Value:    spent[c],
			Budget:   budgetMap[c],
		})
	}
	return result
}

// Overspent returns the categories that have a budget and spent more than it.
//
// A category without a budget is never overspent.
func Overspent(spent []CategorySpend) []CategorySpend {
	return filter(spent, func(c CategorySpend) bool {
		return c.Budget.IsPositive() && c.Value.GreaterThan(c.Budget)
	})
}

// PieData returns the categories with spend.
func PieData(spent []CategorySpend) []CategorySpend {
	return filter(spent, func(c CategorySpend) bool {
		return c.Value.IsPositive()
	})
}

// BarData returns the total for every month that has at least one
// transaction, sorted ascending by month.
func BarData(transactions []models.Transaction) []MonthTotal {
	totals := make(map[types.MonthKey]decimal.Decimal)
	months := make([]types.MonthKey, 0)

	for _, t := range transactions {
		key := t.MonthKey()
		if _, ok := totals[key]; !ok {
			months = append(months, key)
		}
		totals[key] = totals[key].Add(t.Amount)
	}

	// YYYY-MM sorts chronologically as a string
	slices.Sort(months)

	result := make([]MonthTotal, 0, len(months))
	for _, m := range months {
		result = append(result, MonthTotal{Month: m, Total: totals[m]})
	}
	return result
}

// FilteredBarData returns the months of bar data that have a total other than 0.
func FilteredBarData(bars []MonthTotal) []MonthTotal {
	return filter(bars, func(m MonthTotal) bool {
		return !m.Total.IsZero()
	})
}

// Recent returns the first RecentLimit transactions.
//
// It does not sort. Lists from the API are sorted by date descending,
// so these are the most recent transactions.
func Recent(transactions []models.Transaction) []models.Transaction {
	n := min(len(transactions), RecentLimit)
	return append(make([]models.Transaction, 0, n), transactions[:n]...)
}

// BudgetBars converts the per category spend into chart entries.
func BudgetBars(spent []CategorySpend) []BudgetBar {
	bars := make([]BudgetBar, 0, len(spent))
	for _, c := range spent {
		bars = append(bars, BudgetBar{
			Category: c.Category,
			Spent:    c.Value,
			Budget:   c.Budget,
		})
	}
	return bars
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
