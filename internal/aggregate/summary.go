package aggregate

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

// Summary contains all derived views for one month.
type Summary struct {
	Month               types.MonthKey                      `json:"month" example:"2024-03"`         // The selected month
	BudgetPolicy        string                              `json:"budgetPolicy" example:"sum"`      // How duplicate budgets are combined
	TotalExpenses       decimal.Decimal                     `json:"totalExpenses" example:"1530.40"` // Sum of all transactions, all months
	TotalBudget         decimal.Decimal                     `json:"totalBudget" example:"2400"`      // Sum of all budgets, all months
	MonthlyTotal        decimal.Decimal                     `json:"monthlyTotal" example:"150"`      // Sum of the transactions in the selected month
	MonthlyTransactions []models.Transaction                `json:"monthlyTransactions"`             // Transactions in the selected month
	BudgetsThisMonth    []models.Budget                     `json:"budgetsThisMonth"`                // Budgets for the selected month
	BudgetMap           map[models.Category]decimal.Decimal `json:"budgetMap"`                       // Budget amount per category in the selected month
	SpentByCategory     []CategorySpend                     `json:"spentByCategory"`                 // Spend and budget for every category
	Overspent           []CategorySpend                     `json:"overspent"`                       // Categories that spent more than their budget
	PieData             []CategorySpend                     `json:"pieData"`                         // Categories with spend
	BarData             []MonthTotal                        `json:"barData"`                         // Totals for every month with transactions
	FilteredBarData     []MonthTotal                        `json:"filteredBarData"`                 // Totals for every month with spend
	RecentTransactions  []models.Transaction                `json:"recentTransactions"`              // The first transactions of the selected month
	BudgetBars          []BudgetBar                         `json:"budgetBars"`                      // Spend versus budget per category
}

// Summarize computes all views for the month.
func Summarize(transactions []models.Transaction, budgets []models.Budget, month types.MonthKey, policy BudgetPolicy) Summary {
	monthly := MonthlyTransactions(transactions, month)
	spent := SpentByCategory(transactions, budgets, month, policy)
	bars := BarData(transactions)

	return Summary{
		Month:               month,
		BudgetPolicy:        policy.String(),
		TotalExpenses:       TotalExpenses(transactions),
		TotalBudget:         TotalBudget(budgets),
		MonthlyTotal:        TotalExpenses(monthly),
		MonthlyTransactions: monthly,
		BudgetsThisMonth:    BudgetsForMonth(budgets, month),
		BudgetMap:           BudgetMap(budgets, month, policy),
		SpentByCategory:     spent,
		Overspent:           Overspent(spent),
		PieData:             PieData(spent),
		BarData:             bars,
		FilteredBarData:     FilteredBarData(bars),
		RecentTransactions:  Recent(monthly),
		BudgetBars:          BudgetBars(spent),
	}
}
