package aggregate

import (
	"errors"
	"fmt"
)

var ErrUnknownBudgetPolicy = errors.New("budgetPolicy must be one of 'sum', 'last'")

// BudgetPolicy decides how multiple budgets for the same category in
// the same month are combined into one budget amount.
type BudgetPolicy int

const (
	// SumDuplicates adds up all budgets of a category.
	SumDuplicates BudgetPolicy = iota

	// LastWins keeps the amount of the budget that comes last in the input.
	LastWins
)

// ParseBudgetPolicy parses the query parameter representation of a policy.
// An empty string yields the default, SumDuplicates.
func ParseBudgetPolicy(s string) (BudgetPolicy, error) {
	switch s {
	case "", "sum":
		return SumDuplicates, nil
	case "last":
		return LastWins, nil
	}

	return SumDuplicates, fmt.Errorf("%w, got '%s'", ErrUnknownBudgetPolicy, s)
}

func (p BudgetPolicy) String() string {
	if p == LastWins {
		return "last"
	}
	return "sum"
}
