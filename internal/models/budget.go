package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/types"
	"gorm.io/gorm"
)

// BudgetEditable contains the fields of a Budget that can be set
// through the API.
type BudgetEditable struct {
	Category Category        `json:"category" gorm:"check:budget_category_valid,category IN ('Food','Housing','Transport','Utilities','Entertainment','Health','Other')" example:"Food" enums:"Food,Housing,Transport,Utilities,Entertainment,Health,Other"` // Category the budget applies to
	Month    types.MonthKey  `json:"month" gorm:"index" example:"2024-03"`                                                                                                                                                                               // Month in YYYY-MM format
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);check:budget_amount_non_negative,amount >= 0" example:"400" minimum:"0"`                                                                                                           // The budgeted amount
}

// Budget is the amount an owner plans to spend for a category in a month.
//
// Nothing prevents multiple budgets for the same category and month.
type Budget struct {
	DefaultModel
	OwnerID string `json:"ownerId" gorm:"index;not null" example:"user_2abc"` // The owner key the budget is scoped to
	BudgetEditable
}

// BeforeSave trims whitespace and validates the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.OwnerID = strings.TrimSpace(b.OwnerID)
	b.Month = types.MonthKey(strings.TrimSpace(string(b.Month)))

	return b.Validate()
}

// Validate checks the budget against the schema constraints.
func (b Budget) Validate() error {
	if b.OwnerID == "" {
		return ErrMissingOwner
	}

	if err := b.Category.validate(); err != nil {
		return err
	}

	if b.Month == "" {
		return fmt.Errorf("%w: month is required", ErrValidation)
	}

	if !b.Month.Valid() {
		return fmt.Errorf("%w: %s", ErrValidation, types.ErrInvalidMonth)
	}

	if b.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	return nil
}
