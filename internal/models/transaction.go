package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/types"
	"gorm.io/gorm"
)

// TransactionEditable contains the fields of a Transaction that can be set
// through the API.
type TransactionEditable struct {
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);check:transaction_amount_non_negative,amount >= 0" example:"14.03" minimum:"0"`                                                            // The amount of the transaction
	Date        types.Date      `json:"date" gorm:"index" example:"2024-03-05T00:00:00Z"`                                                                                                                         // Date of the transaction
	Description string          `json:"description" example:"Groceries"`                                                                                                                                          // What the money was spent on
	Category    Category        `json:"category" gorm:"check:transaction_category_valid,category IN ('Food','Housing','Transport','Utilities','Entertainment','Health','Other')" example:"Food" enums:"Food,Housing,Transport,Utilities,Entertainment,Health,Other"` // Category of the transaction
}

// Transaction is a single expense of an owner.
type Transaction struct {
	DefaultModel
	OwnerID string `json:"ownerId" gorm:"index;not null" example:"user_2abc"` // The owner key the transaction is scoped to
	TransactionEditable
}

// MonthKey returns the month the transaction is aggregated in.
func (t Transaction) MonthKey() types.MonthKey {
	return t.Date.MonthKey()
}

// BeforeSave trims whitespace and validates the transaction.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.OwnerID = strings.TrimSpace(t.OwnerID)

	return t.Validate()
}

// Validate checks the transaction against the schema constraints.
func (t Transaction) Validate() error {
	if t.OwnerID == "" {
		return ErrMissingOwner
	}

	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}

	return t.Category.validate()
}
