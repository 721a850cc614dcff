package controllers

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

// BudgetCreate is the body to create a budget.
type BudgetCreate struct {
	OwnerID string              `json:"ownerId" example:"user_2abc"`              // The owner key
	Amount  decimal.NullDecimal `json:"amount" example:"400" minimum:"0" swaggertype:"number"` // The budgeted amount. Required
	models.BudgetEditable
}

// model returns the database resource for the owner.
//
// The amount is mandatory on creation, so an absent or null amount
// is rejected instead of being stored as zero.
func (create BudgetCreate) model(ownerID string) (models.Budget, error) {
	if !create.Amount.Valid {
		return models.Budget{}, fmt.Errorf("%w: amount is required", models.ErrValidation)
	}

	editable := create.BudgetEditable
	editable.Amount = create.Amount.Decimal

	return models.Budget{
		OwnerID: ownerID,
		BudgetEditable: editable,
	}, nil
}

// BudgetUpdate is the body to update a budget. Only fields that are
// present are updated.
type BudgetUpdate struct {
	OwnerID string `json:"ownerId" example:"user_2abc"` // The owner key. Used for scoping, cannot be changed
	models.BudgetEditable
}
