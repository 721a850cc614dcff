package controllers

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
)

// TransactionCreate is the body to create a transaction.
type TransactionCreate struct {
	OwnerID string              `json:"ownerId" example:"user_2abc"`              // The owner key
	Amount  decimal.NullDecimal `json:"amount" example:"14.03" minimum:"0" swaggertype:"number"` // The amount of the transaction. Required
	models.TransactionEditable
}

// model returns the database resource for the owner.
//
// The amount is mandatory on creation, so an absent or null amount
// is rejected instead of being stored as zero.
func (create TransactionCreate) model(ownerID string) (models.Transaction, error) {
	if !create.Amount.Valid {
		return models.Transaction{}, fmt.Errorf("%w: amount is required", models.ErrValidation)
	}

	editable := create.TransactionEditable
	editable.Amount = create.Amount.Decimal

	return models.Transaction{
		OwnerID: ownerID,
		TransactionEditable: editable,
	}, nil
}

// TransactionUpdate is the body to update a transaction. Only fields
// that are present are updated.
type TransactionUpdate struct {
	OwnerID string `json:"ownerId" example:"user_2abc"` // The owner key. Used for scoping, cannot be changed
	models.TransactionEditable
}
