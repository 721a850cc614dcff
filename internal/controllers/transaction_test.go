package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/controllers"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"github.com/spendwise/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

const transactionsURL = "http://example.com/api/transactions"

func (suite *TestSuiteStandard) createTestTransactionHTTP(body any, expectedStatus ...int) models.Transaction {
	if len(expectedStatus) == 0 {
		expectedStatus = []int{http.StatusCreated}
	}

	r := test.Request(suite.T(), http.MethodPost, transactionsURL, body)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var transaction models.Transaction
	if r.Code == http.StatusCreated {
		test.DecodeResponse(suite.T(), &r, &transaction)
	}

	return transaction
}

func transactionBody(owner string, amount float64, date, description string, category models.Category) map[string]any {
	return map[string]any{
		"ownerId":     owner,
		"amount":      amount,
		"date":        date,
		"description": description,
		"category":    category,
	}
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, transactionsURL, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("%s/%s", transactionsURL, uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, transactionsURL+"/not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	transaction := suite.createTestTransactionHTTP(transactionBody("user_1", 42.5, "2024-03-05", "  Groceries ", models.CategoryFood))

	suite.Assert().NotEqual(uuid.Nil, transaction.ID)
	suite.Assert().Equal("user_1", transaction.OwnerID)
	suite.Assert().True(decimal.NewFromFloat(42.5).Equal(transaction.Amount))
	suite.Assert().True(types.NewDate(2024, time.March, 5).Equal(transaction.Date))
	suite.Assert().Equal("Groceries", transaction.Description)
	suite.Assert().Equal(models.CategoryFood, transaction.Category)
	suite.Assert().False(transaction.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionsCreateJSONFormat() {
	r := test.Request(suite.T(), http.MethodPost, transactionsURL, transactionBody("user_1", 12.3, "2024-03-05", "Bus", models.CategoryTransport))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	body := r.Body.String()
	suite.Assert().Equal(gjson.Number, gjson.Get(body, "amount").Type, "amount must be a JSON number")
	suite.Assert().Equal(12.3, gjson.Get(body, "amount").Float())
	suite.Assert().Equal("2024-03-05T00:00:00Z", gjson.Get(body, "date").String())
	suite.Assert().True(gjson.Get(body, "id").Exists())
	suite.Assert().True(gjson.Get(body, "createdAt").Exists())
}

func (suite *TestSuiteStandard) TestTransactionsCreateOwnerFromQuery() {
	body := transactionBody("", 5, "2024-03-05", "Coffee", models.CategoryFood)
	delete(body, "ownerId")

	r := test.Request(suite.T(), http.MethodPost, transactionsURL+"?ownerId=public", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	suite.Assert().Equal("public", gjson.Get(r.Body.String(), "ownerId").String())
}

func (suite *TestSuiteStandard) TestTransactionsCreateOwnerPrecedence() {
	body := transactionBody(" user_1 ", 5, "2024-03-05", "Coffee", models.CategoryFood)

	r := test.Request(suite.T(), http.MethodPost, transactionsURL+"?ownerId=user_2", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	suite.Assert().Equal("user_1", gjson.Get(r.Body.String(), "ownerId").String(), "body owner must take precedence over the query")

	delete(body, "ownerId")
	r = test.Request(suite.T(), http.MethodPost, transactionsURL+"?ownerId=%20%20", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "ownerId required")

	r = test.Request(suite.T(), http.MethodPost, transactionsURL+"?ownerId=public&ownerId=user_2", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	suite.Assert().Equal("public", gjson.Get(r.Body.String(), "ownerId").String(), "the first query value must be used")
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Negative amount", transactionBody("user_1", -1, "2024-03-05", "Refund", models.CategoryFood), "amount must not be negative"},
		{"Unknown category", transactionBody("user_1", 1, "2024-03-05", "Gift", "Gifts"), "category 'Gifts' is not one of"},
		{"Empty description", transactionBody("user_1", 1, "2024-03-05", "   ", models.CategoryFood), "description is required"},
		{"No date", transactionBody("user_1", 1, "", "Groceries", models.CategoryFood), "date is required"},
		{"Invalid date", transactionBody("user_1", 1, "yesterday", "Groceries", models.CategoryFood), "contains invalid or un-parseable data"},
		{"No owner", transactionBody("", 1, "2024-03-05", "Groceries", models.CategoryFood), "ownerId required"},
		{"No amount", `{"ownerId": "user_1", "date": "2024-03-05", "description": "Groceries", "category": "Food"}`, "amount is required"},
		{"Null amount", `{"ownerId": "user_1", "amount": null, "date": "2024-03-05", "description": "Groceries", "category": "Food"}`, "amount is required"},
		{"Broken JSON", `{ "amount": 1`, "contains invalid or un-parseable data"},
		{"Empty body", "", "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, transactionsURL, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.message)
		})
	}

	var count int64
	models.DB.Model(&models.Transaction{}).Count(&count)
	suite.Assert().Zero(count, "no transaction must be created for invalid input")
}

func (suite *TestSuiteStandard) TestTransactionsGetList() {
	older := suite.createTestTransactionHTTP(transactionBody("user_1", 10, "2024-02-01", "Rent", models.CategoryHousing))
	newer := suite.createTestTransactionHTTP(transactionBody("user_1", 20, "2024-03-05", "Groceries", models.CategoryFood))
	_ = suite.createTestTransactionHTTP(transactionBody("user_2", 30, "2024-03-06", "Cinema", models.CategoryEntertainment))

	r := test.Request(suite.T(), http.MethodGet, transactionsURL+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions []models.Transaction
	test.DecodeResponse(suite.T(), &r, &transactions)

	suite.Require().Len(transactions, 2)
	suite.Assert().Equal(newer.ID, transactions[0].ID, "most recent date must come first")
	suite.Assert().Equal(older.ID, transactions[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsGetListSameDateNewestFirst() {
	date := types.NewDate(2024, time.March, 5)
	first := models.Transaction{OwnerID: "user_1", TransactionEditable: models.TransactionEditable{Amount: decimal.NewFromInt(1), Date: date, Description: "First", Category: models.CategoryFood}}
	first.CreatedAt = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	second := models.Transaction{OwnerID: "user_1", TransactionEditable: models.TransactionEditable{Amount: decimal.NewFromInt(2), Date: date, Description: "Second", Category: models.CategoryFood}}
	second.CreatedAt = time.Date(2024, time.March, 5, 11, 0, 0, 0, time.UTC)

	suite.Require().Nil(models.DB.Create(&first).Error)
	suite.Require().Nil(models.DB.Create(&second).Error)

	r := test.Request(suite.T(), http.MethodGet, transactionsURL+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal("Second", gjson.Get(r.Body.String(), "0.description").String())
	suite.Assert().Equal("First", gjson.Get(r.Body.String(), "1.description").String())
}

func (suite *TestSuiteStandard) TestTransactionsGetListEmpty() {
	r := test.Request(suite.T(), http.MethodGet, transactionsURL+"?ownerId=nobody", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestTransactionsMissingOwner() {
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		url := transactionsURL
		if method == http.MethodDelete {
			url = fmt.Sprintf("%s/%s", transactionsURL, uuid.New())
		}

		r := test.Request(suite.T(), method, url, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		suite.Assert().Equal("ownerId required", test.DecodeError(suite.T(), r.Body.Bytes()))
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := suite.createTestTransactionHTTP(transactionBody("user_1", 10, "2024-03-05", "Groceries", models.CategoryFood))

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/%s?ownerId=user_1", transactionsURL, transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(transaction.ID.String(), gjson.Get(r.Body.String(), "id").String())

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/%s?ownerId=user_2", transactionsURL, transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("not found or not authorized", test.DecodeError(suite.T(), r.Body.Bytes()))

	r = test.Request(suite.T(), http.MethodGet, transactionsURL+"/not-a-uuid?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransactionHTTP(transactionBody("user_1", 10, "2024-03-05", "Groceries", models.CategoryFood))
	url := fmt.Sprintf("%s/%s", transactionsURL, transaction.ID)

	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{
		"ownerId":     "user_1",
		"amount":      15.25,
		"description": "Weekly groceries",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Transaction
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Equal(transaction.ID, updated.ID)
	suite.Assert().True(decimal.NewFromFloat(15.25).Equal(updated.Amount))
	suite.Assert().Equal("Weekly groceries", updated.Description)
	suite.Assert().Equal(models.CategoryFood, updated.Category, "fields not in the body must be kept")
	suite.Assert().True(transaction.Date.Equal(updated.Date))
	suite.Assert().Equal("user_1", updated.OwnerID)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalid() {
	transaction := suite.createTestTransactionHTTP(transactionBody("user_1", 10, "2024-03-05", "Groceries", models.CategoryFood))
	url := fmt.Sprintf("%s/%s", transactionsURL, transaction.ID)

	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{"ownerId": "user_1", "amount": -3})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"ownerId": "user_1", "category": "Gifts"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, url, `{ "ownerId": "user_1", "amount": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var stored models.Transaction
	suite.Require().Nil(models.DB.First(&stored, "id = ?", transaction.ID).Error)
	suite.Assert().True(decimal.NewFromInt(10).Equal(stored.Amount), "invalid updates must not be stored")
	suite.Assert().Equal(models.CategoryFood, stored.Category)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateForeignOwner() {
	transaction := suite.createTestTransactionHTTP(transactionBody("user_1", 10, "2024-03-05", "Groceries", models.CategoryFood))

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("%s/%s", transactionsURL, transaction.ID), map[string]any{
		"ownerId": "user_2",
		"amount":  0,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransactionHTTP(transactionBody("user_1", 10, "2024-03-05", "Groceries", models.CategoryFood))
	url := fmt.Sprintf("%s/%s", transactionsURL, transaction.ID)

	r := test.Request(suite.T(), http.MethodDelete, url+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.DeleteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Deleted", response.Message)

	r = test.Request(suite.T(), http.MethodGet, url+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, url+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionsDeleteForeignOwner verifies that an owner cannot delete
// the transaction of another owner.
func (suite *TestSuiteStandard) TestTransactionsDeleteForeignOwner() {
	transaction := suite.createTestTransactionHTTP(transactionBody("user_1", 10, "2024-03-05", "Groceries", models.CategoryFood))

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s/%s?ownerId=user_2", transactionsURL, transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("not found or not authorized", test.DecodeError(suite.T(), r.Body.Bytes()))

	var stored models.Transaction
	suite.Assert().Nil(models.DB.First(&stored, "id = ?", transaction.ID).Error, "transaction must still exist")
}

func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	suite.CloseDB()

	requests := []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodGet, transactionsURL + "?ownerId=user_1", nil},
		{http.MethodPost, transactionsURL, transactionBody("user_1", 1, "2024-03-05", "Groceries", models.CategoryFood)},
		{http.MethodGet, fmt.Sprintf("%s/%s?ownerId=user_1", transactionsURL, uuid.New()), nil},
		{http.MethodDelete, fmt.Sprintf("%s/%s?ownerId=user_1", transactionsURL, uuid.New()), nil},
	}

	for _, req := range requests {
		r := test.Request(suite.T(), req.method, req.url, req.body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
		suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
	}
}
