package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"github.com/spendwise/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

const budgetsURL = "http://example.com/api/budgets"

func (suite *TestSuiteStandard) createTestBudgetHTTP(body any) models.Budget {
	r := test.Request(suite.T(), http.MethodPost, budgetsURL, body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var budget models.Budget
	test.DecodeResponse(suite.T(), &r, &budget)
	return budget
}

func budgetBody(owner string, category models.Category, month string, amount float64) map[string]any {
	return map[string]any{
		"ownerId":  owner,
		"category": category,
		"month":    month,
		"amount":   amount,
	}
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, budgetsURL, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("%s/%s", budgetsURL, uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := suite.createTestBudgetHTTP(budgetBody("user_1", models.CategoryFood, "2024-03", 400))

	suite.Assert().NotEqual(uuid.Nil, budget.ID)
	suite.Assert().Equal("user_1", budget.OwnerID)
	suite.Assert().Equal(types.MonthKey("2024-03"), budget.Month)
	suite.Assert().True(decimal.NewFromInt(400).Equal(budget.Amount))
}

func (suite *TestSuiteStandard) TestBudgetsCreateDuplicate() {
	suite.createTestBudgetHTTP(budgetBody("user_1", models.CategoryFood, "2024-03", 100))
	suite.createTestBudgetHTTP(budgetBody("user_1", models.CategoryFood, "2024-03", 50))

	r := test.Request(suite.T(), http.MethodGet, budgetsURL+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal(int64(2), gjson.Get(r.Body.String(), "#").Int(), "duplicate budgets are stored as separate records")
}

// TestBudgetsCreateNegativeAmount verifies that a negative budget is
// rejected and nothing is stored.
func (suite *TestSuiteStandard) TestBudgetsCreateNegativeAmount() {
	r := test.Request(suite.T(), http.MethodPost, budgetsURL, budgetBody("user_1", models.CategoryFood, "2024-03", -5))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), "amount must not be negative")

	r = test.Request(suite.T(), http.MethodGet, budgetsURL+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Invalid month", budgetBody("user_1", models.CategoryFood, "2024-13", 1), "month must be in YYYY-MM format"},
		{"Full date as month", budgetBody("user_1", models.CategoryFood, "2024-03-01", 1), "month must be in YYYY-MM format"},
		{"No month", budgetBody("user_1", models.CategoryFood, "", 1), "month is required"},
		{"No category", budgetBody("user_1", "", "2024-03", 1), "category is required"},
		{"Unknown category", budgetBody("user_1", "Savings", "2024-03", 1), "category 'Savings' is not one of"},
		{"No owner", budgetBody(" ", models.CategoryFood, "2024-03", 1), "ownerId required"},
		{"No amount", `{"ownerId": "user_1", "category": "Food", "month": "2024-03"}`, "amount is required"},
		{"Null amount", `{"ownerId": "user_1", "category": "Food", "month": "2024-03", "amount": null}`, "amount is required"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, budgetsURL, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.message)
		})
	}

	var count int64
	models.DB.Model(&models.Budget{}).Count(&count)
	suite.Assert().Zero(count, "no budget must be created for invalid input")
}

func (suite *TestSuiteStandard) TestBudgetsGetList() {
	older := models.Budget{OwnerID: "user_1", BudgetEditable: models.BudgetEditable{Category: models.CategoryFood, Month: "2024-02", Amount: decimal.NewFromInt(1)}}
	newest := models.Budget{OwnerID: "user_1", BudgetEditable: models.BudgetEditable{Category: models.CategoryFood, Month: "2024-03", Amount: decimal.NewFromInt(2)}}
	newest.CreatedAt = time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	earlier := models.Budget{OwnerID: "user_1", BudgetEditable: models.BudgetEditable{Category: models.CategoryHealth, Month: "2024-03", Amount: decimal.NewFromInt(3)}}
	earlier.CreatedAt = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	foreign := models.Budget{OwnerID: "user_2", BudgetEditable: models.BudgetEditable{Category: models.CategoryFood, Month: "2024-04", Amount: decimal.NewFromInt(4)}}

	for _, b := range []*models.Budget{&older, &newest, &earlier, &foreign} {
		suite.Require().Nil(models.DB.Create(b).Error)
	}

	r := test.Request(suite.T(), http.MethodGet, budgetsURL+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &r, &budgets)

	suite.Require().Len(budgets, 3)
	suite.Assert().Equal(newest.ID, budgets[0].ID)
	suite.Assert().Equal(earlier.ID, budgets[1].ID)
	suite.Assert().Equal(older.ID, budgets[2].ID)
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	budget := suite.createTestBudgetHTTP(budgetBody("user_1", models.CategoryFood, "2024-03", 400))

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/%s?ownerId=user_1", budgetsURL, budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("2024-03", gjson.Get(r.Body.String(), "month").String())

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/%s?ownerId=public", budgetsURL, budget.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := suite.createTestBudgetHTTP(budgetBody("user_1", models.CategoryFood, "2024-03", 400))
	url := fmt.Sprintf("%s/%s", budgetsURL, budget.ID)

	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{"ownerId": "user_1", "amount": 450})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Budget
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().True(decimal.NewFromInt(450).Equal(updated.Amount))
	suite.Assert().Equal(types.MonthKey("2024-03"), updated.Month)
	suite.Assert().Equal(models.CategoryFood, updated.Category)

	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"ownerId": "user_1", "month": "March"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"ownerId": "user_2", "amount": 1})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"amount": 1})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := suite.createTestBudgetHTTP(budgetBody("user_1", models.CategoryFood, "2024-03", 400))
	url := fmt.Sprintf("%s/%s", budgetsURL, budget.ID)

	r := test.Request(suite.T(), http.MethodDelete, url+"?ownerId=user_2", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, url+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Equal("Deleted", gjson.Get(r.Body.String(), "message").String())

	r = test.Request(suite.T(), http.MethodGet, url+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, budgetsURL+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodPost, budgetsURL, budgetBody("user_1", models.CategoryFood, "2024-03", 1))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
