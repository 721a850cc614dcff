package controllers_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"github.com/spendwise/backend/test"
	"github.com/tidwall/gjson"
)

const summaryURL = "http://example.com/api/summary"

func (suite *TestSuiteStandard) seedSummary() {
	transactions := []models.Transaction{
		{OwnerID: "user_1", TransactionEditable: models.TransactionEditable{Amount: decimal.NewFromInt(120), Date: types.NewDate(2024, time.March, 5), Description: "Groceries", Category: models.CategoryFood}},
		{OwnerID: "user_1", TransactionEditable: models.TransactionEditable{Amount: decimal.NewFromInt(50), Date: types.NewDate(2024, time.March, 20), Description: "Dinner", Category: models.CategoryFood}},
		{OwnerID: "user_1", TransactionEditable: models.TransactionEditable{Amount: decimal.NewFromInt(900), Date: types.NewDate(2024, time.February, 1), Description: "Rent", Category: models.CategoryHousing}},
		{OwnerID: "user_2", TransactionEditable: models.TransactionEditable{Amount: decimal.NewFromInt(1000), Date: types.NewDate(2024, time.March, 1), Description: "Other owner", Category: models.CategoryFood}},
	}

	budgets := []models.Budget{
		{OwnerID: "user_1", BudgetEditable: models.BudgetEditable{Category: models.CategoryFood, Month: "2024-03", Amount: decimal.NewFromInt(100)}},
		{OwnerID: "user_1", BudgetEditable: models.BudgetEditable{Category: models.CategoryFood, Month: "2024-03", Amount: decimal.NewFromInt(50)}},
	}

	for i := range transactions {
		suite.Require().Nil(models.DB.Create(&transactions[i]).Error)
	}

	for i := range budgets {
		budgets[i].CreatedAt = time.Date(2024, time.March, 1+i, 0, 0, 0, 0, time.UTC)
		suite.Require().Nil(models.DB.Create(&budgets[i]).Error)
	}
}

func (suite *TestSuiteStandard) TestSummaryOptions() {
	r := test.Request(suite.T(), http.MethodOptions, summaryURL, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSummary() {
	suite.seedSummary()

	r := test.Request(suite.T(), http.MethodGet, summaryURL+"?ownerId=user_1&month=2024-03", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	body := r.Body.String()

	suite.Assert().Equal("2024-03", gjson.Get(body, "month").String())
	suite.Assert().Equal("sum", gjson.Get(body, "budgetPolicy").String())
	suite.Assert().Equal(1070.0, gjson.Get(body, "totalExpenses").Float())
	suite.Assert().Equal(150.0, gjson.Get(body, "totalBudget").Float())
	suite.Assert().Equal(170.0, gjson.Get(body, "monthlyTotal").Float())
	suite.Assert().Equal(int64(2), gjson.Get(body, "monthlyTransactions.#").Int())
	suite.Assert().Equal(150.0, gjson.Get(body, "budgetMap.Food").Float())
	suite.Assert().Equal(170.0, gjson.Get(body, `spentByCategory.#(category=="Food").value`).Float())
	suite.Assert().Equal(int64(1), gjson.Get(body, "overspent.#").Int())
	suite.Assert().Equal("Food", gjson.Get(body, "overspent.0.category").String())
	suite.Assert().Equal(int64(1), gjson.Get(body, "pieData.#").Int())
	suite.Assert().Equal(int64(2), gjson.Get(body, "barData.#").Int())
	suite.Assert().Equal("2024-02", gjson.Get(body, "barData.0.month").String())
	suite.Assert().Equal(int64(2), gjson.Get(body, "recentTransactions.#").Int())
	suite.Assert().Equal("Dinner", gjson.Get(body, "recentTransactions.0.description").String())
}

func (suite *TestSuiteStandard) TestSummaryLastWins() {
	suite.seedSummary()

	r := test.Request(suite.T(), http.MethodGet, summaryURL+"?ownerId=user_1&month=2024-03&budgetPolicy=last", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	body := r.Body.String()
	suite.Assert().Equal("last", gjson.Get(body, "budgetPolicy").String())
	suite.Assert().Len(gjson.Get(body, "budgetMap").Map(), 1)

	// Budgets are listed newest first, so the oldest budget is applied last
	suite.Assert().Equal(100.0, gjson.Get(body, "budgetMap.Food").Float())
	suite.Assert().Equal(int64(1), gjson.Get(body, "overspent.#").Int())
}

func (suite *TestSuiteStandard) TestSummaryDefaultMonth() {
	r := test.Request(suite.T(), http.MethodGet, summaryURL+"?ownerId=user_1", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal(string(types.CurrentMonthKey(time.Now())), gjson.Get(r.Body.String(), "month").String())
	suite.Assert().Equal(0.0, gjson.Get(r.Body.String(), "totalExpenses").Float())
	suite.Assert().True(gjson.Get(r.Body.String(), "spentByCategory").IsArray())
}

func (suite *TestSuiteStandard) TestSummaryBadRequests() {
	for _, url := range []string{
		summaryURL,
		summaryURL + "?ownerId=user_1&month=2024-3",
		summaryURL + "?ownerId=user_1&budgetPolicy=max",
	} {
		r := test.Request(suite.T(), http.MethodGet, url, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestSummaryDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, summaryURL+"?ownerId=user_1&month=2024-03", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
