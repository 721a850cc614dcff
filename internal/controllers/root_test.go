package controllers_test

import (
	"net/http"

	"github.com/spendwise/backend/internal/controllers"
	"github.com/spendwise/backend/test"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.RootResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(controllers.RootLinks{
		Docs:    "http://example.com/docs/index.html",
		Healthz: "http://example.com/healthz",
		Version: "http://example.com/version",
		Metrics: "http://example.com/metrics",
		API:     "http://example.com/api",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestGetAPI() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.APIResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(controllers.APILinks{
		Transactions: "http://example.com/api/transactions",
		Budgets:      "http://example.com/api/budgets",
		Summary:      "http://example.com/api/summary",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestGetVersion() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/version", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.VersionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(controllers.Version(), response.Data.Version)
}

func (suite *TestSuiteStandard) TestOptionsGeneral() {
	for _, url := range []string{"http://example.com/", "http://example.com/version", "http://example.com/api", "http://example.com/healthz"} {
		r := test.Request(suite.T(), http.MethodOptions, url, nil)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"), url)
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/api/transactions", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}
