package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/aggregate"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"golang.org/x/sync/errgroup"
)

type SummaryQuery struct {
	QueryOwner
	Month        string `form:"month" example:"2024-03"`   // Year and month in YYYY-MM format. Defaults to the current month in UTC
	BudgetPolicy string `form:"budgetPolicy" example:"sum"` // How budgets for the same category are combined, "sum" or "last". Defaults to "sum"
}

// RegisterSummaryRoutes registers the routes for the summary with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/api/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns totals, spend per category, overspent categories and chart data for one month
// @Tags			Summary
// @Produce		json
// @Success		200				{object}	aggregate.Summary
// @Failure		400				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			ownerId			query		string	true	"The owner key"
// @Param			month			query		string	false	"Year and month in YYYY-MM format"
// @Param			budgetPolicy	query		string	false	"How budgets for the same category are combined"	Enums(sum, last)
// @Router			/api/summary [get]
func GetSummary(c *gin.Context) {
	var query SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	owner, err := ownerID(c, "")
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	month := types.CurrentMonthKey(time.Now())
	if query.Month != "" {
		month, err = types.ParseMonthKey(query.Month)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{
				Error: err.Error(),
			})
			return
		}
	}

	policy, err := aggregate.ParseBudgetPolicy(query.BudgetPolicy)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	// The aggregation needs the complete lists of the owner
	var g errgroup.Group
	var transactions []models.Transaction
	var budgets []models.Budget

	g.Go(func() (err error) {
		transactions, err = listTransactions(owner)
		return err
	})

	g.Go(func() (err error) {
		budgets, err = listBudgets(owner)
		return err
	})

	if err := g.Wait(); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, aggregate.Summarize(transactions, budgets, month, policy))
}
