package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

// BalanceHandler reports monthly PL and CF totals.
type BalanceHandler struct {
	balanceService services.BalanceServicer
	clock          services.Clock
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceService services.BalanceServicer, clock services.Clock) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService, clock: clock}
}

// GetMonthlyBalance handles the monthly balance report
// @Summary     Monthly balance
// @Description Accrual (PL) and cash-flow (CF) totals for a month, with unsettled credit and split amounts
// @Tags        balance
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM, default current)"
// @Success     200 {object} balance.MonthlyBalance "Balance"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balance [get]
func (h *BalanceHandler) GetMonthlyBalance(c *gin.Context) {
	ym, err := monthQuery(c, h.clock)
	if err != nil {
		respondWithError(c, err)
		return
	}

	b, err := h.balanceService.GetMonthlyBalance(ym)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// GetCategoryBreakdown handles the per-category expense report
// @Summary     Category breakdown
// @Description Accrual expense per category for a month, largest first
// @Tags        balance
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM, default current)"
// @Success     200 {array}  balance.CategoryTotal "Category totals"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balance/categories [get]
func (h *BalanceHandler) GetCategoryBreakdown(c *gin.Context) {
	ym, err := monthQuery(c, h.clock)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.balanceService.GetCategoryBreakdown(ym)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"month": ym.String(), "categories": totals})
}
