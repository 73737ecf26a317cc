package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

// RecurringHandler handles recurring obligation requests.
type RecurringHandler struct {
	recurringService services.RecurringServicer
	clock            services.Clock
}

// NewRecurringHandler creates a new RecurringHandler.
func NewRecurringHandler(recurringService services.RecurringServicer, clock services.Clock) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService, clock: clock}
}

// ObligationRequest represents the request payload for creating or
// replacing a recurring obligation. Only the schedule fields of kind apply.
type ObligationRequest struct {
	Name          string                `json:"name" binding:"required,max=100"`
	Amount        int64                 `json:"amount" binding:"required,gt=0"`
	Category      string                `json:"category" binding:"required,max=100"`
	Kind          models.RecurrenceKind `json:"kind" binding:"required,recurrence_kind"`
	DayOfMonth    int                   `json:"day_of_month" binding:"omitempty,min=1,max=31"`
	Weekday       int                   `json:"weekday" binding:"min=0,max=6"`
	WeekOrdinal   int                   `json:"week_ordinal" binding:"omitempty,week_ordinal"`
	IntervalWeeks int                   `json:"interval_weeks" binding:"omitempty,min=1,max=52"`
	StartDate     *string               `json:"start_date"`
	EndDate       *string               `json:"end_date"`
	PaymentMethod models.PaymentMethod  `json:"payment_method" binding:"omitempty,payment_method"`
	CardID        *string               `json:"card_id" binding:"omitempty,uuid"`
	Type          models.ObligationType `json:"type" binding:"omitempty,obligation_type"`
}

func (r *ObligationRequest) toInput() (services.ObligationInput, error) {
	in := services.ObligationInput{
		Name:          r.Name,
		Amount:        r.Amount,
		Category:      r.Category,
		Kind:          r.Kind,
		DayOfMonth:    r.DayOfMonth,
		Weekday:       time.Weekday(r.Weekday),
		WeekOrdinal:   r.WeekOrdinal,
		IntervalWeeks: r.IntervalWeeks,
		PaymentMethod: r.PaymentMethod,
		CardID:        r.CardID,
		Type:          r.Type,
	}
	var err error
	if in.StartDate, err = parseOptionalDate(r.StartDate, "start_date"); err != nil {
		return in, err
	}
	if in.EndDate, err = parseOptionalDate(r.EndDate, "end_date"); err != nil {
		return in, err
	}
	return in, nil
}

// CreateObligation handles the creation of a recurring obligation
// @Summary     Create a recurring obligation
// @Description Register a repeating expense or contribution and generate its entries for the current month
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ObligationRequest true "Obligation details"
// @Success     201 {object} models.RecurringObligation "Obligation created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [post]
func (h *RecurringHandler) CreateObligation(c *gin.Context) {
	var req ObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	obligation, err := h.recurringService.CreateObligation(in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"obligation": obligation})
}

// GetObligations handles listing recurring obligations
// @Summary     List recurring obligations
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.RecurringObligation "Obligations"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [get]
func (h *RecurringHandler) GetObligations(c *gin.Context) {
	obligations, err := h.recurringService.GetObligations()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"obligations": obligations})
}

// GetObligation handles the retrieval of one obligation
// @Summary     Get recurring obligation
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Obligation ID"
// @Success     200 {object} models.RecurringObligation "Obligation"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [get]
func (h *RecurringHandler) GetObligation(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	obligation, err := h.recurringService.GetObligationByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"obligation": obligation})
}

// UpdateObligation handles replacing an obligation
// @Summary     Update recurring obligation
// @Description Replace an obligation. Its upcoming unsettled entries in the current month are regenerated.
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Obligation ID"
// @Param       request body ObligationRequest true "Obligation details"
// @Success     200 {object} models.RecurringObligation "Updated obligation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [put]
func (h *RecurringHandler) UpdateObligation(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	obligation, err := h.recurringService.UpdateObligation(id, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"obligation": obligation})
}

// DeleteObligation handles deleting an obligation
// @Summary     Delete recurring obligation
// @Description Delete an obligation and its upcoming entries. Entries dated on or before today are kept.
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Obligation ID"
// @Success     200 {object} map[string]string "Obligation deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Obligation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [delete]
func (h *RecurringHandler) DeleteObligation(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeleteObligation(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Obligation deleted successfully"})
}

// Generate handles a generation pass over the current month
// @Summary     Generate recurring entries
// @Description Add the current month's missing recurring entries and settle those whose date has arrived. Safe to repeat.
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.GenerateResult "Changes made"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/generate [post]
func (h *RecurringHandler) Generate(c *gin.Context) {
	result, err := h.recurringService.Generate()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Summary handles the monthly obligation summary
// @Summary     Recurring summary
// @Description List what each obligation is due to pay in a month
// @Tags        recurring
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM, default current)"
// @Success     200 {object} services.RecurringSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/summary [get]
func (h *RecurringHandler) Summary(c *gin.Context) {
	ym, err := monthQuery(c, h.clock)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.recurringService.Summary(ym)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
