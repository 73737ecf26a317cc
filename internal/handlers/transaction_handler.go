package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/pagination"
	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

// TransactionHandler handles ledger entry requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// SplitShareRequest is one person's part of a split payment.
type SplitShareRequest struct {
	Person string `json:"person" binding:"required,max=100"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// TransactionRequest represents the request payload for creating or
// replacing a transaction. Amount is unsigned; the sign follows type.
type TransactionRequest struct {
	Date          *string                `json:"date"`
	Category      string                 `json:"category" binding:"required,max=100"`
	Amount        int64                  `json:"amount" binding:"required,gt=0"`
	Type          models.TransactionType `json:"type" binding:"required,transaction_type"`
	PaymentMethod models.PaymentMethod   `json:"payment_method" binding:"omitempty,payment_method"`
	CardID        *string                `json:"card_id" binding:"omitempty,uuid"`
	Description   string                 `json:"description" binding:"max=500"`
	Splits        []SplitShareRequest    `json:"splits" binding:"omitempty,dive"`
	Settled       *bool                  `json:"settled"`
}

func (r *TransactionRequest) toInput() (services.TransactionInput, error) {
	in := services.TransactionInput{
		Category:      r.Category,
		Amount:        r.Amount,
		Type:          r.Type,
		PaymentMethod: r.PaymentMethod,
		CardID:        r.CardID,
		Description:   r.Description,
		Settled:       r.Settled,
	}
	date, err := parseOptionalDate(r.Date, "date")
	if err != nil {
		return in, err
	}
	if date != nil {
		in.Date = *date
	}
	for _, s := range r.Splits {
		in.Splits = append(in.Splits, models.SplitShare{Person: s.Person, Amount: s.Amount})
	}
	return in, nil
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense. Credit card purchases also get a drawdown entry on the card's payment date.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactions handles listing transactions
// @Summary     List transactions
// @Description Get a paginated list of ledger entries, newest first, with optional filters
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page            query int    false "Page number (default 1)"
// @Param       page_size       query int    false "Items per page (default 50, max 200)"
// @Param       from_date       query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date         query string false "Filter by end date (YYYY-MM-DD)"
// @Param       type            query string false "Filter by type (income, expense)"
// @Param       category        query string false "Filter by category"
// @Param       settled         query bool   false "Filter by settled status"
// @Param       hide_settlement query bool   false "Leave out credit drawdown entries"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetTransactions(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	from := c.Query("from_date")
	t, err := parseOptionalDate(&from, "from_date")
	if err != nil {
		return filter, err
	}
	filter.FromDate = t

	to := c.Query("to_date")
	if t, err = parseOptionalDate(&to, "to_date"); err != nil {
		return filter, err
	}
	filter.ToDate = t

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		switch txType {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
			filter.Type = &txType
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense")
		}
	}

	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}

	if v := c.Query("settled"); v != "" {
		settled, err := strconv.ParseBool(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid settled")
		}
		filter.Settled = &settled
	}

	if v := c.Query("hide_settlement"); v != "" {
		hide, err := strconv.ParseBool(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid hide_settlement")
		}
		filter.HideSettlement = hide
	}

	return filter, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles replacing an existing transaction
// @Summary     Update transaction
// @Description Replace a transaction's fields. Its credit drawdown entry is recomputed; drawdown entries themselves cannot be edited.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input or drawdown entry"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(id, in)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete transaction
// @Description Delete a transaction together with its credit drawdown entry
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} map[string]string "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID or drawdown entry"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// SettleSplitRequest names the person who paid back their share.
type SettleSplitRequest struct {
	Person string `json:"person" binding:"required,max=100"`
}

// SettleSplit handles recording a split share as repaid
// @Summary     Settle a split share
// @Description Mark one person's share of a split expense as repaid and record the recovered income
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body SettleSplitRequest true "Person"
// @Success     200 {object} services.SplitSettlement "Updated expense and recovery entry"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction or share not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id}/splits/settle [post]
func (h *TransactionHandler) SettleSplit(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SettleSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	result, err := h.transactionService.SettleSplit(id, req.Person)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
