package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

// CardHandler handles credit card requests.
type CardHandler struct {
	cardService services.CardServicer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService services.CardServicer) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CardRequest represents a card's billing rule. A closing day of 28 or more
// closes the cycle at month end.
type CardRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	ClosingDay         int    `json:"closing_day" binding:"required,min=1,max=31"`
	PaymentMonthOffset int    `json:"payment_month_offset" binding:"omitempty,min=1,max=3"`
	PaymentDay         int    `json:"payment_day" binding:"required,min=1,max=31"`
}

func (r *CardRequest) toInput() services.CardInput {
	return services.CardInput{
		Name:               r.Name,
		ClosingDay:         r.ClosingDay,
		PaymentMonthOffset: r.PaymentMonthOffset,
		PaymentDay:         r.PaymentDay,
	}
}

// CreateCard handles registering a card
// @Summary     Register a credit card
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CardRequest true "Card details"
// @Success     201 {object} models.CreditCard "Card created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	card, err := h.cardService.CreateCard(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"card": card})
}

// GetCards handles listing cards
// @Summary     List credit cards
// @Description List cards in registration order. The first card is the fallback for purchases whose card is unknown.
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.CreditCard "Cards"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [get]
func (h *CardHandler) GetCards(c *gin.Context) {
	cards, err := h.cardService.GetCards()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// UpdateCard handles changing a card's billing rule
// @Summary     Update credit card
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string      true "Card ID"
// @Param       request body CardRequest true "Card details"
// @Success     200 {object} models.CreditCard "Updated card"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	card, err := h.cardService.UpdateCard(id, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// DeleteCard handles removing a card
// @Summary     Delete credit card
// @Tags        cards
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} map[string]string "Card deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cardService.DeleteCard(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}
