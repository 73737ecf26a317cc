package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/pagination"
	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

// AssetHandler handles asset snapshot requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// AssetsRequest replaces all four balances.
type AssetsRequest struct {
	Savings       float64 `json:"savings" binding:"min=0"`
	Investment    float64 `json:"investment" binding:"min=0"`
	TaxAdvantaged float64 `json:"tax_advantaged" binding:"min=0"`
	DryPowder     float64 `json:"dry_powder" binding:"min=0"`
}

// TransferRequest moves money between two buckets.
type TransferRequest struct {
	From   models.AssetBucket `json:"from" binding:"required,asset_bucket"`
	To     models.AssetBucket `json:"to" binding:"required,asset_bucket,nefield=From"`
	Amount float64            `json:"amount" binding:"required,gt=0"`
}

// CloseMonthRequest names the month to close.
type CloseMonthRequest struct {
	Month string `json:"month" binding:"required,year_month"`
}

// GetAssets handles reading the asset snapshot
// @Summary     Get assets
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.AssetSnapshot "Assets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
	assets, err := h.assetService.GetAssets()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets, "total": assets.Total()})
}

// UpdateAssets handles replacing the balances
// @Summary     Update assets
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AssetsRequest true "Balances"
// @Success     200 {object} models.AssetSnapshot "Assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets [put]
func (h *AssetHandler) UpdateAssets(c *gin.Context) {
	var req AssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	assets, err := h.assetService.UpdateAssets(services.AssetInput{
		Savings:       req.Savings,
		Investment:    req.Investment,
		TaxAdvantaged: req.TaxAdvantaged,
		DryPowder:     req.DryPowder,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets, "total": assets.Total()})
}

// Transfer handles moving money between buckets
// @Summary     Transfer between buckets
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransferRequest true "Transfer"
// @Success     200 {object} models.AssetSnapshot "Assets after the transfer"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/transfer [post]
func (h *AssetHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	assets, err := h.assetService.Transfer(req.From, req.To, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets, "total": assets.Total()})
}

// CloseMonth handles closing a month
// @Summary     Close a month
// @Description Add the month's cash-flow balance to savings and its investment transfers to the investment bucket, then record the balances
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CloseMonthRequest true "Month"
// @Success     201 {object} models.AssetHistory "History row"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Month already closed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/close-month [post]
func (h *AssetHandler) CloseMonth(c *gin.Context) {
	var req CloseMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}
	ym, err := calendar.ParseYearMonth(req.Month)
	if err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	history, err := h.assetService.CloseMonth(ym)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"history": history})
}

// GetHistory handles listing closed months
// @Summary     Asset history
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 50, max 200)"
// @Success     200 {object} pagination.PageResponse[models.AssetHistory] "Closed months, most recent first"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/history [get]
func (h *AssetHandler) GetHistory(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	result, err := h.assetService.GetHistory(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
