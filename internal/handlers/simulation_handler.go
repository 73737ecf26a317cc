package handlers

import (
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

// MaxMonteCarloPaths bounds a single Monte Carlo request.
const MaxMonteCarloPaths = 10000

// SimulationHandler handles projection settings, life events and runs.
type SimulationHandler struct {
	simulationService services.SimulationServicer
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulationService services.SimulationServicer) *SimulationHandler {
	return &SimulationHandler{simulationService: simulationService}
}

// SettingsRequest replaces the projection settings. Rates are annual
// percentages.
type SettingsRequest struct {
	Years             int                     `json:"years" binding:"required,min=1,max=100"`
	MonthlySavings    float64                 `json:"monthly_savings" binding:"min=0"`
	MonthlyInvestment float64                 `json:"monthly_investment" binding:"min=0"`
	SavingsRate       float64                 `json:"savings_rate"`
	InvestmentReturn  float64                 `json:"investment_return"`
	UseTaxAdvantaged  bool                    `json:"use_tax_advantaged"`
	TaxAdvantagedUsed float64                 `json:"tax_advantaged_used" binding:"min=0"`
	LumpSumEnabled    bool                    `json:"lump_sum_enabled"`
	LumpSumAmount     float64                 `json:"lump_sum_amount" binding:"min=0"`
	LumpSumFrequency  models.LumpSumFrequency `json:"lump_sum_frequency" binding:"omitempty,lump_sum_frequency"`
	LumpSumMonths     []int                   `json:"lump_sum_months" binding:"omitempty,dive,min=1,max=12"`
	RiskProfile       models.RiskProfile      `json:"risk_profile" binding:"omitempty,risk_profile"`
	BenchmarkBase     float64                 `json:"benchmark_base" binding:"min=0"`
	BenchmarkRate     float64                 `json:"benchmark_rate"`
}

// LifeEventRequest records a one-time outflow.
type LifeEventRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	YearMonth string  `json:"year_month" binding:"required,year_month"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// GetSettings handles reading the projection settings
// @Summary     Get simulation settings
// @Tags        simulation
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.SimulationSettings "Settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /simulation/settings [get]
func (h *SimulationHandler) GetSettings(c *gin.Context) {
	settings, err := h.simulationService.GetSettings()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings handles replacing the projection settings
// @Summary     Update simulation settings
// @Tags        simulation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SettingsRequest true "Settings"
// @Success     200 {object} models.SimulationSettings "Settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /simulation/settings [put]
func (h *SimulationHandler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	settings, err := h.simulationService.UpdateSettings(services.SettingsInput{
		Years:             req.Years,
		MonthlySavings:    req.MonthlySavings,
		MonthlyInvestment: req.MonthlyInvestment,
		SavingsRate:       req.SavingsRate,
		InvestmentReturn:  req.InvestmentReturn,
		UseTaxAdvantaged:  req.UseTaxAdvantaged,
		TaxAdvantagedUsed: req.TaxAdvantagedUsed,
		LumpSumEnabled:    req.LumpSumEnabled,
		LumpSumAmount:     req.LumpSumAmount,
		LumpSumFrequency:  req.LumpSumFrequency,
		LumpSumMonths:     req.LumpSumMonths,
		RiskProfile:       req.RiskProfile,
		BenchmarkBase:     req.BenchmarkBase,
		BenchmarkRate:     req.BenchmarkRate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// CreateLifeEvent handles recording a life event
// @Summary     Create life event
// @Tags        simulation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body LifeEventRequest true "Life event"
// @Success     201 {object} models.LifeEvent "Life event created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /simulation/life-events [post]
func (h *SimulationHandler) CreateLifeEvent(c *gin.Context) {
	var req LifeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	event, err := h.simulationService.CreateLifeEvent(req.Name, req.YearMonth, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"life_event": event})
}

// GetLifeEvents handles listing life events
// @Summary     List life events
// @Tags        simulation
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  models.LifeEvent "Life events in date order"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /simulation/life-events [get]
func (h *SimulationHandler) GetLifeEvents(c *gin.Context) {
	events, err := h.simulationService.GetLifeEvents()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"life_events": events})
}

// DeleteLifeEvent handles removing a life event
// @Summary     Delete life event
// @Tags        simulation
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Life event ID"
// @Success     200 {object} map[string]string "Life event deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Life event not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /simulation/life-events/{id} [delete]
func (h *SimulationHandler) DeleteLifeEvent(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.simulationService.DeleteLifeEvent(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Life event deleted successfully"})
}

// GetProjection handles the deterministic projection
// @Summary     Asset projection
// @Description Year-by-year projection of the asset snapshot under the current settings and life events
// @Tags        simulation
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  projection.YearSnapshot "One entry per simulated year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /simulation/projection [get]
func (h *SimulationHandler) GetProjection(c *gin.Context) {
	years, err := h.simulationService.Project()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"years": years})
}

// GetMonteCarlo handles a randomized projection
// @Summary     Monte Carlo projection
// @Description Per-year average, min, max and quartiles across randomized paths. The same seed reproduces the same result.
// @Tags        simulation
// @Produce     json
// @Security    BearerAuth
// @Param       paths query int false "Number of paths (default from config, max 10000)"
// @Param       seed  query int false "Random seed"
// @Success     200 {array}  projection.PathStats "One entry per simulated year"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /simulation/monte-carlo [get]
func (h *SimulationHandler) GetMonteCarlo(c *gin.Context) {
	var paths int
	if v := c.Query("paths"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxMonteCarloPaths {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "paths must be between 1 and 10000"))
			return
		}
		paths = n
	}

	var src rand.Source
	if v := c.Query("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid seed"))
			return
		}
		src = rand.NewPCG(seed, seed)
	}

	stats, err := h.simulationService.MonteCarlo(c.Request.Context(), paths, src)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"years": stats})
}
