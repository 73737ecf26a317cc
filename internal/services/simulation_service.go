package services

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"

	"gorm.io/gorm"

	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	apperrors "github.com/express22chief-pixel/money-planner-sub000/internal/errors"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/projection"
)

// MaxYears bounds the projection horizon.
const MaxYears = 100

// simulationService stores projection inputs and runs the projection engines.
type simulationService struct {
	db           *gorm.DB
	clock        Clock
	defaultPaths int
}

// NewSimulationService creates a new SimulationServicer. defaultPaths is used
// when a Monte Carlo request does not name a path count.
func NewSimulationService(db *gorm.DB, clock Clock, defaultPaths int) SimulationServicer {
	if defaultPaths < 1 {
		defaultPaths = projection.DefaultPaths
	}
	return &simulationService{db: db, clock: clock, defaultPaths: defaultPaths}
}

// DefaultSettings returns the settings used before the owner saves any.
func DefaultSettings() models.SimulationSettings {
	return models.SimulationSettings{
		Years:            30,
		UseTaxAdvantaged: true,
		LumpSumFrequency: models.LumpSumYearly,
		RiskProfile:      models.RiskProfileMedium,
		BenchmarkBase:    projection.DefaultBenchmarkBase,
		BenchmarkRate:    projection.DefaultBenchmarkRate,
	}
}

// GetSettings returns the stored settings, creating the defaults on first use.
func (s *simulationService) GetSettings() (*models.SimulationSettings, error) {
	var settings models.SimulationSettings
	err := s.db.Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = DefaultSettings()
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// UpdateSettings replaces the settings.
func (s *simulationService) UpdateSettings(in SettingsInput) (*models.SimulationSettings, error) {
	if in.Years < 1 || in.Years > MaxYears {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "years must be between 1 and 100")
	}
	if !finite(in.MonthlySavings, in.MonthlyInvestment, in.SavingsRate, in.InvestmentReturn,
		in.TaxAdvantagedUsed, in.LumpSumAmount, in.BenchmarkBase, in.BenchmarkRate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "settings must be finite numbers")
	}
	if in.MonthlySavings < 0 || in.MonthlyInvestment < 0 || in.LumpSumAmount < 0 || in.TaxAdvantagedUsed < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contributions cannot be negative")
	}
	for _, m := range in.LumpSumMonths {
		if m < 1 || m > 12 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "lump_sum_months must be between 1 and 12")
		}
	}

	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	settings.Years = in.Years
	settings.MonthlySavings = in.MonthlySavings
	settings.MonthlyInvestment = in.MonthlyInvestment
	settings.SavingsRate = in.SavingsRate
	settings.InvestmentReturn = in.InvestmentReturn
	settings.UseTaxAdvantaged = in.UseTaxAdvantaged
	settings.TaxAdvantagedUsed = in.TaxAdvantagedUsed
	settings.LumpSumEnabled = in.LumpSumEnabled
	settings.LumpSumAmount = in.LumpSumAmount
	settings.LumpSumFrequency = in.LumpSumFrequency
	settings.LumpSumMonths = in.LumpSumMonths
	settings.RiskProfile = in.RiskProfile
	if settings.RiskProfile == "" {
		settings.RiskProfile = models.RiskProfileMedium
	}
	settings.BenchmarkBase = in.BenchmarkBase
	settings.BenchmarkRate = in.BenchmarkRate

	if err := s.db.Save(settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings, nil
}

// CreateLifeEvent records a one-time outflow in yearMonth ("2006-01").
func (s *simulationService) CreateLifeEvent(name, yearMonth string, amount float64) (*models.LifeEvent, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	ym, err := calendar.ParseYearMonth(yearMonth)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "year_month must look like 2006-01")
	}
	if !finite(amount) || amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	event := &models.LifeEvent{Name: name, YearMonth: ym.String(), Amount: amount}
	if err := s.db.Create(event).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return event, nil
}

// GetLifeEvents lists life events in date order.
func (s *simulationService) GetLifeEvents() ([]models.LifeEvent, error) {
	var events []models.LifeEvent
	if err := s.db.Order("year_month ASC").Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return events, nil
}

// DeleteLifeEvent removes a life event.
func (s *simulationService) DeleteLifeEvent(id string) error {
	res := s.db.Delete(&models.LifeEvent{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrLifeEventNotFound
	}
	return nil
}

type simulationInputs struct {
	assets   models.AssetSnapshot
	settings models.SimulationSettings
	events   []models.LifeEvent
	start    calendar.YearMonth
}

func (s *simulationService) inputs() (*simulationInputs, error) {
	assets, err := loadAssets(s.db)
	if err != nil {
		return nil, err
	}
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	events, err := s.GetLifeEvents()
	if err != nil {
		return nil, err
	}
	return &simulationInputs{
		assets:   *assets,
		settings: *settings,
		events:   events,
		start:    calendar.Of(s.clock.Today()),
	}, nil
}

// Project runs the deterministic projection from the current month.
func (s *simulationService) Project() ([]projection.YearSnapshot, error) {
	in, err := s.inputs()
	if err != nil {
		return nil, err
	}
	return projection.Project(in.assets, in.settings, in.events, in.start), nil
}

// MonteCarlo runs the randomized projection. paths < 1 uses the configured
// default; a nil src draws a fresh seed.
func (s *simulationService) MonteCarlo(ctx context.Context, paths int, src rand.Source) ([]projection.PathStats, error) {
	in, err := s.inputs()
	if err != nil {
		return nil, err
	}
	if paths < 1 {
		paths = s.defaultPaths
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	stats, err := projection.SimulateMonteCarlo(ctx, in.assets, in.settings, in.events, in.start, paths, src)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stats, nil
}
