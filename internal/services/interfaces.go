package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/express22chief-pixel/money-planner-sub000/internal/balance"
	"github.com/express22chief-pixel/money-planner-sub000/internal/calendar"
	"github.com/express22chief-pixel/money-planner-sub000/internal/models"
	"github.com/express22chief-pixel/money-planner-sub000/internal/pagination"
	"github.com/express22chief-pixel/money-planner-sub000/internal/projection"
)

// AuthServicer defines the contract for owner authentication.
type AuthServicer interface {
	VerifyPassphrase(passphrase string) error
}

// TransactionInput carries the editable fields of a manual ledger entry.
// Amount is the unsigned magnitude; the sign follows Type.
type TransactionInput struct {
	Date          time.Time
	Category      string
	Amount        int64
	Type          models.TransactionType
	PaymentMethod models.PaymentMethod
	CardID        *string
	Description   string
	Splits        []models.SplitShare
	// Settled overrides the default of "settled once the date has arrived"
	// for cash entries. Credit purchases are always unsettled.
	Settled *bool
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate       *time.Time
	ToDate         *time.Time
	Type           *models.TransactionType
	Category       *string
	Settled        *bool
	HideSettlement bool
}

// TransactionServicer defines the contract for ledger entry business logic.
type TransactionServicer interface {
	CreateTransaction(in TransactionInput) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	UpdateTransaction(id string, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(id string) error
	SettleSplit(id, person string) (*SplitSettlement, error)
}

// SplitSettlement is the outcome of recording a split share as repaid.
type SplitSettlement struct {
	Transaction *models.Transaction `json:"transaction"`
	Recovery    *models.Transaction `json:"recovery"`
}

// ObligationInput carries the editable fields of a recurring obligation.
type ObligationInput struct {
	Name          string
	Amount        int64
	Category      string
	Kind          models.RecurrenceKind
	DayOfMonth    int
	Weekday       time.Weekday
	WeekOrdinal   int
	IntervalWeeks int
	StartDate     *time.Time
	EndDate       *time.Time
	PaymentMethod models.PaymentMethod
	CardID        *string
	Type          models.ObligationType
}

// GenerateResult reports what a generation pass changed.
type GenerateResult struct {
	Month   string               `json:"month"`
	Added   []models.Transaction `json:"added"`
	Settled []string             `json:"settled"`
}

// RecurringSummaryItem is one obligation's expected outflow in a month.
type RecurringSummaryItem struct {
	ObligationID string                `json:"obligation_id"`
	Name         string                `json:"name"`
	Type         models.ObligationType `json:"type"`
	Occurrences  []time.Time           `json:"occurrences"`
	Amount       int64                 `json:"amount"`
}

// RecurringSummary lists the obligations due in a month.
type RecurringSummary struct {
	Month string                 `json:"month"`
	Total int64                  `json:"total"`
	Items []RecurringSummaryItem `json:"items"`
}

// RecurringServicer defines the contract for recurring obligation business logic.
type RecurringServicer interface {
	CreateObligation(in ObligationInput) (*models.RecurringObligation, error)
	GetObligations() ([]models.RecurringObligation, error)
	GetObligationByID(id string) (*models.RecurringObligation, error)
	UpdateObligation(id string, in ObligationInput) (*models.RecurringObligation, error)
	DeleteObligation(id string) error
	Generate() (*GenerateResult, error)
	Summary(ym calendar.YearMonth) (*RecurringSummary, error)
}

// CardInput carries the editable fields of a credit card.
type CardInput struct {
	Name               string
	ClosingDay         int
	PaymentMonthOffset int
	PaymentDay         int
}

// CardServicer defines the contract for credit card business logic.
type CardServicer interface {
	CreateCard(in CardInput) (*models.CreditCard, error)
	GetCards() ([]models.CreditCard, error)
	UpdateCard(id string, in CardInput) (*models.CreditCard, error)
	DeleteCard(id string) error
}

// BalanceServicer defines the contract for monthly balance reporting.
type BalanceServicer interface {
	GetMonthlyBalance(ym calendar.YearMonth) (*balance.MonthlyBalance, error)
	GetCategoryBreakdown(ym calendar.YearMonth) ([]balance.CategoryTotal, error)
}

// AssetInput replaces the asset balances.
type AssetInput struct {
	Savings       float64
	Investment    float64
	TaxAdvantaged float64
	DryPowder     float64
}

// AssetServicer defines the contract for asset snapshot business logic.
type AssetServicer interface {
	GetAssets() (*models.AssetSnapshot, error)
	UpdateAssets(in AssetInput) (*models.AssetSnapshot, error)
	Transfer(from, to models.AssetBucket, amount float64) (*models.AssetSnapshot, error)
	CloseMonth(ym calendar.YearMonth) (*models.AssetHistory, error)
	GetHistory(page pagination.PageRequest) (*pagination.PageResponse[models.AssetHistory], error)
}

// SettingsInput replaces the simulation settings.
type SettingsInput struct {
	Years             int
	MonthlySavings    float64
	MonthlyInvestment float64
	SavingsRate       float64
	InvestmentReturn  float64
	UseTaxAdvantaged  bool
	TaxAdvantagedUsed float64
	LumpSumEnabled    bool
	LumpSumAmount     float64
	LumpSumFrequency  models.LumpSumFrequency
	LumpSumMonths     []int
	RiskProfile       models.RiskProfile
	BenchmarkBase     float64
	BenchmarkRate     float64
}

// SimulationServicer defines the contract for projections and their inputs.
type SimulationServicer interface {
	GetSettings() (*models.SimulationSettings, error)
	UpdateSettings(in SettingsInput) (*models.SimulationSettings, error)
	CreateLifeEvent(name, yearMonth string, amount float64) (*models.LifeEvent, error)
	GetLifeEvents() ([]models.LifeEvent, error)
	DeleteLifeEvent(id string) error
	Project() ([]projection.YearSnapshot, error)
	MonteCarlo(ctx context.Context, paths int, src rand.Source) ([]projection.PathStats, error)
}
