package models

// RiskProfile selects the volatility used by Monte Carlo runs.
type RiskProfile string

const (
	RiskProfileLow    RiskProfile = "low"
	RiskProfileMedium RiskProfile = "medium"
	RiskProfileHigh   RiskProfile = "high"
)

// LumpSumFrequency derives lump-sum months when none are given explicitly.
type LumpSumFrequency string

const (
	LumpSumYearly     LumpSumFrequency = "yearly"
	LumpSumSemiannual LumpSumFrequency = "semiannual"
	LumpSumQuarterly  LumpSumFrequency = "quarterly"
)

// SimulationSettings holds projection parameters. Rates are nominal annual
// percentages.
type SimulationSettings struct {
	Base
	Years             int              `gorm:"not null;default:30" json:"years"`
	MonthlySavings    float64          `gorm:"not null;default:0" json:"monthly_savings"`
	MonthlyInvestment float64          `gorm:"not null;default:0" json:"monthly_investment"`
	SavingsRate       float64          `gorm:"not null;default:0" json:"savings_rate"`
	InvestmentReturn  float64          `gorm:"not null;default:0" json:"investment_return"`
	UseTaxAdvantaged  bool             `gorm:"not null" json:"use_tax_advantaged"`
	TaxAdvantagedUsed float64          `gorm:"not null;default:0" json:"tax_advantaged_used"`
	LumpSumEnabled    bool             `gorm:"not null;default:false" json:"lump_sum_enabled"`
	LumpSumAmount     float64          `gorm:"not null;default:0" json:"lump_sum_amount"`
	LumpSumFrequency  LumpSumFrequency `json:"lump_sum_frequency,omitempty"`
	LumpSumMonths     []int            `gorm:"serializer:json" json:"lump_sum_months,omitempty"`
	RiskProfile       RiskProfile      `gorm:"not null;default:'medium'" json:"risk_profile"`
	BenchmarkBase     float64          `gorm:"not null;default:0" json:"benchmark_base"`
	BenchmarkRate     float64          `gorm:"not null;default:0" json:"benchmark_rate"`
}

// LifeEvent is a one-time outflow consumed during projection.
type LifeEvent struct {
	Base
	Name      string  `gorm:"not null" json:"name"`
	YearMonth string  `gorm:"size:7;not null" json:"year_month"`
	Amount    float64 `gorm:"not null" json:"amount"`
}
