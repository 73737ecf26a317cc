package models

import "time"

// AssetBucket names one balance of the asset snapshot.
type AssetBucket string

const (
	AssetBucketSavings       AssetBucket = "savings"
	AssetBucketInvestment    AssetBucket = "investment"
	AssetBucketTaxAdvantaged AssetBucket = "tax_advantaged"
	AssetBucketDryPowder     AssetBucket = "dry_powder"
)

// AssetSnapshot holds current balances. There is a single row per install.
type AssetSnapshot struct {
	Base
	Savings       float64 `gorm:"not null;default:0" json:"savings"`
	Investment    float64 `gorm:"not null;default:0" json:"investment"`
	TaxAdvantaged float64 `gorm:"not null;default:0" json:"tax_advantaged"`
	DryPowder     float64 `gorm:"not null;default:0" json:"dry_powder"`
}

// Total returns the sum of all buckets.
func (a *AssetSnapshot) Total() float64 {
	return a.Savings + a.Investment + a.TaxAdvantaged + a.DryPowder
}

// Bucket returns a pointer to the named balance, or nil for an unknown name.
func (a *AssetSnapshot) Bucket(b AssetBucket) *float64 {
	switch b {
	case AssetBucketSavings:
		return &a.Savings
	case AssetBucketInvestment:
		return &a.Investment
	case AssetBucketTaxAdvantaged:
		return &a.TaxAdvantaged
	case AssetBucketDryPowder:
		return &a.DryPowder
	}
	return nil
}

// AssetHistory is an immutable record written when a month is closed.
type AssetHistory struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	YearMonth          string    `gorm:"size:7;uniqueIndex;not null" json:"year_month"`
	RecordedAt         time.Time `gorm:"not null" json:"recorded_at"`
	CFBalance          int64     `gorm:"type:bigint;not null" json:"cf_balance"`
	InvestmentTransfer int64     `gorm:"type:bigint;not null" json:"investment_transfer"`
	Savings            float64   `gorm:"not null" json:"savings"`
	Investment         float64   `gorm:"not null" json:"investment"`
	TaxAdvantaged      float64   `gorm:"not null" json:"tax_advantaged"`
	DryPowder          float64   `gorm:"not null" json:"dry_powder"`
	Total              float64   `gorm:"not null" json:"total"`
}
